package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Coordination errors (retryable)
const (
	// ErrCodeTimeout indicates a blocking operation gave up before its
	// predicate became true. The operation had no effect.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates a construction parameter is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Pipeline errors
const (
	// ErrCodeSourceFailure indicates the producer's source failed mid-stream.
	ErrCodeSourceFailure ErrorCode = "SOURCE_FAILURE"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:       true,
	ErrCodeInvalidConfig: false,
	ErrCodeSourceFailure: false,
	ErrCodeInternal:      false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
