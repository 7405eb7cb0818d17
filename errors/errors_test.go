package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad capacity")
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidConfig, err.Code)
	}
	if err.Message != "bad capacity" {
		t.Errorf("expected message 'bad capacity', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("INVALID_CONFIG should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out")
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_Timeout_Success(t *testing.T) {
	err := Timeout("queue.put")
	if err.Code != ErrCodeTimeout {
		t.Errorf("expected TIMEOUT, got %s", err.Code)
	}
	if err.Details["operation"] != "queue.put" {
		t.Errorf("expected operation=queue.put, got %v", err.Details["operation"])
	}
	if !err.Retryable {
		t.Error("Timeout should be retryable")
	}
}

func TestAppError_InvalidConfig_Success(t *testing.T) {
	err := InvalidConfig("capacity", "must be at least 1")
	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", err.Code)
	}
	if err.Details["field"] != "capacity" {
		t.Errorf("expected field=capacity, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "must be at least 1") {
		t.Errorf("expected reason in message, got %q", err.Message)
	}
}

func TestAppError_SourceFailure_WrapsCause(t *testing.T) {
	cause := stderrors.New("read failed")
	err := SourceFailure(cause)
	if err.Code != ErrCodeSourceFailure {
		t.Errorf("expected SOURCE_FAILURE, got %s", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "read failed") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_Error_WithoutCause(t *testing.T) {
	err := Timeout("queue.get")
	if strings.Contains(err.Error(), "cause") {
		t.Errorf("expected no cause segment, got %q", err.Error())
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Timeout("queue.put").WithDetail("timeout_ms", 50)
	if err.Details["timeout_ms"] != 50 {
		t.Errorf("expected timeout_ms=50, got %v", err.Details["timeout_ms"])
	}
}

func TestAppError_WithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Internal(nil).WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"app error", Timeout("op"), ErrCodeTimeout},
		{"wrapped app error", fmt.Errorf("outer: %w", InvalidConfig("f", "r")), ErrCodeInvalidConfig},
		{"plain error", stderrors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(Timeout("queue.get")) {
		t.Error("expected IsTimeout true for Timeout error")
	}
	if IsTimeout(InvalidConfig("capacity", "must be positive")) {
		t.Error("expected IsTimeout false for other codes")
	}
	if IsTimeout(nil) {
		t.Error("expected IsTimeout false for nil")
	}
}

func TestIsCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("pipeline: %w", SourceFailure(stderrors.New("eof mid-row")))
	if !IsCode(err, ErrCodeSourceFailure) {
		t.Error("expected SOURCE_FAILURE through wrapping")
	}
}

func TestIsRetryableCode(t *testing.T) {
	if !IsRetryableCode(ErrCodeTimeout) {
		t.Error("TIMEOUT should be retryable")
	}
	if IsRetryableCode(ErrCodeSourceFailure) {
		t.Error("SOURCE_FAILURE should not be retryable")
	}
	if IsRetryableCode("UNKNOWN_CODE") {
		t.Error("unknown codes should not be retryable")
	}
}
