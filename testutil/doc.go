// Package testutil provides helpers for testing concurrent code: running
// work in goroutines with completion channels, asserting that an operation
// completes or stays blocked within a window, and polling for conditions.
package testutil
