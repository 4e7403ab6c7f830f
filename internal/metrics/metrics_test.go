// file: internal/metrics/metrics_test.go
// version: 2.0.0
// guid: 7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d

package metrics

import (
	"testing"
	"time"
)

func TestRegisterIsIdempotent(t *testing.T) {
	// Registering twice must not panic on duplicate collectors.
	Register()
	Register()
}

func TestOperationCounters(t *testing.T) {
	Register()
	OperationStarted("read")
	OperationCompleted("read", 10*time.Millisecond)
	OperationFailed("write")
}

func TestProbeFailed(t *testing.T) {
	Register()
	ProbeFailed("FLAC")
	ProbeFailed("FLAC")
}
