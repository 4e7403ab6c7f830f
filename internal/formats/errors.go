// file: internal/formats/errors.go
// version: 1.1.0
// guid: 0d4f8a2c-6e1b-4d7f-8c3a-2b9e5d0f4a6c

package formats

import (
	"errors"
	"fmt"
)

// Kind classifies resolution and handler failures.
type Kind int

const (
	// KindInputOutput: the resource is missing, unreadable, or a save
	// failed.
	KindInputOutput Kind = iota + 1
	// KindNotRecognized: no handler claims the file, or every claiming
	// handler failed to parse it.
	KindNotRecognized
	// KindNotSupported: the container parsed but a required feature is
	// absent.
	KindNotSupported
)

func (k Kind) String() string {
	switch k {
	case KindInputOutput:
		return "input/output error"
	case KindNotRecognized:
		return "file format not recognized"
	case KindNotSupported:
		return "file format not supported"
	}
	return "unknown error"
}

// Error is a structured handler/resolver failure: a kind plus a
// human-readable reason and recovery suggestion. Callers branch on Kind
// via errors.As; message text is presentation only.
type Error struct {
	Kind       Kind
	Path       string
	Reason     string
	Suggestion string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Path)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a structured error of the given kind.
func NewError(kind Kind, path, reason, suggestion string, err error) *Error {
	return &Error{Kind: kind, Path: path, Reason: reason, Suggestion: suggestion, Err: err}
}

// KindOf extracts the error kind, reporting false for errors from
// outside this taxonomy.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
