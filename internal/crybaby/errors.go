package crybaby

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a surface already has a request in flight.
	ErrBusy = errors.New("a request is already in progress")
	// ErrNoFile is returned when a single-file surface is processed without a selection.
	ErrNoFile = errors.New("no file selected")
	// ErrNotConfigured is returned when the remote credential is missing.
	ErrNotConfigured = errors.New("gemini token is not configured")
)

// AttachmentReadError is returned when a file could not be read or encoded
type AttachmentReadError struct {
	Name string
	Err  error
}

func (e *AttachmentReadError) Error() string {
	return fmt.Sprintf("failed to read attachment %q: %v", e.Name, e.Err)
}

func (e *AttachmentReadError) Unwrap() error {
	return e.Err
}

// ValidationError is returned for input rejected before any network call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// RemoteErrorKind classifies remote failures
type RemoteErrorKind string

const (
	RemoteAuth      RemoteErrorKind = "auth"
	RemoteNetwork   RemoteErrorKind = "network"
	RemoteStatus    RemoteErrorKind = "status"
	RemoteMalformed RemoteErrorKind = "malformed"
)

// RemoteServiceError covers auth, transport and response failures of the remote model
type RemoteServiceError struct {
	Kind       RemoteErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	msg := fmt.Sprintf("remote service error (%s)", e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" HTTP %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// IsRemoteError reports whether err is a remote service failure
func IsRemoteError(err error) bool {
	var re *RemoteServiceError
	return errors.As(err, &re)
}
