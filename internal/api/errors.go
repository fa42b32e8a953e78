package api

import "fmt"

// ErrorKind classifies why a backend call failed so callers can decide what
// to show and whether a retry makes sense.
type ErrorKind string

const (
	// ErrKindNetwork covers transport failures: no response arrived at all.
	ErrKindNetwork ErrorKind = "network"
	// ErrKindNotFound means the backend does not know the order.
	ErrKindNotFound ErrorKind = "not_found"
	// ErrKindBadRequest means the request itself was rejected.
	ErrKindBadRequest ErrorKind = "bad_request"
	// ErrKindServer covers 5xx responses.
	ErrKindServer ErrorKind = "server"
	// ErrKindBadResponse means the backend answered with a shape the client
	// does not understand.
	ErrKindBadResponse ErrorKind = "bad_response"
)

// Error is the classified failure returned by every client call.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether retrying the same call can succeed.
func (e *Error) Retryable() bool {
	return e.Kind == ErrKindNetwork || e.Kind == ErrKindServer
}

func networkErr(err error) *Error {
	return &Error{Kind: ErrKindNetwork, Err: err}
}

func statusErr(code int, message string) *Error {
	kind := ErrKindServer
	switch {
	case code == 404:
		kind = ErrKindNotFound
	case code >= 400 && code < 500:
		kind = ErrKindBadRequest
	}
	return &Error{Kind: kind, StatusCode: code, Message: message}
}

func badResponseErr(message string) *Error {
	return &Error{Kind: ErrKindBadResponse, Message: message}
}
