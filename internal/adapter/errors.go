package adapter

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed API call. It drives the message shown to
// the user.
type ErrorKind int

const (
	// KindUnknown is any non-success outcome that is not otherwise
	// classified, including 2xx responses that cannot be used.
	KindUnknown ErrorKind = iota
	// KindValidation is a user-correctable input problem (HTTP 400 and 422).
	KindValidation
	// KindUnauthorized is a credential rejection (HTTP 400 on login).
	KindUnauthorized
	// KindNetwork means no response was received.
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Kind sentinels. An [*APIError] matches the sentinel of its Kind under
// [errors.Is].
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNetwork      = errors.New("network unavailable")
	ErrUnknown      = errors.New("request failed")
)

// ErrMissingAccessToken is wrapped by the [*APIError] returned when a login
// response is successful but carries no access token.
var ErrMissingAccessToken = errors.New("login response has no access token")

// APIError describes a failed call to the profile API.
type APIError struct {
	// Op is the logical operation, e.g. "login".
	Op string
	// Status is the HTTP status code, or 0 when no response was received.
	Status int
	// Detail is the server's "detail" message, when it sent a string one.
	// It is never populated for 422 responses.
	Detail string
	// Kind classifies the failure.
	Kind ErrorKind
	// Err is the underlying cause, if any.
	Err error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (http %d)", e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's Kind.
func (e *APIError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNetwork:
		return ErrNetwork
	default:
		return ErrUnknown
	}
}

// AsAPIError unwraps err into an [*APIError]. Errors of any other type are
// reported as [KindUnknown] failures of op.
func AsAPIError(op string, err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Op: op, Kind: KindUnknown, Err: err}
}
