package service

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a token when
	// none is held. No request is made.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrOperationInProgress is returned by Login while another login is in
	// flight.
	ErrOperationInProgress = errors.New("operation already in progress")

	// ErrStaleSession is returned when an operation completes after a logout
	// or a newer login. Its result has been discarded.
	ErrStaleSession = errors.New("session changed while request was in flight")
)
