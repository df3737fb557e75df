// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// development API handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "detail"
// field of error responses. The client shows 400 details verbatim, so the
// wording matters.
package app

const (
	// MsgEmailAlreadyRegistered is returned by signup when the e-mail is
	// already taken.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgIncorrectCredentials is returned by login when the e-mail is
	// unknown or the password does not match.
	MsgIncorrectCredentials = "Incorrect email or password"

	// MsgInvalidDataProvided is logged when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNotAuthenticated is returned when the Authorization header is
	// missing or malformed.
	MsgNotAuthenticated = "Not authenticated"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token fails
	// verification or names a user that no longer exists.
	MsgTokenIsExpiredOrInvalid = "Could not validate credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
