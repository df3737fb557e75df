// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// profile API.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty. Every call is a
// single request/response exchange without retries.
//
// Failures are reported as [*APIError] values carrying the HTTP status, the
// server-provided detail and an [ErrorKind]. Callers can use [errors.As] to
// inspect them, or [errors.Is] with the kind sentinels ([ErrValidation],
// [ErrUnauthorized], [ErrNetwork], [ErrUnknown]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-profile-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the profile API. Implementations
// are responsible for serialisation, the Authorization header and mapping
// transport outcomes to [*APIError]. They never touch local storage.
type ServerAdapter interface {
	// Signup registers a new account. Any 2xx response is a success.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login exchanges credentials for an access token. The credentials are
	// submitted form-encoded with the e-mail under the "username" key. A 2xx
	// response without a non-empty access_token is a failure.
	Login(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

	// FetchProfile returns the profile of the token owner.
	FetchProfile(ctx context.Context, token string) (models.Profile, error)

	// UpdateProfile replaces name and bio and returns the profile as stored
	// by the server.
	UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) (models.Profile, error)
}
