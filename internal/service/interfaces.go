// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client session: who is logged in, which
// token is in use and the cached profile of its owner.
package service

import (
	"context"

	"github.com/MKhiriev/go-profile-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientSessionService owns the session lifecycle. All methods are safe for
// concurrent use. Methods returning an error report failures from the API as
// *adapter.APIError values, and report completions that arrive after the
// session has changed as [ErrStaleSession].
type ClientSessionService interface {
	// Status returns the current lifecycle stage.
	Status() models.SessionStatus

	// Authenticated reports whether a token is held.
	Authenticated() bool

	// Profile returns the cached profile, if any.
	Profile() (models.Profile, bool)

	// Restore reads a persisted token and silently validates it by fetching
	// the profile. It never returns an error: any failure leaves the session
	// anonymous and evicts the bad token. Only the first call does any work.
	Restore(ctx context.Context) (models.Profile, bool)

	// Login authenticates with the API, persists the token and fetches the
	// profile. A failed profile fetch does not fail the login; it is
	// reported in [models.LoginResult.ProfileErr].
	Login(ctx context.Context, email, password string) (models.LoginResult, error)

	// Signup registers an account. It never changes the session.
	Signup(ctx context.Context, name, email, password string) error

	// LoadProfile fetches the profile of the current session.
	LoadProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile submits name and bio and caches the server's copy.
	UpdateProfile(ctx context.Context, name, bio string) (models.Profile, error)

	// Logout ends the session and forgets the persisted token.
	Logout(ctx context.Context)
}
