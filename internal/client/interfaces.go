// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by the app. Run returns
// [tui.ErrUserQuit] when the user leaves on purpose.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock
type UI interface {
	Run(ctx context.Context) error
}
