// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devapi_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-keeper/internal/adapter"
	"github.com/MKhiriev/go-profile-keeper/internal/config"
	"github.com/MKhiriev/go-profile-keeper/internal/devapi"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/service"
	"github.com/MKhiriev/go-profile-keeper/internal/store"
	"github.com/MKhiriev/go-profile-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL, dbPath string) (service.ClientSessionService, *store.ClientStorages) {
	t.Helper()
	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    baseURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB:       config.ClientDB{DSN: dbPath},
		TokenKey: "token",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return service.NewClientServices(storages, serverAdapter, logger.Nop()).SessionService, storages
}

func TestClientAgainstDevAPI(t *testing.T) {
	ctx := context.Background()

	api := devapi.NewHandler(config.DevAPIConfig{
		Address:       "127.0.0.1:0",
		TokenSignKey:  "e2e-secret",
		TokenIssuer:   "e2e",
		TokenDuration: time.Hour,
	}, logger.Nop())
	srv := httptest.NewServer(api.Init())
	t.Cleanup(srv.Close)

	dbPath := filepath.Join(t.TempDir(), "client.db")
	session, storages := newClient(t, srv.URL, dbPath)

	_, ok := session.Restore(ctx)
	assert.False(t, ok)
	assert.Equal(t, models.SessionAnonymous, session.Status())

	require.NoError(t, session.Signup(ctx, "Alice", "alice@example.com", "secret"))

	err := session.Signup(ctx, "Alice", "alice@example.com", "secret")
	var apiErr *adapter.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, adapter.KindValidation, apiErr.Kind)
	assert.Equal(t, "Email already registered", apiErr.Detail)

	_, err = session.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, models.SessionAnonymous, session.Status())

	res, err := session.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, res.ProfileErr)
	assert.Equal(t, models.Profile{Name: "Alice", Email: "alice@example.com"}, res.Profile)
	assert.Equal(t, models.SessionAuthenticated, session.Status())

	updated, err := session.UpdateProfile(ctx, "Alice B", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)

	// a second process on the same database restores the session
	require.NoError(t, storages.Close())
	restoredSession, _ := newClient(t, srv.URL, dbPath)

	profile, ok := restoredSession.Restore(ctx)
	require.True(t, ok)
	assert.Equal(t, models.Profile{Name: "Alice B", Email: "alice@example.com", Bio: "hello"}, profile)

	restoredSession.Logout(ctx)
	_, err = restoredSession.LoadProfile(ctx)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	afterLogout, _ := newClient(t, srv.URL, dbPath)
	_, ok = afterLogout.Restore(ctx)
	assert.False(t, ok, "logout removes the stored token")
}
