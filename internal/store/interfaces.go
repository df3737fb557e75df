// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the client's persistent storage: a sqlite database
// with a small key/value metadata table and the [TokenStore] built on it.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStore persists at most one session token across process restarts.
//
// Get reports ok=false when no token is stored. Remove succeeds when nothing
// is stored. A Get error is treated by callers as "no token"; Set and Remove
// errors are logged and otherwise ignored.
type TokenStore interface {
	Get(ctx context.Context) (token string, ok bool, err error)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

// MetadataRepository is a string-keyed blob store.
type MetadataRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
