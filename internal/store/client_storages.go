package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profile-keeper/internal/config"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// TokenStore persists the session token.
	TokenStore TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file if it does
//     not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [TokenStore] keyed by cfg.TokenKey.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenStore: NewTokenStore(NewMetadataRepository(db.DB, logger), cfg.TokenKey),
		db:         db,
	}, nil
}

// Close releases the underlying database.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
