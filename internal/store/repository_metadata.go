package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-keeper/internal/logger"
)

type metadataRepository struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewMetadataRepository returns a [MetadataRepository] over the metadata
// table of db.
func NewMetadataRepository(db *sql.DB, log *logger.Logger) MetadataRepository {
	return &metadataRepository{db: db, logger: log}
}

// Get returns the value stored under key, or nil when there is none.
func (r *metadataRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrEmptyKey
	}

	var value []byte
	err := r.db.QueryRowContext(ctx, selectMetadataValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "metadataRepository.Get").Str("key", key).Msg("select failed")
		return nil, fmt.Errorf("%w: get metadata[%s]: %w", ErrExecutingQuery, key, err)
	}
	return value, nil
}

// Set upserts value under key.
func (r *metadataRepository) Set(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	if _, err := r.db.ExecContext(ctx, upsertMetadataValue, key, value); err != nil {
		r.logger.Err(err).Str("func", "metadataRepository.Set").Str("key", key).Msg("upsert failed")
		return fmt.Errorf("%w: set metadata[%s]: %w", ErrExecutingStatement, key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *metadataRepository) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	if _, err := r.db.ExecContext(ctx, deleteMetadataValue, key); err != nil {
		r.logger.Err(err).Str("func", "metadataRepository.Delete").Str("key", key).Msg("delete failed")
		return fmt.Errorf("%w: delete metadata[%s]: %w", ErrExecutingStatement, key, err)
	}
	return nil
}
