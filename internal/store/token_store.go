package store

import (
	"context"
	"strings"
)

type metadataTokenStore struct {
	repo MetadataRepository
	key  string
}

// NewTokenStore returns a [TokenStore] that keeps the token in repo under key.
func NewTokenStore(repo MetadataRepository, key string) TokenStore {
	return &metadataTokenStore{repo: repo, key: key}
}

func (s *metadataTokenStore) Get(ctx context.Context) (string, bool, error) {
	value, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return "", false, err
	}

	token := string(value)
	if strings.TrimSpace(token) == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (s *metadataTokenStore) Set(ctx context.Context, token string) error {
	return s.repo.Set(ctx, s.key, []byte(token))
}

func (s *metadataTokenStore) Remove(ctx context.Context) error {
	return s.repo.Delete(ctx, s.key)
}
