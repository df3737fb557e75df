// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE":  "/var/log/client.log",
		"APP_TOKEN_KEY": "session",

		"STORAGE_DB_DATABASE_URI": "/var/lib/client.db",

		"ADAPTER_ADDRESS":         "http://api:8000",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		"DEVAPI_ADDRESS":        "127.0.0.1:8000",
		"DEVAPI_TOKEN_SIGN_KEY": "jwt_secret",
		"DEVAPI_TOKEN_ISSUER":   "test_issuer",
		"DEVAPI_TOKEN_DURATION": "1h",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/log/client.log", cfg.App.LogFile)
	assert.Equal(t, "session", cfg.App.TokenKey)
	assert.Equal(t, "/var/lib/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://api:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "127.0.0.1:8000", cfg.DevAPI.Address)
	assert.Equal(t, "jwt_secret", cfg.DevAPI.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.DevAPI.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.DevAPI.TokenDuration)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
