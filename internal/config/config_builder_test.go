package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// sources win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{LogFile: "first.log", TokenKey: "token"}},
		&StructuredConfig{App: App{LogFile: "second.log"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second.log", cfg.App.LogFile)
	assert.Equal(t, "token", cfg.App.TokenKey)
}

// ── withDefaults / withDotEnv ────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultTokenKey, cfg.App.TokenKey)
	assert.Equal(t, defaultDevAPIAddress, cfg.DevAPI.Address)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	p := writeTempFile(t, ".env", "ADAPTER_ADDRESS=http://dotenv:9000\n")
	t.Setenv("ADAPTER_ADDRESS", "")
	require.NoError(t, os.Unsetenv("ADAPTER_ADDRESS"))

	cfg, err := loadStructuredConfig(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:9000", cfg.Adapter.HTTPAddress)
}

// ── full pipeline ────────────────────────────────────────────────────────────

func TestLoadStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeTempFile(t, "config.json", `{"adapter": {"request_timeout": "3s"}}`)

	t.Setenv("ADAPTER_ADDRESS", "http://env:1")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	cfg, err := loadStructuredConfig("", []string{"-a", "http://flag:2", "-c", jsonPath})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:2", cfg.Adapter.HTTPAddress, "flags override env")
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN, "env overrides defaults")
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout, "json overrides defaults")
	assert.Equal(t, defaultTokenKey, cfg.App.TokenKey)
}

func TestLoadStructuredConfig_BadJSONPath(t *testing.T) {
	_, err := loadStructuredConfig("", []string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestLoadStructuredConfig_UnknownFlag(t *testing.T) {
	_, err := loadStructuredConfig("", []string{"-unknown"})
	require.Error(t, err)
}

// ── views and validation ─────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return newClientConfig(defaultConfig()) }

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty token key", mutate: func(c *ClientConfig) { c.App.TokenKey = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsTokenKeyToStorage(t *testing.T) {
	c := newClientConfig(&StructuredConfig{App: App{TokenKey: "session"}})
	assert.Equal(t, "session", c.Storage.TokenKey)
	assert.Equal(t, "session", c.App.TokenKey)
}

func TestDevAPIConfig_Validate(t *testing.T) {
	c := newDevAPIConfig(defaultConfig())
	require.NoError(t, c.validate())

	c.TokenSignKey = ""
	assert.ErrorIs(t, c.validate(), ErrInvalidDevAPIConfigs)
}
