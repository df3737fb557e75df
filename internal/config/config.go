// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// profile-keeper binaries. It aggregates all sub-configurations and is
// populated by merging values from defaults, a .env file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level client settings such as the log file
	// location and the storage key of the session token.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the profile API base URL and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// DevAPI holds settings of the local development API.
	DevAPI DevAPI `envPrefix:"DEVAPI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups client application settings.
type App struct {
	// LogFile is the path of the client log file. The TUI owns the terminal,
	// so the client never logs to stdout.
	LogFile string `env:"LOG_FILE"`

	// TokenKey is the fixed key under which the session token is persisted.
	TokenKey string `env:"TOKEN_KEY"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the sqlite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local database connection settings.
type DB struct {
	// DSN is the sqlite file path.
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the profile API base URL, e.g. http://127.0.0.1:8000.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single API request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DevAPI holds the settings of the local development API.
type DevAPI struct {
	// Address is the listen address in host:port form.
	Address string `env:"ADDRESS"`

	// TokenSignKey is the HMAC key used to sign access tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the iss claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued access tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

const (
	defaultHTTPAddress    = "http://127.0.0.1:8000"
	defaultRequestTimeout = 10 * time.Second
	defaultDSN            = "profile-keeper.db"
	defaultLogFile        = "profile-keeper.log"
	defaultTokenKey       = "token"
	defaultDevAPIAddress  = "127.0.0.1:8000"
	defaultTokenIssuer    = "profile-keeper-devapi"
	defaultTokenSignKey   = "profile-keeper-dev-secret"
	defaultTokenDuration  = time.Hour

	defaultDotEnvFile = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:  defaultLogFile,
			TokenKey: defaultTokenKey,
		},
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		DevAPI: DevAPI{
			Address:       defaultDevAPIAddress,
			TokenSignKey:  defaultTokenSignKey,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
	}
}

// GetStructuredConfig builds the merged configuration from all sources using
// the process command-line arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(defaultDotEnvFile, os.Args[1:])
}

func loadStructuredConfig(dotEnvPath string, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
