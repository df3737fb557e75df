package config

import "errors"

// Validation errors returned by the config views when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or an in-memory DSN, which cannot survive a
	// restart).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty token storage key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDevAPIConfigs indicates invalid development API settings.
	ErrInvalidDevAPIConfigs = errors.New("invalid devapi configuration")
)
