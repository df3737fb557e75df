package config

import (
	"fmt"
	"time"
)

// DevAPIConfig is the configuration view of the local development API.
type DevAPIConfig struct {
	Address       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// GetDevAPIConfig builds and validates the development API config view.
func GetDevAPIConfig() (*DevAPIConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := newDevAPIConfig(cfg)
	return devCfg, devCfg.validate()
}

func newDevAPIConfig(cfg *StructuredConfig) *DevAPIConfig {
	return &DevAPIConfig{
		Address:       cfg.DevAPI.Address,
		TokenSignKey:  cfg.DevAPI.TokenSignKey,
		TokenIssuer:   cfg.DevAPI.TokenIssuer,
		TokenDuration: cfg.DevAPI.TokenDuration,
	}
}
