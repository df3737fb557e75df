package devapi

import (
	"time"

	"github.com/MKhiriev/go-profile-keeper/internal/config"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/validators"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	users     *userStore
	validator validators.Validator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewHandler(cfg config.DevAPIConfig, logger *logger.Logger) *Handler {
	return newHandler(cfg, bcrypt.DefaultCost, logger)
}

func newHandler(cfg config.DevAPIConfig, bcryptCost int, logger *logger.Logger) *Handler {
	logger.Info().Msg("devapi handler created")
	return &Handler{
		users:         newUserStore(bcryptCost),
		validator:     validators.NewUserValidator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}
