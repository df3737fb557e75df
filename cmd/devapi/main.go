package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profile-keeper/internal/config"
	"github.com/MKhiriev/go-profile-keeper/internal/devapi"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/server"
	"github.com/MKhiriev/go-profile-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("profile-keeper-devapi")
	cfg, err := config.GetDevAPIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Address).Str("issuer", cfg.TokenIssuer).Dur("token_duration", cfg.TokenDuration).Msg("received configs")

	handler := devapi.NewHandler(*cfg, log)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
