package service

import (
	"github.com/MKhiriev/go-profile-keeper/internal/adapter"
	"github.com/MKhiriev/go-profile-keeper/internal/logger"
	"github.com/MKhiriev/go-profile-keeper/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(storages.TokenStore, serverAdapter, logger),
	}
}
