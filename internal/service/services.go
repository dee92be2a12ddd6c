package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

type Services struct {
	CredentialService CredentialService
	AuthService       AuthService
	SessionGateway    SessionGateway
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	credentials, err := NewCredentialService(storages.UserRepository, DefaultStrengthPolicy, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating credential service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CredentialService: credentials,
		AuthService:       NewAuthService(credentials, cfg.App, logger),
		SessionGateway:    NewSessionGateway(storages.SessionStorage, utils.NewRandomUUIDGenerator(), cfg.App, logger),
		AppInfoService:    appInfo,
	}, nil
}
