package service

import (
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/notify"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
)

type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	ExpenseService       ExpenseService
	AppInfoService       AppInfoService
}

// Dependencies carries the collaborators shared by several services.
type Dependencies struct {
	Hasher        crypto.PasswordHasher
	CodeGenerator crypto.CodeGenerator
	Notifier      notify.Notifier
	Clock         utils.Clock
}

func NewServices(storages *store.Storages, deps Dependencies, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, deps.Hasher, deps.Clock, cfg, logger),
		PasswordResetService: NewPasswordResetService(
			storages.UserRepository,
			deps.Hasher,
			deps.CodeGenerator,
			deps.Notifier,
			deps.Clock,
			cfg,
			logger,
		),
		ExpenseService: NewExpenseService(storages.ExpenseRepository, logger),
		AppInfoService: appInfo,
	}, nil
}
