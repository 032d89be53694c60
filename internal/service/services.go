// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

type Services struct {
	AuthService   AuthService
	WalletService WalletService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	walletService := NewWalletService(storages.WalletRepository, logger)

	return &Services{
		AuthService:   NewAuthService(storages.AccountRepository, cfg.App, logger),
		WalletService: NewWalletValidationService().Wrap(walletService),
	}
}
