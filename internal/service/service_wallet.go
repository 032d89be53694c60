// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type walletService struct {
	walletRepository store.WalletRepository

	logger *logger.Logger
}

func NewWalletService(walletRepository store.WalletRepository, logger *logger.Logger) WalletService {
	return &walletService{
		walletRepository: walletRepository,
		logger:           logger,
	}
}

func (w *walletService) CreateWallet(ctx context.Context, accountID int64, fields models.Fields) (models.Wallet, error) {
	wallet, err := w.walletRepository.CreateWallet(ctx, accountID, fields)
	if err != nil {
		return models.Wallet{}, fmt.Errorf("wallet creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("account_id", accountID).
		Int64("wallet_id", wallet.ID).
		Msg("wallet created")

	return wallet, nil
}

func (w *walletService) GetWallet(ctx context.Context, accountID, walletID int64) (models.Wallet, error) {
	return w.walletRepository.GetWallet(ctx, accountID, walletID)
}

func (w *walletService) ListWallets(ctx context.Context, accountID int64) ([]models.Wallet, error) {
	return w.walletRepository.ListWallets(ctx, accountID)
}

func (w *walletService) UpdateWallet(ctx context.Context, accountID, walletID int64, fields models.Fields) (models.Wallet, error) {
	wallet, err := w.walletRepository.UpdateWallet(ctx, accountID, walletID, fields)
	if err != nil {
		if errors.Is(err, store.ErrWalletNotFound) {
			return models.Wallet{}, err
		}
		return models.Wallet{}, fmt.Errorf("wallet update ended with error: %w", err)
	}

	return wallet, nil
}

func (w *walletService) DeleteWallet(ctx context.Context, accountID, walletID int64) (int64, error) {
	deleted, err := w.walletRepository.DeleteWallet(ctx, accountID, walletID)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Int64("account_id", accountID).
		Int64("wallet_id", walletID).
		Msg("wallet deleted")

	return deleted, nil
}
