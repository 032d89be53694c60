// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// WalletValidationService re-checks every call at the service boundary
// before it is handed to the wrapped WalletService.
type WalletValidationService struct {
	inner     WalletService
	validator validators.Validator
}

func NewWalletValidationService() WalletServiceWrapper {
	return &WalletValidationService{
		validator: validators.NewWalletFieldsValidator(),
	}
}

func (v *WalletValidationService) CreateWallet(ctx context.Context, accountID int64, fields models.Fields) (models.Wallet, error) {
	if accountID <= 0 {
		return models.Wallet{}, ErrValidationNoAccountID
	}

	// title and balance are mandatory on creation, description is optional
	if err := v.validator.Validate(ctx, fields, validators.FieldTitle, validators.FieldBalance); err != nil {
		return models.Wallet{}, fmt.Errorf("error during wallet validation before saving: %w", err)
	}

	return v.inner.CreateWallet(ctx, accountID, fields)
}

func (v *WalletValidationService) GetWallet(ctx context.Context, accountID, walletID int64) (models.Wallet, error) {
	if accountID <= 0 {
		return models.Wallet{}, ErrValidationNoAccountID
	}
	if walletID <= 0 {
		return models.Wallet{}, store.ErrWalletNotFound
	}

	return v.inner.GetWallet(ctx, accountID, walletID)
}

func (v *WalletValidationService) ListWallets(ctx context.Context, accountID int64) ([]models.Wallet, error) {
	if accountID <= 0 {
		return nil, ErrValidationNoAccountID
	}

	return v.inner.ListWallets(ctx, accountID)
}

func (v *WalletValidationService) UpdateWallet(ctx context.Context, accountID, walletID int64, fields models.Fields) (models.Wallet, error) {
	if accountID <= 0 {
		return models.Wallet{}, ErrValidationNoAccountID
	}
	if len(fields) == 0 {
		return models.Wallet{}, ErrNothingToUpdate
	}
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Wallet{}, fmt.Errorf("error during wallet validation before update: %w", err)
	}
	if walletID <= 0 {
		return models.Wallet{}, store.ErrWalletNotFound
	}

	return v.inner.UpdateWallet(ctx, accountID, walletID, fields)
}

func (v *WalletValidationService) DeleteWallet(ctx context.Context, accountID, walletID int64) (int64, error) {
	if accountID <= 0 {
		return 0, ErrValidationNoAccountID
	}
	if walletID <= 0 {
		return 0, store.ErrWalletNotFound
	}

	return v.inner.DeleteWallet(ctx, accountID, walletID)
}

func (v *WalletValidationService) Wrap(wrapped WalletService) WalletService {
	v.inner = wrapped
	return v
}
