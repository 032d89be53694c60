// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// AccountRepository persists registered accounts.
type AccountRepository interface {
	// CreateAccount inserts the account in its own transaction and returns
	// it with server-assigned fields. A taken login yields
	// ErrLoginAlreadyExists.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByLogin returns the account including its password hash,
	// or ErrAccountNotFound.
	FindAccountByLogin(ctx context.Context, login string) (models.Account, error)

	// FindAccountByID returns the account including its password hash,
	// or ErrAccountNotFound.
	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)
}

// WalletRepository is ownership-scoped wallet CRUD. Every method takes the
// authenticated account id and never returns a wallet owned by another
// account.
type WalletRepository interface {
	CreateWallet(ctx context.Context, accountID int64, fields models.Fields) (models.Wallet, error)
	GetWallet(ctx context.Context, accountID, walletID int64) (models.Wallet, error)
	ListWallets(ctx context.Context, accountID int64) ([]models.Wallet, error)
	UpdateWallet(ctx context.Context, accountID, walletID int64, fields models.Fields) (models.Wallet, error)
	DeleteWallet(ctx context.Context, accountID, walletID int64) (int64, error)
}

// ErrorClassificator decides whether a failed database call is worth
// retrying. The result is only logged; callers never retry automatically.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
