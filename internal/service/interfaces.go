// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// AuthService owns credentials and session tokens.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.Account, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)
	GetAccount(ctx context.Context, accountID int64) (models.Account, error)

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	CreateExpiredToken(ctx context.Context, accountID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// WalletService is ownership-scoped wallet CRUD. accountID always comes from
// the authenticated session.
type WalletService interface {
	CreateWallet(ctx context.Context, accountID int64, fields models.Fields) (models.Wallet, error)
	GetWallet(ctx context.Context, accountID, walletID int64) (models.Wallet, error)
	ListWallets(ctx context.Context, accountID int64) ([]models.Wallet, error)
	UpdateWallet(ctx context.Context, accountID, walletID int64, fields models.Fields) (models.Wallet, error)
	DeleteWallet(ctx context.Context, accountID, walletID int64) (int64, error)
}

// WalletServiceWrapper defines middleware composition for WalletService.
// Implementations wrap an existing WalletService to add behavior such as
// logging or validating.
type WalletServiceWrapper interface {
	Wrap(WalletService) WalletService // returns a decorated WalletService applying additional behavior
}
