// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the wallet keeper REST API.
//
// [WalletClient] keeps the bearer token returned by Register and Login and
// attaches it to every authenticated call. Non-2xx responses are mapped to the
// sentinel errors in errors.go so callers can branch with [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// WalletClient talks to one wallet keeper server on behalf of one account.
type WalletClient interface {
	// SetToken replaces the stored bearer token.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, credentials models.Credentials) (models.Account, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, login, password string) (models.Account, error)

	// Logout asks the server for an expired token and forgets the stored one.
	Logout(ctx context.Context) error

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.Account, error)

	CreateWallet(ctx context.Context, wallet WalletInput) (models.Wallet, error)
	ListWallets(ctx context.Context) ([]models.Wallet, error)
	GetWallet(ctx context.Context, walletID int64) (models.Wallet, error)
	UpdateWallet(ctx context.Context, walletID int64, patch WalletInput) (models.Wallet, error)
	DeleteWallet(ctx context.Context, walletID int64) error
}
