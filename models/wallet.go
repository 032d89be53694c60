// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Wallet is a named, balance-bearing record owned by exactly one account.
type Wallet struct {
	// ID is the server-assigned wallet identifier.
	ID int64 `json:"wallet_id"`

	// AccountID is the owner of the wallet. It is taken from the
	// authenticated session only and is never exposed.
	AccountID int64 `json:"-"`

	// Title is a short human-readable name, 1 to 40 characters long.
	Title string `json:"wallet_title"`

	// Balance is a non-negative amount in minor units.
	Balance int64 `json:"wallet_balance"`

	// Description is optional; nil is stored as NULL.
	Description *string `json:"wallet_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Wallet model.
func (w Wallet) TableName() string {
	return "wallet"
}
