// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a registered identity that owns wallets.
//
// PasswordHash holds the encoded argon2id hash of the account password.
// It is never serialized and services clear it before an account leaves
// the service layer.
type Account struct {
	// ID is the server-assigned account identifier.
	ID int64 `json:"account_id"`

	// Name is the display name of the account owner.
	Name string `json:"account_name"`

	// Login is the globally unique login used for authentication.
	Login string `json:"account_login"`

	// PasswordHash is the salted one-way hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "account"
}

// WithoutPassword returns a copy of the account with PasswordHash cleared.
func (a Account) WithoutPassword() Account {
	a.PasswordHash = ""
	return a
}

// Credentials carries the plaintext values supplied on registration or login.
// Name is empty on login.
type Credentials struct {
	Name     string
	Login    string
	Password string
}
