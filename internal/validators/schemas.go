// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Internal field names. They double as column names in storage.
const (
	FieldName        = "name"
	FieldLogin       = "login"
	FieldPassword    = "password"
	FieldTitle       = "title"
	FieldBalance     = "balance"
	FieldDescription = "description"
)

// Bounds shared by the schemas and WalletFieldsValidator.
const (
	MaxNameLength     = 100
	MaxLoginLength    = 64
	MaxPasswordLength = 128
	MaxTitleLength    = 40
)

var (
	accountName     = Field{External: "account_name", Internal: FieldName, Kind: KindString, Required: true, MinLen: 1, MaxLen: MaxNameLength}
	accountLogin    = Field{External: "account_login", Internal: FieldLogin, Kind: KindString, Required: true, MinLen: 1, MaxLen: MaxLoginLength}
	accountPassword = Field{External: "account_password", Internal: FieldPassword, Kind: KindString, Required: true, MinLen: 1, MaxLen: MaxPasswordLength}

	walletTitle       = Field{External: "wallet_title", Internal: FieldTitle, Kind: KindString, MinLen: 1, MaxLen: MaxTitleLength}
	walletBalance     = Field{External: "wallet_balance", Internal: FieldBalance, Kind: KindInteger, Min: 0}
	walletDescription = Field{External: "wallet_description", Internal: FieldDescription, Kind: KindString, Nullable: true, MinLen: 1}
)

// RegistrationSchema validates POST /auth/registration/ bodies.
var RegistrationSchema = NewSchema("registration", accountName, accountLogin, accountPassword)

// LoginSchema validates POST /auth/login/ bodies.
var LoginSchema = NewSchema("login", accountLogin, accountPassword)

// WalletCreateSchema validates POST /account/wallets/ bodies: title and
// balance are required, description is optional and may be null.
var WalletCreateSchema = NewSchema("wallet create",
	required(walletTitle),
	required(walletBalance),
	walletDescription,
)

// WalletUpdateSchema validates PATCH /account/wallets/{id} bodies: every
// field is optional, title and balance may not be null.
var WalletUpdateSchema = NewSchema("wallet update", walletTitle, walletBalance, walletDescription)

func required(f Field) Field {
	f.Required = true
	return f
}
