// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

const (
	createAccount = `INSERT INTO account (name, login, password)
    VALUES ($1, $2, $3)
    RETURNING id, name, login, password, created_at;`

	findAccountByLogin = `SELECT id, name, login, password, created_at
    FROM account
    WHERE login = $1;`

	findAccountByID = `SELECT id, name, login, password, created_at
    FROM account
    WHERE id = $1;`
)

const (
	walletTable = "wallet"

	walletColumnID          = "id"
	walletColumnAccountID   = "account_id"
	walletColumnTitle       = "title"
	walletColumnBalance     = "balance"
	walletColumnDescription = "description"
	walletColumnCreatedAt   = "created_at"
	walletColumnUpdatedAt   = "updated_at"
)

// walletColumns is the column order every wallet query selects and scans.
var walletColumns = []string{
	walletColumnID,
	walletColumnAccountID,
	walletColumnTitle,
	walletColumnBalance,
	walletColumnDescription,
	walletColumnCreatedAt,
	walletColumnUpdatedAt,
}

// writableWalletColumns is the only source of column names that reach
// generated SQL from caller input.
var writableWalletColumns = map[string]struct{}{
	walletColumnTitle:       {},
	walletColumnBalance:     {},
	walletColumnDescription: {},
}

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
