// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation and lookup against the
// "account" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account inside a transaction and returns the
// fully populated [models.Account] with server-assigned fields (ID,
// CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	var created models.Account
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		row := tx.QueryRowContext(ctx, createAccount, account.Name, account.Login, account.PasswordHash)

		// create account in db
		if err := row.Err(); err != nil {
			log.Err(err).
				Str("func", "*accountRepository.CreateAccount").
				Str("classification", r.db.classify(err)).
				Msg("error inserting account")

			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return ErrLoginAlreadyExists
			default:
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}

		// scan saved account from db
		if err := row.Scan(&created.ID, &created.Name, &created.Login, &created.PasswordHash, &created.CreatedAt); err != nil {
			log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrLoginAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	return created, nil
}

// FindAccountByLogin retrieves the account whose Login matches login.
//
// Error handling:
//   - No rows → [ErrAccountNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) FindAccountByLogin(ctx context.Context, login string) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByLogin", findAccountByLogin, login)
}

// FindAccountByID retrieves the account with the given id.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findAccount(ctx, "*accountRepository.FindAccountByID", findAccountByID, accountID)
}

func (r *accountRepository) findAccount(ctx context.Context, fn, query string, arg any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", fn).
			Str("classification", r.db.classify(err)).
			Msg("error querying account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&found.ID, &found.Name, &found.Login, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", fn).Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
