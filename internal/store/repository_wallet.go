// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// walletRepository is the PostgreSQL-backed implementation of
// [WalletRepository].
//
// Statements are built with squirrel. Column names come only from
// [writableWalletColumns]; values are always bound parameters. Every
// statement is scoped by account_id, so a wallet of another account behaves
// exactly like a missing one.
type walletRepository struct {
	*DB
	logger *logger.Logger
}

// NewWalletRepository constructs a [WalletRepository] backed by the
// provided database connection and logger.
func NewWalletRepository(db *DB, logger *logger.Logger) WalletRepository {
	logger.Debug().Msg("creating wallet repository")
	return &walletRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateWallet inserts a wallet owned by accountID from the supplied field
// subset and returns the stored row.
func (r *walletRepository) CreateWallet(ctx context.Context, accountID int64, fields models.Fields) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	values, err := walletValues(fields)
	if err != nil {
		log.Err(err).
			Str("func", "*walletRepository.CreateWallet").
			Int64("account_id", accountID).
			Msg("rejected field set")
		return models.Wallet{}, err
	}
	values[walletColumnAccountID] = accountID

	query, args, err := psql.Insert(walletTable).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(walletColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var wallet models.Wallet
	err = r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		var scanErr error
		wallet, scanErr = scanWallet(tx.QueryRowContext(ctx, query, args...))
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*walletRepository.CreateWallet").
				Int64("account_id", accountID).
				Str("classification", r.classify(scanErr)).
				Msg("failed to insert wallet")
			return scanErr
		}
		return nil
	})
	if err != nil {
		return models.Wallet{}, err
	}

	return wallet, nil
}

// GetWallet returns the wallet only if it belongs to accountID.
func (r *walletRepository) GetWallet(ctx context.Context, accountID, walletID int64) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(walletColumns...).
		From(walletTable).
		Where(sq.Eq{walletColumnAccountID: accountID, walletColumnID: walletID}).
		ToSql()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	wallet, err := scanWallet(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrWalletNotFound) {
			log.Err(err).
				Str("func", "*walletRepository.GetWallet").
				Int64("account_id", accountID).
				Int64("wallet_id", walletID).
				Str("classification", r.classify(err)).
				Msg("failed to get wallet")
		}
		return models.Wallet{}, err
	}

	return wallet, nil
}

// ListWallets returns every wallet of accountID ordered by id. An account
// without wallets yields ErrWalletNotFound.
func (r *walletRepository) ListWallets(ctx context.Context, accountID int64) ([]models.Wallet, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(walletColumns...).
		From(walletTable).
		Where(sq.Eq{walletColumnAccountID: accountID}).
		OrderBy(walletColumnID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*walletRepository.ListWallets").
			Int64("account_id", accountID).
			Str("classification", r.classify(err)).
			Msg("failed to execute query for listing wallets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	wallets := make([]models.Wallet, 0, 16)
	for rows.Next() {
		wallet, scanErr := scanWalletRow(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*walletRepository.ListWallets").
				Int64("account_id", accountID).
				Int("iteration", len(wallets)).
				Msg("failed to scan wallet row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		wallets = append(wallets, wallet)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*walletRepository.ListWallets").
			Int64("account_id", accountID).
			Msg("error iterating wallet rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(wallets) == 0 {
		return nil, ErrWalletNotFound
	}

	return wallets, nil
}

// UpdateWallet sets only the supplied columns plus updated_at on the wallet
// matching both ids and returns the updated row.
func (r *walletRepository) UpdateWallet(ctx context.Context, accountID, walletID int64, fields models.Fields) (models.Wallet, error) {
	log := logger.FromContext(ctx)

	values, err := walletValues(fields)
	if err != nil {
		log.Err(err).
			Str("func", "*walletRepository.UpdateWallet").
			Int64("account_id", accountID).
			Int64("wallet_id", walletID).
			Msg("rejected field set")
		return models.Wallet{}, err
	}
	if len(values) == 0 {
		return models.Wallet{}, fmt.Errorf("%w: no columns to update", ErrBuildingSQLQuery)
	}

	query, args, err := psql.Update(walletTable).
		SetMap(values).
		Set(walletColumnUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{walletColumnAccountID: accountID, walletColumnID: walletID}).
		Suffix("RETURNING " + strings.Join(walletColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var wallet models.Wallet
	err = r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		var scanErr error
		wallet, scanErr = scanWallet(tx.QueryRowContext(ctx, query, args...))
		if scanErr != nil && !errors.Is(scanErr, ErrWalletNotFound) {
			log.Err(scanErr).
				Str("func", "*walletRepository.UpdateWallet").
				Int64("account_id", accountID).
				Int64("wallet_id", walletID).
				Strs("columns", sortedKeys(values)).
				Str("classification", r.classify(scanErr)).
				Msg("failed to update wallet")
		}
		return scanErr
	})
	if err != nil {
		return models.Wallet{}, err
	}

	return wallet, nil
}

// DeleteWallet removes the wallet matching both ids and returns the number
// of deleted rows. Nothing deleted yields ErrWalletNotFound.
func (r *walletRepository) DeleteWallet(ctx context.Context, accountID, walletID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(walletTable).
		Where(sq.Eq{walletColumnAccountID: accountID, walletColumnID: walletID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "*walletRepository.DeleteWallet").
				Int64("account_id", accountID).
				Int64("wallet_id", walletID).
				Str("classification", r.classify(execErr)).
				Msg("failed to delete wallet")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}

		affected, rowsErr := result.RowsAffected()
		if rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
		}
		if affected == 0 {
			return ErrWalletNotFound
		}

		deleted = affected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// walletValues copies fields into a column map after checking every key
// against the writable column whitelist.
func walletValues(fields models.Fields) (map[string]any, error) {
	values := make(map[string]any, len(fields)+1)
	for _, name := range sortedKeys(fields) {
		if _, ok := writableWalletColumns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWalletField, name)
		}
		values[name] = fields[name]
	}
	return values, nil
}

func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanWallet scans a single-row result. sql.ErrNoRows becomes
// ErrWalletNotFound; a query failure surfaces as ErrExecutingQuery.
func scanWallet(row *sql.Row) (models.Wallet, error) {
	if err := row.Err(); err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	wallet, err := scanWalletRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Wallet{}, ErrWalletNotFound
		}
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return wallet, nil
}

func scanWalletRow(row rowScanner) (models.Wallet, error) {
	var (
		wallet      models.Wallet
		description sql.NullString
	)

	err := row.Scan(
		&wallet.ID,
		&wallet.AccountID,
		&wallet.Title,
		&wallet.Balance,
		&description,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	)
	if err != nil {
		return models.Wallet{}, err
	}

	if description.Valid {
		wallet.Description = &description.String
	}

	return wallet, nil
}
