// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repositories how to label a failed query in
// their logs.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// String returns the label used in log fields.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// transientCodes are the server codes a wallet write can hit under load or
// failover: lost connections, serialization conflicts and deadlocks between
// concurrent balance updates, and a server that is still starting up.
var transientCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
	pgerrcode.QueryCanceled:          {},
}

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// pgx error codes.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] only for a wrapped *pgconn.PgError whose code
// is transient. Constraint violations (duplicate login, negative balance
// check) and anything that did not come from the server are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	if _, ok := transientCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
