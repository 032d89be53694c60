// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// dummyPassword is hashed once and verified against when a login is
// unknown, so a missing account costs the same as a wrong password.
const dummyPassword = "go-wallet-keeper/dummy-password"

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using an AccountRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// accountRepository is the data-access layer used to create and look up accounts.
	accountRepository store.AccountRepository

	// hasher hashes and verifies passwords. Its pepper must match the value
	// used at registration time.
	hasher *utils.PasswordHasher

	dummyHashOnce sync.Once
	dummyHash     string
	dummyHashErr  error

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for token issuance and verification.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hasher:            utils.NewPasswordHasher(cfg.PasswordHashKey),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		now:               time.Now,
		logger:            logger,
	}
}

// Register creates a new account.
//
// The password is hashed with argon2id before it reaches storage. A taken
// login is reported by the repository's unique constraint as
// store.ErrLoginAlreadyExists.
//
// The returned account never carries the password hash.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if credentials.Name == "" || credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid registration data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Name:         credentials.Name,
		Login:        credentials.Login,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account.WithoutPassword(), nil
}

// Login authenticates an existing account.
//
// Returns the authenticated account or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - ErrInvalidCredentials if the login is unknown or the password is wrong.
//   - A wrapped storage error if the lookup fails for any other reason.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid login data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByLogin(ctx, credentials.Login)
	if errors.Is(err, store.ErrAccountNotFound) {
		a.burnDummyVerify(ctx, credentials.Password)
		log.Warn().Str("login", credentials.Login).Msg("login attempt for unknown account")
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("account search by login failed")
		return models.Account{}, fmt.Errorf("account search by login failed: %w", err)
	}

	ok, err := a.hasher.Verify(credentials.Password, account.PasswordHash)
	if err != nil {
		log.Err(err).Int64("account_id", account.ID).Msg("stored password hash is unreadable")
		return models.Account{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Int64("account_id", account.ID).Msg("wrong password")
		return models.Account{}, ErrInvalidCredentials
	}

	return account.WithoutPassword(), nil
}

// GetAccount returns the account with accountID without its password hash.
func (a *authService) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	account, err := a.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("account search by id failed")
		}
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}

	return account.WithoutPassword(), nil
}

// CreateToken issues a signed JWT for the given account that expires after
// the configured token duration.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	return a.issue(ctx, account.ID, a.now().Add(a.tokenDuration))
}

// CreateExpiredToken issues a token for accountID that is already expired.
// Logout hands it to the client in place of the live one.
func (a *authService) CreateExpiredToken(ctx context.Context, accountID int64) (models.Token, error) {
	return a.issue(ctx, accountID, a.now())
}

func (a *authService) issue(ctx context.Context, accountID int64, expiresAt time.Time) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, accountID, expiresAt, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired but otherwise valid token yields ErrTokenIsExpired; every other
// failure (signature, algorithm, issuer, subject) yields ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		if errors.Is(err, utils.ErrExpiredToken) {
			return models.Token{}, ErrTokenIsExpired
		}
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// burnDummyVerify runs one verification against a fixed hash and discards
// the result.
func (a *authService) burnDummyVerify(ctx context.Context, password string) {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, a.dummyHashErr = a.hasher.Hash(dummyPassword)
	})
	if a.dummyHashErr != nil {
		logger.FromContext(ctx).Err(a.dummyHashErr).Msg("dummy hash is unavailable")
		return
	}

	_, _ = a.hasher.Verify(password, a.dummyHash)
}
