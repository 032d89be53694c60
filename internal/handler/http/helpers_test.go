// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/require"
)

const (
	validToken   = "valid-token"
	expiredToken = "expired-token"
	tokenOwner   = int64(7)
)

var errUnexpectedCall = errors.New("unexpected call")

// ─────────────────────────────────────────────
// Fake AuthService
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case. ParseToken accepts validToken for tokenOwner and
// reports expiredToken as expired unless parseTokenFn is set.
type fakeAuthService struct {
	registerFn           func(ctx context.Context, c models.Credentials) (models.Account, error)
	loginFn              func(ctx context.Context, c models.Credentials) (models.Account, error)
	getAccountFn         func(ctx context.Context, accountID int64) (models.Account, error)
	createTokenFn        func(ctx context.Context, account models.Account) (models.Token, error)
	createExpiredTokenFn func(ctx context.Context, accountID int64) (models.Token, error)
	parseTokenFn         func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, c models.Credentials) (models.Account, error) {
	if f.registerFn == nil {
		return models.Account{}, errUnexpectedCall
	}
	return f.registerFn(ctx, c)
}

func (f *fakeAuthService) Login(ctx context.Context, c models.Credentials) (models.Account, error) {
	if f.loginFn == nil {
		return models.Account{}, errUnexpectedCall
	}
	return f.loginFn(ctx, c)
}

func (f *fakeAuthService) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	if f.getAccountFn == nil {
		return models.Account{}, errUnexpectedCall
	}
	return f.getAccountFn(ctx, accountID)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, account)
	}
	return models.Token{SignedString: "issued-token", AccountID: account.ID}, nil
}

func (f *fakeAuthService) CreateExpiredToken(ctx context.Context, accountID int64) (models.Token, error) {
	if f.createExpiredTokenFn != nil {
		return f.createExpiredTokenFn(ctx, accountID)
	}
	return models.Token{SignedString: "expired-issued-token", AccountID: accountID}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	switch tokenString {
	case validToken:
		return models.Token{SignedString: tokenString, AccountID: tokenOwner}, nil
	case expiredToken:
		return models.Token{}, service.ErrTokenIsExpired
	default:
		return models.Token{}, service.ErrTokenIsInvalid
	}
}

// ─────────────────────────────────────────────
// Fake WalletService
// ─────────────────────────────────────────────

type fakeWalletService struct {
	createFn func(ctx context.Context, accountID int64, fields models.Fields) (models.Wallet, error)
	getFn    func(ctx context.Context, accountID, walletID int64) (models.Wallet, error)
	listFn   func(ctx context.Context, accountID int64) ([]models.Wallet, error)
	updateFn func(ctx context.Context, accountID, walletID int64, fields models.Fields) (models.Wallet, error)
	deleteFn func(ctx context.Context, accountID, walletID int64) (int64, error)
}

func (f *fakeWalletService) CreateWallet(ctx context.Context, accountID int64, fields models.Fields) (models.Wallet, error) {
	if f.createFn == nil {
		return models.Wallet{}, errUnexpectedCall
	}
	return f.createFn(ctx, accountID, fields)
}

func (f *fakeWalletService) GetWallet(ctx context.Context, accountID, walletID int64) (models.Wallet, error) {
	if f.getFn == nil {
		return models.Wallet{}, errUnexpectedCall
	}
	return f.getFn(ctx, accountID, walletID)
}

func (f *fakeWalletService) ListWallets(ctx context.Context, accountID int64) ([]models.Wallet, error) {
	if f.listFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listFn(ctx, accountID)
}

func (f *fakeWalletService) UpdateWallet(ctx context.Context, accountID, walletID int64, fields models.Fields) (models.Wallet, error) {
	if f.updateFn == nil {
		return models.Wallet{}, errUnexpectedCall
	}
	return f.updateFn(ctx, accountID, walletID, fields)
}

func (f *fakeWalletService) DeleteWallet(ctx context.Context, accountID, walletID int64) (int64, error) {
	if f.deleteFn == nil {
		return 0, errUnexpectedCall
	}
	return f.deleteFn(ctx, accountID, walletID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given fakes. The wallet fake is
// wrapped by the real validation layer, as in production.
func newTestHandler(auth *fakeAuthService, wallets *fakeWalletService) *Handler {
	if auth == nil {
		auth = &fakeAuthService{}
	}
	if wallets == nil {
		wallets = &fakeWalletService{}
	}

	return &Handler{
		services: &service.Services{
			AuthService:   auth,
			WalletService: service.NewWalletValidationService().Wrap(wallets),
		},
		requestTimeout: 5 * time.Second,
		logger:         logger.Nop(),
	}
}

// newTestServer serves the full router, including metrics and the rate
// limiter configured by cfg.
func newTestServer(t *testing.T, auth *fakeAuthService, wallets *fakeWalletService, cfg config.Server) *httptest.Server {
	t.Helper()
	h := newTestHandler(auth, wallets)
	full := NewHandler(h.services, cfg, metrics.New(), logger.Nop())

	srv := httptest.NewServer(full.Init())
	t.Cleanup(srv.Close)
	return srv
}

// unlimited is a server config without rate limiting.
var unlimited = config.Server{RequestTimeout: 5 * time.Second, AuthRateLimit: -1}

type testResponse struct {
	status int
	header http.Header
	body   []byte
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, body, token string) testResponse {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return testResponse{status: resp.StatusCode, header: resp.Header, body: data}
}

func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", body)
	return resp.Message
}
