// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testWallet(id int64) models.Wallet {
	return models.Wallet{
		ID:        id,
		AccountID: tokenOwner,
		Title:     "Cash",
		Balance:   500,
		CreatedAt: testCreatedAt,
		UpdatedAt: testCreatedAt,
	}
}

// ─────────────────────────────────────────────
// Auth
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	const body = `{"account_name":"Alice","account_login":"alice","account_password":"secret"}`

	tests := []struct {
		name        string
		body        string
		contentType string
		registerErr error
		wantStatus  int
		wantMessage string
		wantBearer  bool
	}{
		{name: "created", body: body, wantStatus: http.StatusCreated, wantBearer: true},
		{
			name:        "missing password",
			body:        `{"account_name":"Alice","account_login":"alice"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "account_password",
		},
		{
			name:        "unknown field",
			body:        `{"account_name":"Alice","account_login":"alice","account_password":"s","role":"admin"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "role",
		},
		{name: "malformed json", body: `{"account_name":`, wantStatus: http.StatusBadRequest, wantMessage: "malformed request body"},
		{
			name:        "login taken",
			body:        body,
			registerErr: fmt.Errorf("account creation ended with error: %w", store.ErrLoginAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: "login already exists",
		},
		{
			name:        "storage failure",
			body:        body,
			registerErr: fmt.Errorf("account creation ended with error: %w", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{name: "wrong content type", body: body, contentType: "text/plain", wantStatus: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Credentials
			auth := &fakeAuthService{
				registerFn: func(_ context.Context, c models.Credentials) (models.Account, error) {
					got = c
					if tt.registerErr != nil {
						return models.Account{}, tt.registerErr
					}
					return models.Account{ID: 42, Name: c.Name, Login: c.Login, CreatedAt: testCreatedAt}, nil
				},
			}
			srv := newTestServer(t, auth, nil, unlimited)

			req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/auth/registration/", strings.NewReader(tt.body))
			require.NoError(t, err)
			contentType := tt.contentType
			if contentType == "" {
				contentType = "application/json"
			}
			req.Header.Set("Content-Type", contentType)

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBearer {
				assert.Equal(t, "Bearer issued-token", resp.Header.Get("Authorization"))
				assert.Equal(t, models.Credentials{Name: "Alice", Login: "alice", Password: "secret"}, got)

				var raw map[string]any
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
				assert.Equal(t, float64(42), raw["account_id"])
				assert.Equal(t, "alice", raw["account_login"])
				assert.NotContains(t, raw, "account_password")
				assert.NotContains(t, raw, "PasswordHash")
				return
			}

			assert.Empty(t, resp.Header.Get("Authorization"))
			if tt.wantMessage != "" {
				var e models.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
				assert.Contains(t, e.Message, tt.wantMessage)
			}
		})
	}
}

func TestRegister_TokenFailureIsInternal(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(_ context.Context, c models.Credentials) (models.Account, error) {
			return models.Account{ID: 1, Login: c.Login}, nil
		},
		createTokenFn: func(context.Context, models.Account) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	srv := newTestServer(t, auth, nil, unlimited)

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/auth/registration/",
		`{"account_name":"A","account_login":"a","account_password":"p"}`, "")

	assert.Equal(t, http.StatusInternalServerError, resp.status)
	assert.Empty(t, resp.header.Get("Authorization"))
	assert.Equal(t, "internal server error", decodeMessage(t, resp.body))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		loginErr    error
		wantStatus  int
		wantMessage string
	}{
		{name: "ok", body: `{"account_login":"alice","account_password":"secret"}`, wantStatus: http.StatusOK},
		{
			name:        "wrong credentials",
			body:        `{"account_login":"alice","account_password":"nope"}`,
			loginErr:    service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid login or password",
		},
		{
			name:        "name is not accepted",
			body:        `{"account_name":"Alice","account_login":"alice","account_password":"secret"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "account_name",
		},
		{
			name:        "empty login",
			body:        `{"account_login":"","account_password":"secret"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "account_login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				loginFn: func(_ context.Context, c models.Credentials) (models.Account, error) {
					if tt.loginErr != nil {
						return models.Account{}, tt.loginErr
					}
					return models.Account{ID: tokenOwner, Name: "Alice", Login: c.Login}, nil
				},
			}
			srv := newTestServer(t, auth, nil, unlimited)

			resp := doRequest(t, srv, http.MethodPost, "/api/v1/auth/login/", tt.body, "")
			assert.Equal(t, tt.wantStatus, resp.status)

			if tt.wantMessage == "" {
				assert.Equal(t, "Bearer issued-token", resp.header.Get("Authorization"))
				var account models.Account
				require.NoError(t, json.Unmarshal(resp.body, &account))
				assert.Equal(t, tokenOwner, account.ID)
				return
			}
			assert.Contains(t, decodeMessage(t, resp.body), tt.wantMessage)
		})
	}
}

func TestLogout(t *testing.T) {
	var loggedOut int64
	auth := &fakeAuthService{
		createExpiredTokenFn: func(_ context.Context, accountID int64) (models.Token, error) {
			loggedOut = accountID
			return models.Token{SignedString: "stale"}, nil
		},
	}
	srv := newTestServer(t, auth, nil, unlimited)

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/auth/logout/", "", validToken)

	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "Bearer stale", resp.header.Get("Authorization"))
	assert.Equal(t, tokenOwner, loggedOut)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(resp.body, &msg))
	assert.Equal(t, logoutMessage, msg.Message)

	resp = doRequest(t, srv, http.MethodPost, "/api/v1/auth/logout/", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.status)
}

func TestAccount(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		accountErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "ok", token: validToken, wantStatus: http.StatusOK},
		{name: "no token", wantStatus: http.StatusUnauthorized, wantMessage: "authorization required"},
		{name: "bad token", token: "garbage", wantStatus: http.StatusUnauthorized, wantMessage: "token is invalid"},
		{name: "expired token", token: expiredToken, wantStatus: http.StatusUnauthorized, wantMessage: "token is expired"},
		{
			name:        "account deleted",
			token:       validToken,
			accountErr:  fmt.Errorf("account search by id failed: %w", store.ErrAccountNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "account not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				getAccountFn: func(_ context.Context, accountID int64) (models.Account, error) {
					if tt.accountErr != nil {
						return models.Account{}, tt.accountErr
					}
					return models.Account{ID: accountID, Name: "Alice", Login: "alice"}, nil
				},
			}
			srv := newTestServer(t, auth, nil, unlimited)

			resp := doRequest(t, srv, http.MethodGet, "/api/v1/account/", "", tt.token)
			assert.Equal(t, tt.wantStatus, resp.status)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, resp.body))
				return
			}
			var account models.Account
			require.NoError(t, json.Unmarshal(resp.body, &account))
			assert.Equal(t, tokenOwner, account.ID)
		})
	}
}

// ─────────────────────────────────────────────
// Wallets
// ─────────────────────────────────────────────

func TestListWallets(t *testing.T) {
	t.Run("wallets of the token owner", func(t *testing.T) {
		var owner int64
		wallets := &fakeWalletService{
			listFn: func(_ context.Context, accountID int64) ([]models.Wallet, error) {
				owner = accountID
				return []models.Wallet{testWallet(1), testWallet(2)}, nil
			},
		}
		srv := newTestServer(t, nil, wallets, unlimited)

		resp := doRequest(t, srv, http.MethodGet, "/api/v1/account/wallets/", "", validToken)
		require.Equal(t, http.StatusOK, resp.status)
		assert.Equal(t, tokenOwner, owner)

		var got models.WalletsResponse
		require.NoError(t, json.Unmarshal(resp.body, &got))
		assert.Equal(t, 2, got.Length)
		require.Len(t, got.Wallets, 2)
		assert.Equal(t, int64(2), got.Wallets[1].ID)
	})

	t.Run("no wallets", func(t *testing.T) {
		wallets := &fakeWalletService{
			listFn: func(context.Context, int64) ([]models.Wallet, error) {
				return nil, store.ErrWalletNotFound
			},
		}
		srv := newTestServer(t, nil, wallets, unlimited)

		resp := doRequest(t, srv, http.MethodGet, "/api/v1/account/wallets/", "", validToken)
		assert.Equal(t, http.StatusNotFound, resp.status)
		assert.Equal(t, "wallet not found", decodeMessage(t, resp.body))
	})

	t.Run("requires a token", func(t *testing.T) {
		srv := newTestServer(t, nil, &fakeWalletService{}, unlimited)

		resp := doRequest(t, srv, http.MethodGet, "/api/v1/account/wallets/", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.status)
	})
}

func TestCreateWallet(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantFields  models.Fields
		wantMessage string
	}{
		{
			name:       "title and balance",
			body:       `{"wallet_title":"Cash","wallet_balance":500}`,
			wantStatus: http.StatusCreated,
			wantFields: models.Fields{validators.FieldTitle: "Cash", validators.FieldBalance: int64(500)},
		},
		{
			name:       "with description",
			body:       `{"wallet_title":"Cash","wallet_balance":0,"wallet_description":"daily"}`,
			wantStatus: http.StatusCreated,
			wantFields: models.Fields{
				validators.FieldTitle:       "Cash",
				validators.FieldBalance:     int64(0),
				validators.FieldDescription: "daily",
			},
		},
		{
			name:        "missing balance",
			body:        `{"wallet_title":"Cash"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "wallet_balance",
		},
		{
			name:        "negative balance",
			body:        `{"wallet_title":"Cash","wallet_balance":-1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "wallet_balance",
		},
		{
			name:        "owner cannot be injected",
			body:        `{"wallet_title":"Cash","wallet_balance":1,"account_id":99}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "account_id",
		},
		{
			name:        "title too long",
			body:        `{"wallet_title":"` + strings.Repeat("x", validators.MaxTitleLength+1) + `","wallet_balance":1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "wallet_title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFields models.Fields
			wallets := &fakeWalletService{
				createFn: func(_ context.Context, accountID int64, fields models.Fields) (models.Wallet, error) {
					gotFields = fields
					w := testWallet(10)
					w.AccountID = accountID
					return w, nil
				},
			}
			srv := newTestServer(t, nil, wallets, unlimited)

			resp := doRequest(t, srv, http.MethodPost, "/api/v1/account/wallets/", tt.body, validToken)
			assert.Equal(t, tt.wantStatus, resp.status)

			if tt.wantMessage != "" {
				assert.Contains(t, decodeMessage(t, resp.body), tt.wantMessage)
				assert.Nil(t, gotFields, "service must not be reached")
				return
			}

			assert.Equal(t, tt.wantFields, gotFields)
			var w models.Wallet
			require.NoError(t, json.Unmarshal(resp.body, &w))
			assert.Equal(t, int64(10), w.ID)
		})
	}
}

func TestGetWallet(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		getErr      error
		wantStatus  int
		wantMessage string
	}{
		{name: "own wallet", path: "/api/v1/account/wallets/3", wantStatus: http.StatusOK},
		{
			name:        "foreign or missing wallet",
			path:        "/api/v1/account/wallets/4",
			getErr:      store.ErrWalletNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "wallet not found",
		},
		{name: "non numeric id", path: "/api/v1/account/wallets/abc", wantStatus: http.StatusNotFound, wantMessage: "wallet not found"},
		{name: "zero id", path: "/api/v1/account/wallets/0", wantStatus: http.StatusNotFound, wantMessage: "wallet not found"},
		{name: "negative id", path: "/api/v1/account/wallets/-3", wantStatus: http.StatusNotFound, wantMessage: "wallet not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallets := &fakeWalletService{
				getFn: func(_ context.Context, accountID, walletID int64) (models.Wallet, error) {
					if tt.getErr != nil {
						return models.Wallet{}, tt.getErr
					}
					assert.Equal(t, tokenOwner, accountID)
					return testWallet(walletID), nil
				},
			}
			srv := newTestServer(t, nil, wallets, unlimited)

			resp := doRequest(t, srv, http.MethodGet, tt.path, "", validToken)
			assert.Equal(t, tt.wantStatus, resp.status)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, resp.body))
				return
			}
			var w models.Wallet
			require.NoError(t, json.Unmarshal(resp.body, &w))
			assert.Equal(t, int64(3), w.ID)
			assert.Equal(t, "Cash", w.Title)
		})
	}
}

func TestUpdateWallet(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		updateErr   error
		wantStatus  int
		wantFields  models.Fields
		wantMessage string
	}{
		{
			name:       "balance only",
			body:       `{"wallet_balance":750}`,
			wantStatus: http.StatusOK,
			wantFields: models.Fields{validators.FieldBalance: int64(750)},
		},
		{
			name:       "clear description",
			body:       `{"wallet_description":null}`,
			wantStatus: http.StatusOK,
			wantFields: models.Fields{validators.FieldDescription: nil},
		},
		{name: "empty object", body: `{}`, wantStatus: http.StatusBadRequest, wantMessage: "no wallet fields to update"},
		{
			name:        "null title",
			body:        `{"wallet_title":null}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "wallet_title",
		},
		{
			name:        "foreign wallet",
			body:        `{"wallet_balance":1}`,
			updateErr:   store.ErrWalletNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "wallet not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFields models.Fields
			wallets := &fakeWalletService{
				updateFn: func(_ context.Context, _, walletID int64, fields models.Fields) (models.Wallet, error) {
					gotFields = fields
					if tt.updateErr != nil {
						return models.Wallet{}, tt.updateErr
					}
					return testWallet(walletID), nil
				},
			}
			srv := newTestServer(t, nil, wallets, unlimited)

			resp := doRequest(t, srv, http.MethodPatch, "/api/v1/account/wallets/5", tt.body, validToken)
			assert.Equal(t, tt.wantStatus, resp.status)

			if tt.wantMessage != "" {
				assert.Contains(t, decodeMessage(t, resp.body), tt.wantMessage)
				return
			}
			assert.Equal(t, tt.wantFields, gotFields)
		})
	}
}

func TestDeleteWallet(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		wallets := &fakeWalletService{
			deleteFn: func(_ context.Context, accountID, walletID int64) (int64, error) {
				assert.Equal(t, tokenOwner, accountID)
				assert.Equal(t, int64(8), walletID)
				return 1, nil
			},
		}
		srv := newTestServer(t, nil, wallets, unlimited)

		resp := doRequest(t, srv, http.MethodDelete, "/api/v1/account/wallets/8", "", validToken)
		require.Equal(t, http.StatusOK, resp.status)
		assert.JSONEq(t, `{"deleted":1}`, string(resp.body))
	})

	t.Run("missing", func(t *testing.T) {
		wallets := &fakeWalletService{
			deleteFn: func(context.Context, int64, int64) (int64, error) {
				return 0, store.ErrWalletNotFound
			},
		}
		srv := newTestServer(t, nil, wallets, unlimited)

		resp := doRequest(t, srv, http.MethodDelete, "/api/v1/account/wallets/8", "", validToken)
		assert.Equal(t, http.StatusNotFound, resp.status)
	})
}

// ─────────────────────────────────────────────
// Router-level behaviour
// ─────────────────────────────────────────────

func TestRouter_NotFoundIsJSON(t *testing.T) {
	srv := newTestServer(t, nil, nil, unlimited)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/v2/nothing"},
		{name: "method not allowed", method: http.MethodPost, path: "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, srv, tt.method, tt.path, "", "")
			assert.Equal(t, http.StatusNotFound, resp.status)
			assert.Equal(t, "application/json", resp.header.Get("Content-Type"))
			assert.Equal(t, "not found", decodeMessage(t, resp.body))
		})
	}
}

func TestRouter_TraceIDAndCompression(t *testing.T) {
	srv := newTestServer(t, &fakeAuthService{
		getAccountFn: func(_ context.Context, id int64) (models.Account, error) {
			return models.Account{ID: id, Name: strings.Repeat("n", 50), Login: "alice"}, nil
		},
	}, nil, unlimited)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/account/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+validToken)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set(traceIDHeader, "trace-abc")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "trace-abc", resp.Header.Get(traceIDHeader))
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
}

func TestRouter_Metrics(t *testing.T) {
	srv := newTestServer(t, nil, nil, unlimited)

	// rejected by the auth gate; still labelled with the full route pattern
	_ = doRequest(t, srv, http.MethodGet, "/api/v1/account/", "", "")
	_ = doRequest(t, srv, http.MethodGet, "/api/v1/account/wallets/5", "", "")
	_ = doRequest(t, srv, http.MethodGet, "/api/v1/account/wallets/6", "", "")
	_ = doRequest(t, srv, http.MethodGet, "/api/v2/nothing", "", "")

	resp := doRequest(t, srv, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.status)

	body := string(resp.body)
	// chi drops the trailing slash from the joined pattern
	assert.Contains(t, body, `wallet_keeper_http_requests_total{method="GET",route="/api/v1/account",status="401"} 1`)
	assert.Contains(t, body, `wallet_keeper_http_requests_total{method="GET",route="/api/v1/account/wallets/{id}",status="401"} 2`)
	assert.Contains(t, body, `wallet_keeper_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.NotContains(t, body, `route="/api/v1/account/*"`)
}

func TestRouter_AuthRateLimit(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(context.Context, models.Credentials) (models.Account, error) {
			return models.Account{}, service.ErrInvalidCredentials
		},
	}
	srv := newTestServer(t, auth, nil, config.Server{
		RequestTimeout: 5 * time.Second,
		AuthRateLimit:  0.001,
		AuthRateBurst:  2,
	})

	body := `{"account_login":"alice","account_password":"x"}`
	for i := 0; i < 2; i++ {
		resp := doRequest(t, srv, http.MethodPost, "/api/v1/auth/login/", body, "")
		require.Equal(t, http.StatusUnauthorized, resp.status, "request %d", i)
	}

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/auth/login/", body, "")
	assert.Equal(t, http.StatusTooManyRequests, resp.status)
	assert.Equal(t, "1", resp.header.Get("Retry-After"))
	assert.Equal(t, "too many requests", decodeMessage(t, resp.body))

	// authenticated routes are not throttled
	resp = doRequest(t, srv, http.MethodGet, "/api/v1/account/wallets/", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.status)
}
