// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/go-resty/resty/v2"
)

const apiPrefix = "/api/v1"

type httpWalletClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPWalletClient returns a [WalletClient] for the server at address.
// A missing scheme defaults to http. timeout bounds every request; zero
// disables it.
func NewHTTPWalletClient(address string, timeout time.Duration, logger *logger.Logger) (WalletClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpWalletClient{
		client: utils.NewHTTPClient(baseURL+apiPrefix, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpWalletClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpWalletClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpWalletClient) Register(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	var account models.Account

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"account_name":     credentials.Name,
			"account_login":    credentials.Login,
			"account_password": credentials.Password,
		}).
		SetResult(&account).
		Post("/auth/registration/")
	if err != nil {
		return models.Account{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	if err = c.storeBearer(resp); err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}

	return account, nil
}

func (c *httpWalletClient) Login(ctx context.Context, login, password string) (models.Account, error) {
	var account models.Account

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"account_login":    login,
			"account_password": password,
		}).
		SetResult(&account).
		Post("/auth/login/")
	if err != nil {
		return models.Account{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	if err = c.storeBearer(resp); err != nil {
		return models.Account{}, fmt.Errorf("login: %w", err)
	}

	c.logger.Debug().Int64("account_id", account.ID).Msg("logged in")
	return account, nil
}

func (c *httpWalletClient) Logout(ctx context.Context) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post("/auth/logout/")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.SetToken("")
	return nil
}

func (c *httpWalletClient) Me(ctx context.Context) (models.Account, error) {
	var account models.Account
	if err := c.get(ctx, "/account/", &account); err != nil {
		return models.Account{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (c *httpWalletClient) CreateWallet(ctx context.Context, wallet WalletInput) (models.Wallet, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Wallet{}, err
	}

	var created models.Wallet
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(wallet).
		SetResult(&created).
		Post("/account/wallets/")
	if err != nil {
		return models.Wallet{}, fmt.Errorf("create wallet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wallet{}, err
	}

	return created, nil
}

// ListWallets returns an empty slice when the server reports no wallets.
func (c *httpWalletClient) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	var list models.WalletsResponse
	err := c.get(ctx, "/account/wallets/", &list)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Wallet{}, nil
		}
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return list.Wallets, nil
}

func (c *httpWalletClient) GetWallet(ctx context.Context, walletID int64) (models.Wallet, error) {
	var wallet models.Wallet
	if err := c.get(ctx, walletPath(walletID), &wallet); err != nil {
		return models.Wallet{}, fmt.Errorf("get wallet %d: %w", walletID, err)
	}
	return wallet, nil
}

func (c *httpWalletClient) UpdateWallet(ctx context.Context, walletID int64, patch WalletInput) (models.Wallet, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Wallet{}, err
	}

	var updated models.Wallet
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Patch(walletPath(walletID))
	if err != nil {
		return models.Wallet{}, fmt.Errorf("update wallet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wallet{}, err
	}

	return updated, nil
}

func (c *httpWalletClient) DeleteWallet(ctx context.Context, walletID int64) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	var deleted models.DeleteResponse
	resp, err := req.SetResult(&deleted).Delete(walletPath(walletID))
	if err != nil {
		return fmt.Errorf("delete wallet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if deleted.Deleted == 0 {
		return fmt.Errorf("%w: wallet %d was not deleted", ErrNotFound, walletID)
	}

	return nil
}

func (c *httpWalletClient) get(ctx context.Context, path string, result any) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetResult(result).Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *httpWalletClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := c.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func (c *httpWalletClient) storeBearer(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("parse bearer token: %w", err)
	}
	c.SetToken(token)
	return nil
}

func walletPath(walletID int64) string {
	return "/account/wallets/" + strconv.FormatInt(walletID, 10)
}
