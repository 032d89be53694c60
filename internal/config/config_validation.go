// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. All violations are
// reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
		}
	}

	db := cfg.Storage.DB
	if db.DSN == "" && (db.Host == "" || db.Name == "" || db.Username == "") {
		errs = append(errs, fmt.Errorf("%w: either dsn or host, name and username are required", ErrInvalidStorageConfigs))
	}
	if db.Port < 0 || db.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d out of range", ErrInvalidStorageConfigs, db.Port))
	}
	if db.MaxOpenConns < 0 {
		errs = append(errs, fmt.Errorf("%w: max open conns must not be negative", ErrInvalidStorageConfigs))
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		errs = append(errs, fmt.Errorf("%w: http address: %w", ErrInvalidServerConfigs, err))
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs))
	}
	if cfg.Server.AuthRateLimit > 0 && cfg.Server.AuthRateBurst < 1 {
		errs = append(errs, fmt.Errorf("%w: auth rate burst must be at least 1", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}
