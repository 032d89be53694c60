// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// authLimiter throttles the unauthenticated auth endpoints per client IP.
	// nil disables throttling.
	authLimiter    *ipRateLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
	if cfg.AuthRateLimit > 0 {
		h.authLimiter = newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	}

	logger.Info().
		Dur("request_timeout", cfg.RequestTimeout).
		Float64("auth_rate_limit", cfg.AuthRateLimit).
		Msg("http handler created")
	return h
}
