// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

var (
	// ErrInvalidWalletID is returned for a wallet id path segment that is not
	// a positive decimal integer. It is answered like a missing wallet.
	ErrInvalidWalletID = errors.New("invalid wallet id")

	// ErrRouteNotFound answers unknown paths and disallowed methods.
	ErrRouteNotFound = errors.New("route not found")

	// ErrTooManyRequests is returned by the auth rate limiter.
	ErrTooManyRequests = errors.New("too many requests")
)
