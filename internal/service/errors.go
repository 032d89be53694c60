// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown login and a wrong
	// password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid login or password")

	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrNothingToUpdate       = errors.New("no wallet fields to update")
	ErrValidationNoAccountID = errors.New("no account ID was given")
)
