// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the wallet API.
//
// Core concepts:
//   - Schema: a strict description of one request body, with an explicit
//     alias table between external (API) and internal (storage) field names.
//     Schema.Decode turns a JSON body into models.Fields keyed by internal
//     names, holding only the keys the caller supplied.
//   - Validator: generic interface to validate arbitrary values. Services use
//     it to re-check normalized input before it reaches storage.
//
// Every failure is a *ValidationError that matches ErrValidation with
// errors.Is and names the offending external field.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// names fields that must be present.
	Validate(context.Context, any, ...string) error
}
