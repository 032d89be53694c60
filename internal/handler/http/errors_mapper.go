// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is matched top to bottom with errors.Is; the first hit wins.
var errorMappings = []errorMapping{
	{validators.ErrValidation, http.StatusBadRequest, "invalid request body"},
	{service.ErrNothingToUpdate, http.StatusBadRequest, "no wallet fields to update"},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid data provided"},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "authorization required"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "authorization required"},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, "token is expired"},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, "token is invalid"},
	{service.ErrValidationNoAccountID, http.StatusUnauthorized, "authorization required"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid login or password"},

	{store.ErrLoginAlreadyExists, http.StatusConflict, "login already exists"},

	{store.ErrWalletNotFound, http.StatusNotFound, "wallet not found"},
	{ErrInvalidWalletID, http.StatusNotFound, "wallet not found"},
	{store.ErrAccountNotFound, http.StatusNotFound, "account not found"},
	{ErrRouteNotFound, http.StatusNotFound, "not found"},

	{ErrTooManyRequests, http.StatusTooManyRequests, "too many requests"},
}

// mapError returns the status code and the client-safe message for err.
// Validation failures expose the field-level reason; everything unmapped is
// an internal error.
func mapError(err error) (int, string) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		var validationErr *validators.ValidationError
		if m.status == http.StatusBadRequest && errors.As(err, &validationErr) {
			return m.status, validationErr.Error()
		}
		return m.status, m.message
	}

	return http.StatusInternalServerError, "internal server error"
}

// writeError logs err with the request logger and answers with the mapped
// status and a JSON message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
