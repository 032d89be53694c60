// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const logoutMessage = "logged out"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fields, err := validators.RegistrationSchema.Decode(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Register(ctx, models.Credentials{
		Name:     fields.String(validators.FieldName),
		Login:    fields.String(validators.FieldLogin),
		Password: fields.String(validators.FieldPassword),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// the account is already committed here; a token failure is still a 500
	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", account.ID).Msg("account registered")

	setBearer(w, token)
	_, _ = utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fields, err := validators.LoginSchema.Decode(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Login(ctx, models.Credentials{
		Login:    fields.String(validators.FieldLogin),
		Password: fields.String(validators.FieldPassword),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("account_id", account.ID).Msg("account successfully logged in")

	setBearer(w, token)
	_, _ = utils.WriteJSON(w, account, http.StatusOK)
}

// logout hands back a token that is already expired. Tokens are stateless,
// so the previous token stays valid until its own expiry.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrValidationNoAccountID)
		return
	}

	token, err := h.services.AuthService.CreateExpiredToken(ctx, accountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	setBearer(w, token)
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: logoutMessage}, http.StatusOK)
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrValidationNoAccountID)
		return
	}

	account, err := h.services.AuthService.GetAccount(ctx, accountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, account, http.StatusOK)
}

func setBearer(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
}
