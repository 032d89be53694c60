// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/go-chi/chi/v5"
)

const walletIDParam = "id"

func (h *Handler) listWallets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrValidationNoAccountID)
		return
	}

	wallets, err := h.services.WalletService.ListWallets(ctx, accountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.WalletsResponse{Wallets: wallets, Length: len(wallets)}, http.StatusOK)
}

func (h *Handler) createWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrValidationNoAccountID)
		return
	}

	fields, err := validators.WalletCreateSchema.Decode(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	wallet, err := h.services.WalletService.CreateWallet(ctx, accountID, fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, wallet, http.StatusCreated)
}

func (h *Handler) getWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, walletID, err := walletRequestIDs(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	wallet, err := h.services.WalletService.GetWallet(ctx, accountID, walletID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, wallet, http.StatusOK)
}

func (h *Handler) updateWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, walletID, err := walletRequestIDs(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	fields, err := validators.WalletUpdateSchema.Decode(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	wallet, err := h.services.WalletService.UpdateWallet(ctx, accountID, walletID, fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, wallet, http.StatusOK)
}

func (h *Handler) deleteWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, walletID, err := walletRequestIDs(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	deleted, err := h.services.WalletService.DeleteWallet(ctx, accountID, walletID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DeleteResponse{Deleted: deleted}, http.StatusOK)
}

// walletRequestIDs returns the authenticated account id and the wallet id
// from the path.
func walletRequestIDs(r *http.Request) (int64, int64, error) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		return 0, 0, service.ErrValidationNoAccountID
	}

	walletID, err := strconv.ParseInt(chi.URLParam(r, walletIDParam), 10, 64)
	if err != nil || walletID <= 0 {
		return 0, 0, ErrInvalidWalletID
	}

	return accountID, walletID, nil
}
