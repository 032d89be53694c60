// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-2xx API response.
// Message is a generic, client-safe description.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is returned by endpoints that have no resource to echo,
// such as logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// WalletsResponse wraps a list of wallets owned by the caller.
type WalletsResponse struct {
	Wallets []Wallet `json:"wallets"`

	// Length is the number of entries in Wallets.
	Length int `json:"length"`
}

// DeleteResponse reports how many wallets were removed.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
