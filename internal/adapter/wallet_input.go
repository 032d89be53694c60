// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "encoding/json"

// WalletInput is the body of wallet create and update calls. Nil fields are
// left out of the request. ClearDescription sends an explicit null, which
// removes the description on update.
type WalletInput struct {
	Title            *string
	Balance          *int64
	Description      *string
	ClearDescription bool
}

func (in WalletInput) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 3)
	if in.Title != nil {
		body["wallet_title"] = *in.Title
	}
	if in.Balance != nil {
		body["wallet_balance"] = *in.Balance
	}
	switch {
	case in.ClearDescription:
		body["wallet_description"] = nil
	case in.Description != nil:
		body["wallet_description"] = *in.Description
	}
	return json.Marshal(body)
}

// Ptr returns a pointer to v, for filling WalletInput literals.
func Ptr[T any](v T) *T {
	return &v
}
