// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an issued or verified session token.
//
// SignedString holds the compact JWS form (header.payload.signature) that is
// sent in the "Authorization: Bearer" header. AccountID and ExpiresAt are the
// only claims the server trusts after verification.
type Token struct {
	// SignedString is the compact serialized token.
	SignedString string `json:"-"`

	// AccountID is the identity carried in the "sub" claim.
	AccountID int64 `json:"-"`

	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
