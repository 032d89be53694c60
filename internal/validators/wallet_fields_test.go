// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewWalletFieldsValidator(t *testing.T) {
	v := NewWalletFieldsValidator()
	require.NotNil(t, v)
}

func TestWalletFieldsValidator_Valid(t *testing.T) {
	v := NewWalletFieldsValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		obj      any
		required []string
	}{
		{"full create", models.Fields{FieldTitle: "Main", FieldBalance: int64(100), FieldDescription: "primary"}, []string{FieldTitle, FieldBalance}},
		{"null description", models.Fields{FieldTitle: "Main", FieldBalance: int64(0), FieldDescription: nil}, []string{FieldTitle, FieldBalance}},
		{"pointer description", models.Fields{FieldDescription: strPtr("d")}, nil},
		{"nil pointer description", models.Fields{FieldDescription: (*string)(nil)}, nil},
		{"int balance", models.Fields{FieldBalance: 3}, nil},
		{"balance only", models.Fields{FieldBalance: int64(150)}, nil},
		{"empty set without requirements", models.Fields{}, nil},
		{"pointer to fields", &models.Fields{FieldTitle: "x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(ctx, tt.obj, tt.required...))
		})
	}
}

func TestWalletFieldsValidator_Invalid(t *testing.T) {
	v := NewWalletFieldsValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		obj       any
		required  []string
		wantKind  error
		wantField string
	}{
		{"unsupported type", models.Wallet{}, nil, ErrUnsupportedType, ""},
		{"nil pointer", (*models.Fields)(nil), nil, ErrUnsupportedType, ""},
		{"unknown column", models.Fields{"account_id": int64(2)}, nil, ErrUnknownField, "account_id"},
		{"injection attempt", models.Fields{"title = 'x'; --": "x"}, nil, ErrUnknownField, "title = 'x'; --"},
		{"missing required title", models.Fields{FieldBalance: int64(1)}, []string{FieldTitle, FieldBalance}, ErrMissingField, "wallet_title"},
		{"title wrong type", models.Fields{FieldTitle: 5}, nil, ErrInvalidFieldType, "wallet_title"},
		{"title null", models.Fields{FieldTitle: nil}, nil, ErrInvalidFieldType, "wallet_title"},
		{"title empty", models.Fields{FieldTitle: ""}, nil, ErrFieldOutOfRange, "wallet_title"},
		{"title too long", models.Fields{FieldTitle: strings.Repeat("x", 41)}, nil, ErrFieldOutOfRange, "wallet_title"},
		{"balance float", models.Fields{FieldBalance: 1.5}, nil, ErrInvalidFieldType, "wallet_balance"},
		{"balance negative", models.Fields{FieldBalance: int64(-5)}, nil, ErrFieldOutOfRange, "wallet_balance"},
		{"balance null", models.Fields{FieldBalance: nil}, nil, ErrInvalidFieldType, "wallet_balance"},
		{"description empty", models.Fields{FieldDescription: ""}, nil, ErrFieldOutOfRange, "wallet_description"},
		{"description empty pointer", models.Fields{FieldDescription: strPtr("")}, nil, ErrFieldOutOfRange, "wallet_description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.required...)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantKind)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

// TestWalletFieldsValidator_AcceptsDecodedOutput verifies that whatever the
// update schema produces passes the service-boundary re-check unchanged.
func TestWalletFieldsValidator_AcceptsDecodedOutput(t *testing.T) {
	fields, err := WalletCreateSchema.Decode(strings.NewReader(
		`{"wallet_title":"Main","wallet_balance":100,"wallet_description":null}`))
	require.NoError(t, err)

	assert.NoError(t, NewWalletFieldsValidator().Validate(context.Background(), fields, FieldTitle, FieldBalance))
}
