// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// WalletFieldsValidator re-checks normalized wallet input at the service
// boundary. It accepts models.Fields keyed by internal names and enforces
// the same bounds as WalletUpdateSchema, with Go types instead of JSON types.
type WalletFieldsValidator struct {
	schema *Schema
}

// NewWalletFieldsValidator returns the validator as the Validator interface.
func NewWalletFieldsValidator() Validator {
	return &WalletFieldsValidator{schema: WalletUpdateSchema}
}

// Validate checks obj, which must be models.Fields or *models.Fields.
// The optional required names list internal fields that must be present,
// e.g. FieldTitle and FieldBalance on creation.
func (v *WalletFieldsValidator) Validate(ctx context.Context, obj any, required ...string) error {
	var fields models.Fields
	switch value := obj.(type) {
	case models.Fields:
		fields = value
	case *models.Fields:
		if value == nil {
			return newValidationError("", ErrUnsupportedType, "nil fields")
		}
		fields = *value
	default:
		return newValidationError("", ErrUnsupportedType, "%T", obj)
	}

	names := fields.Names()
	sort.Strings(names)
	for _, name := range names {
		if _, ok := v.schema.Field(name); !ok {
			return newValidationError(name, ErrUnknownField, "")
		}
	}

	for _, name := range required {
		if !fields.Has(name) {
			external, ok := v.schema.ExternalName(name)
			if !ok {
				external = name
			}
			return newValidationError(external, ErrMissingField, "")
		}
	}

	for _, f := range v.schema.fields {
		value, ok := fields[f.Internal]
		if !ok {
			continue
		}
		if err := f.checkValue(value); err != nil {
			return err
		}
	}

	return nil
}

// checkValue validates an already decoded Go value against the field rules.
func (f Field) checkValue(value any) error {
	if value == nil {
		if f.Nullable {
			return nil
		}
		return newValidationError(f.External, ErrInvalidFieldType, "must not be null")
	}

	switch f.Kind {
	case KindString:
		var s string
		switch typed := value.(type) {
		case string:
			s = typed
		case *string:
			if typed == nil {
				if f.Nullable {
					return nil
				}
				return newValidationError(f.External, ErrInvalidFieldType, "must not be null")
			}
			s = *typed
		default:
			return newValidationError(f.External, ErrInvalidFieldType, "expected string, got %T", value)
		}
		return f.checkString(s)

	case KindInteger:
		var n int64
		switch typed := value.(type) {
		case int64:
			n = typed
		case int:
			n = int64(typed)
		case int32:
			n = int64(typed)
		default:
			return newValidationError(f.External, ErrInvalidFieldType, "expected integer, got %T", value)
		}
		return f.checkInteger(n)

	default:
		return newValidationError(f.External, ErrInvalidFieldType, "unsupported kind %s", f.Kind)
	}
}
