// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// MaxBodySize is the largest request body Decode accepts.
const MaxBodySize = 1 << 20

// Kind is the JSON type a field accepts.
type Kind int

const (
	// KindString accepts a JSON string. MinLen and MaxLen bound its length
	// in characters.
	KindString Kind = iota
	// KindInteger accepts a JSON number without fraction or exponent that
	// fits int64. Min is its inclusive lower bound.
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Field describes one schema entry.
type Field struct {
	External string
	Internal string
	Kind     Kind
	Required bool
	Nullable bool
	MinLen   int
	MaxLen   int
	Min      int64
}

// Schema is a strict request body description with a bidirectional alias
// table between external and internal field names.
type Schema struct {
	name       string
	fields     []Field
	byExternal map[string]int
	byInternal map[string]int
}

// NewSchema builds a schema. It panics on a duplicate external or internal
// name since schemas are declared statically.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:       name,
		fields:     fields,
		byExternal: make(map[string]int, len(fields)),
		byInternal: make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		if _, dup := s.byExternal[f.External]; dup {
			panic(fmt.Sprintf("validators: schema %s: duplicate external name %q", name, f.External))
		}
		if _, dup := s.byInternal[f.Internal]; dup {
			panic(fmt.Sprintf("validators: schema %s: duplicate internal name %q", name, f.Internal))
		}
		s.byExternal[f.External] = i
		s.byInternal[f.Internal] = i
	}

	return s
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the schema entries in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up an entry by its internal name.
func (s *Schema) Field(internal string) (Field, bool) {
	i, ok := s.byInternal[internal]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// ExternalName maps an internal name to its API name.
func (s *Schema) ExternalName(internal string) (string, bool) {
	i, ok := s.byInternal[internal]
	if !ok {
		return "", false
	}
	return s.fields[i].External, true
}

// InternalName maps an API name to its internal name.
func (s *Schema) InternalName(external string) (string, bool) {
	i, ok := s.byExternal[external]
	if !ok {
		return "", false
	}
	return s.fields[i].Internal, true
}

// Decode reads one JSON object from r and returns the supplied values keyed
// by internal names. Unknown keys, missing required keys, wrong JSON types
// and bound violations are rejected with a *ValidationError.
func (s *Schema) Decode(r io.Reader) (models.Fields, error) {
	if r == nil {
		return nil, newValidationError("", ErrMalformedBody, "empty body")
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxBodySize+1))
	if err != nil {
		return nil, newValidationError("", ErrMalformedBody, "read body: %v", err)
	}
	if len(data) > MaxBodySize {
		return nil, newValidationError("", ErrMalformedBody, "body exceeds %d bytes", MaxBodySize)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var raw map[string]json.RawMessage
	if err = dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newValidationError("", ErrMalformedBody, "empty body")
		}
		return nil, newValidationError("", ErrMalformedBody, "body must be a JSON object")
	}
	if raw == nil {
		return nil, newValidationError("", ErrMalformedBody, "body must be a JSON object")
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, newValidationError("", ErrMalformedBody, "unexpected data after JSON object")
	}

	return s.normalize(raw)
}

func (s *Schema) normalize(raw map[string]json.RawMessage) (models.Fields, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := s.byExternal[k]; !ok {
			return nil, newValidationError(k, ErrUnknownField, "")
		}
	}

	out := make(models.Fields, len(raw))
	for _, f := range s.fields {
		value, ok := raw[f.External]
		if !ok {
			if f.Required {
				return nil, newValidationError(f.External, ErrMissingField, "")
			}
			continue
		}

		v, err := f.decode(value)
		if err != nil {
			return nil, err
		}
		out[f.Internal] = v
	}

	return out, nil
}

func (f Field) decode(value json.RawMessage) (any, error) {
	value = bytes.TrimSpace(value)

	if bytes.Equal(value, []byte("null")) {
		if f.Nullable {
			return nil, nil
		}
		return nil, newValidationError(f.External, ErrInvalidFieldType, "must not be null")
	}

	switch f.Kind {
	case KindString:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, newValidationError(f.External, ErrInvalidFieldType, "expected string")
		}
		if err := f.checkString(s); err != nil {
			return nil, err
		}
		return s, nil

	case KindInteger:
		n, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, newValidationError(f.External, ErrFieldOutOfRange, "does not fit a 64-bit integer")
			}
			return nil, newValidationError(f.External, ErrInvalidFieldType, "expected integer")
		}
		if err = f.checkInteger(n); err != nil {
			return nil, err
		}
		return n, nil

	default:
		return nil, newValidationError(f.External, ErrInvalidFieldType, "unsupported kind %s", f.Kind)
	}
}

func (f Field) checkString(s string) error {
	if !utf8.ValidString(s) {
		return newValidationError(f.External, ErrInvalidFieldType, "invalid UTF-8")
	}

	n := utf8.RuneCountInString(s)
	if n < f.MinLen {
		if n == 0 {
			return newValidationError(f.External, ErrFieldOutOfRange, "must not be empty")
		}
		return newValidationError(f.External, ErrFieldOutOfRange, "must be at least %d characters", f.MinLen)
	}
	if f.MaxLen > 0 && n > f.MaxLen {
		return newValidationError(f.External, ErrFieldOutOfRange, "must be at most %d characters", f.MaxLen)
	}

	return nil
}

func (f Field) checkInteger(n int64) error {
	if n < f.Min {
		return newValidationError(f.External, ErrFieldOutOfRange, "must be at least %d", f.Min)
	}
	return nil
}
