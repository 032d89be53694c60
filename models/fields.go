// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Fields is a normalized set of validated input values keyed by internal
// field names. Only explicitly supplied keys are present; a nil value means
// the caller asked for NULL.
type Fields map[string]any

// Has reports whether name was supplied.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// String returns the string stored under name, or "" when it is absent,
// nil or not a string.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Names returns the supplied keys in no particular order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	return names
}
