// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidPasswordHash is returned by Verify when the stored hash is not
// a well-formed argon2id PHC string.
var ErrInvalidPasswordHash = errors.New("invalid password hash format")

// PasswordHasher hashes and verifies passwords with argon2id.
//
// Hashes are encoded as PHC strings
// ($argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>), so cost parameters travel
// with every stored hash and can be raised without breaking existing rows.
// When a pepper is configured the password is first run through
// HMAC-SHA256 keyed with it.
type PasswordHasher struct {
	Memory      uint32 // memory cost in KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32

	pepper []byte
}

// NewPasswordHasher returns a hasher with OWASP-recommended argon2id costs.
// pepper may be empty.
func NewPasswordHasher(pepper string) *PasswordHasher {
	h := &PasswordHasher{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
	if pepper != "" {
		h.pepper = []byte(pepper)
	}
	return h
}

// Hash returns the PHC-encoded argon2id hash of password under a fresh
// random salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey(h.prepare(password), salt, h.Iterations, h.Memory, h.Parallelism, h.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.Memory,
		h.Iterations,
		h.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches encodedHash. The comparison runs
// in constant time. A malformed hash yields ErrInvalidPasswordHash.
func (h *PasswordHasher) Verify(password, encodedHash string) (bool, error) {
	params, salt, key, err := decodeArgon2Hash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(h.prepare(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	return subtle.ConstantTimeCompare(key, computed) == 1, nil
}

func (h *PasswordHasher) prepare(password string) []byte {
	if len(h.pepper) == 0 {
		return []byte(password)
	}
	return hashString([]byte(password), h.pepper)
}

func decodeArgon2Hash(encodedHash string) (*PasswordHasher, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, nil, nil, ErrInvalidPasswordHash
	}

	if parts[1] != "argon2id" {
		return nil, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidPasswordHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: version: %w", ErrInvalidPasswordHash, err)
	}
	if version != argon2.Version {
		return nil, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidPasswordHash, version)
	}

	params := &PasswordHasher{}
	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &p); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: parameters: %w", ErrInvalidPasswordHash, err)
	}
	if params.Memory == 0 || params.Iterations == 0 || p == 0 {
		return nil, nil, nil, fmt.Errorf("%w: zero cost parameter", ErrInvalidPasswordHash)
	}
	params.Parallelism = p

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: salt: %w", ErrInvalidPasswordHash, err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: key encoding", ErrInvalidPasswordHash)
	}
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}

// hashString computes an HMAC-SHA256 digest over data keyed with key.
func hashString(data []byte, key []byte) []byte {
	hasher := hmac.New(sha256.New, key)
	hasher.Write(data)
	return hasher.Sum(nil)
}
