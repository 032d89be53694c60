// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failures. Every failure other than expiry is reported
// as ErrMalformedToken.
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token is expired")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account ID encoded as a decimal string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): expiresAt
//   - ID        (jti): a random UUID, so two tokens never share an encoding
//
// expiresAt may equal or precede the current time; such a token is valid
// structurally but is rejected as expired by ValidateAndParseJWTToken.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", 42, time.Now().Add(time.Hour), "secret")
func GenerateJWTToken(issuer string, accountID int64, expiresAt time.Time, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" || expiresAt.IsZero() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   strconv.FormatInt(accountID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		AccountID:    accountID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts the account ID.
//
// Checks run in this order:
//   - structure and HS256 signature with tokenSignKey
//   - issuer (iss) equals tokenIssuer
//   - subject (sub) is a decimal account ID
//   - expiry: a token with now >= exp is expired
//
// All failures before the expiry check wrap ErrMalformedToken, so a forged
// token never reports as merely expired.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	if claims.Issuer != tokenIssuer {
		return models.Token{}, fmt.Errorf("%w: unexpected issuer %q", ErrMalformedToken, claims.Issuer)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrMalformedToken)
	}
	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: subject is not an account id: %w", ErrMalformedToken, err)
	}

	if claims.ExpiresAt == nil {
		return models.Token{}, fmt.Errorf("%w: missing exp claim", ErrMalformedToken)
	}
	expiresAt := claims.ExpiresAt.Time
	if !now.Before(expiresAt) {
		return models.Token{}, ErrExpiredToken
	}

	return models.Token{
		SignedString: tokenString,
		AccountID:    accountID,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errors.New("invalid authorization header")
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", errors.New("invalid authorization header")
	}

	return token, nil
}
