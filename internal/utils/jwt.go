package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams        = errors.New("invalid params for generating access token")
	ErrInvalidAuthorizationValue = errors.New("invalid authorization header")
	ErrEmptySubject              = errors.New("empty subject in access token")
)

// GenerateAccessToken creates a signed HMAC-SHA256 JWT for subject.
//
// The token carries the registered claims iss, sub, iat and exp. All
// parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateAccessToken("cipher-keeper", "reader", time.Hour, "secret")
func GenerateAccessToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return "", ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken verifies the signature, issuer and expiry of
// tokenString and returns its claims.
//
// Expired tokens yield an error matching [jwt.ErrTokenExpired].
func ValidateAccessToken(tokenString, signKey, issuer string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating access token: %w", err)
	}

	if claims.Subject == "" {
		return nil, ErrEmptySubject
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrInvalidAuthorizationValue
	}
	return strings.TrimSpace(token), nil
}
