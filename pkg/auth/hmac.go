package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// hmacVerifier validates HS256 tokens signed with the hosted auth provider's JWT secret.
type hmacVerifier struct {
	secret  []byte
	options []jwt.ParserOption
}

func newHMACVerifier(cfg Config) (Verifier, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &hmacVerifier{secret: []byte(cfg.Secret), options: parserOptions(cfg, "HS256")}, nil
}

func (v *hmacVerifier) Verify(_ context.Context, token string) (AuthenticatedUser, error) {
	t, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return v.secret, nil }, v.options...)
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("token verification failed: %w", err)
	}
	return userFromToken(token, t)
}
