package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

// jwksVerifier validates RS256 tokens whose signing keys are published as a JWKS document.
type jwksVerifier struct {
	jwks    *keyfunc.JWKS
	options []jwt.ParserOption
}

func newJWKSVerifier(cfg Config) (Verifier, error) {
	if cfg.JWKSURL == "" {
		return nil, fmt.Errorf("jwks URL is required")
	}

	jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
		RefreshInterval:   10 * time.Minute,
		RefreshTimeout:    5 * time.Second,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS: %w", err)
	}

	return &jwksVerifier{jwks: jwks, options: parserOptions(cfg, "RS256")}, nil
}

func (v *jwksVerifier) Verify(_ context.Context, token string) (AuthenticatedUser, error) {
	t, err := jwt.Parse(token, v.jwks.Keyfunc, v.options...)
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("token verification failed: %w", err)
	}
	return userFromToken(token, t)
}
