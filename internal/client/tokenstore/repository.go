// Package tokenstore persists the bearer token the way a browser keeps its
// auth cookie: a named value with an explicit expiry, surviving restarts.
package tokenstore

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenName is the name under which the bearer token is stored,
// matching the cookie name issued by the backend.
const AccessTokenName = "token"

// Token is a persisted credential. A token past ExpiresAt is treated as
// absent, like an expired cookie.
type Token struct {
	Name      string
	Value     string
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

type Repository interface {
	// Get returns the named token, or nil when it is absent or expired.
	Get(ctx context.Context, name string) (*Token, error)
	Set(ctx context.Context, token Token) error
	Delete(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}

// ExpiryFor resolves the expiry to persist alongside a token value. The
// server-issued expiration wins; when it is missing, the exp claim of the
// JWT itself is used. The claim is read without signature verification --
// the client only schedules refreshes with it, the server stays the
// authority on validity.
func ExpiryFor(value string, explicit time.Time) time.Time {
	if !explicit.IsZero() {
		return explicit
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(value, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
