// session.go - Client-side store for the logged-in seller

// Package session keeps the logged-in seller on the client side. It is
// advisory only: the server does not consult it.
package session

import (
	"context"
	"encoding/json"
	"errors"

	"go-shop-backend/models"
)

const (
	// Key is the KV entry holding the current seller
	Key = "seller_auth"
	// LoginPath is where the gate sends unauthenticated users
	LoginPath = "/seller/login"

	tokenKey = "seller_token"
)

// Identity is the id/name/email of the logged-in seller
type Identity = models.Identity

// Store holds at most one seller identity
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Set persists identity, replacing any previous one
func (s *Store) Set(ctx context.Context, identity models.Identity) error {
	if identity.ID == "" {
		return errors.New("session: identity without id")
	}
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, Key, string(raw))
}

// Clear forgets the current seller and its token
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, tokenKey); err != nil {
		return err
	}
	return s.kv.Delete(ctx, Key)
}

// SetToken keeps the bearer token returned by login, if the server issued one
func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.kv.Delete(ctx, tokenKey)
	}
	return s.kv.Set(ctx, tokenKey, token)
}

// Token returns the stored bearer token or ""
func (s *Store) Token(ctx context.Context) (string, error) {
	token, _, err := s.kv.Get(ctx, tokenKey)
	return token, err
}

// Current returns the stored identity. An entry that cannot be parsed is
// removed and reported as absent.
func (s *Store) Current(ctx context.Context) (models.Identity, bool, error) {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil || !ok {
		return models.Identity{}, false, err
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil || identity.ID == "" {
		return models.Identity{}, false, s.kv.Delete(ctx, Key)
	}
	return identity, true, nil
}

// IsAuthenticated reports whether a seller is stored. Backend errors count
// as logged out.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := s.Current(ctx)
	return err == nil && ok
}

// RedirectError is returned by Gate when no seller is logged in
type RedirectError struct {
	To string
}

func (e *RedirectError) Error() string {
	return "not logged in, redirect to " + e.To
}

// Gate guards a seller-only screen: it returns the current seller, or a
// *RedirectError pointing at LoginPath.
func (s *Store) Gate(ctx context.Context) (models.Identity, error) {
	identity, ok, err := s.Current(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if !ok {
		return models.Identity{}, &RedirectError{To: LoginPath}
	}
	return identity, nil
}
