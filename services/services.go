// services.go - Password checks shared by the account services

// Package services composes validation output, password hashing and the
// repositories into the operations exposed over HTTP.
package services

import (
	"errors"

	"go-shop-backend/apperr"
	"go-shop-backend/validation"
)

// Hasher hashes and verifies passwords
type Hasher interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, digest string) (bool, error)
}

// credentialCheck runs the verify half of a login. An unknown identifier and
// a wrong password both end in ErrInvalidCredentials, and the unknown case
// still pays for one bcrypt operation.
type credentialCheck struct {
	hasher Hasher
	dummy  string // digest compared against for unknown identifiers
}

func newCredentialCheck(hasher Hasher) *credentialCheck {
	c := &credentialCheck{hasher: hasher}
	if digest, err := hasher.HashPassword(dummyPassword); err == nil {
		c.dummy = digest
	}
	return c
}

const dummyPassword = "not-a-real-password"

func (c *credentialCheck) verify(lookupErr error, password, digest string) error {
	if lookupErr != nil {
		if !errors.Is(lookupErr, apperr.ErrNotFound) {
			return lookupErr
		}
		if c.dummy != "" {
			_, _ = c.hasher.CheckPassword(password, c.dummy)
		} else {
			// no dummy digest: hashing costs the same as a comparison
			_, _ = c.hasher.HashPassword(password)
		}
		return apperr.ErrInvalidCredentials
	}

	ok, err := c.hasher.CheckPassword(password, digest)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrInvalidCredentials
	}
	return nil
}

// hashChanges copies changes, replacing a plain text password with its digest
func hashChanges(hasher Hasher, changes validation.Changes) (map[string]any, error) {
	out := make(map[string]any, len(changes))
	for k, v := range changes {
		out[k] = v
	}
	if plain, ok := out[validation.PasswordColumn].(string); ok {
		digest, err := hasher.HashPassword(plain)
		if err != nil {
			return nil, err
		}
		out[validation.PasswordColumn] = digest
	}
	return out, nil
}
