package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundFamily(t *testing.T) {
	for _, err := range []error{ErrAdminNotFound, ErrSellerNotFound, ErrCustomerNotFound, ErrProductNotFound} {
		wrapped := fmt.Errorf("lookup: %w", err)
		assert.ErrorIs(t, wrapped, ErrNotFound)
		assert.ErrorIs(t, wrapped, err)
	}
	assert.NotErrorIs(t, ErrSellerNotFound, ErrCustomerNotFound)
	assert.Equal(t, "Seller not found", ErrSellerNotFound.Error())
}

func TestConflict(t *testing.T) {
	err := fmt.Errorf("create: %w", Conflict("email"))
	c, ok := IsConflict(err)
	require.True(t, ok)
	assert.Equal(t, "email", c.Field)
	assert.Equal(t, "email already exists", c.Error())
	assert.Equal(t, "record already exists", (&ConflictError{}).Error())

	_, ok = IsConflict(errors.New("other"))
	assert.False(t, ok)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"price": "bad price", "name": "Name is required"}}
	assert.Equal(t, "Name is required", err.Error())

	v, ok := IsValidation(fmt.Errorf("wrap: %w", Invalid("body", "Invalid JSON body")))
	require.True(t, ok)
	assert.Equal(t, "Invalid JSON body", v.Fields["body"])
	assert.Equal(t, "invalid request", (&ValidationError{}).Error())
}
