package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("missing_pet_name")

	assert.True(t, IsBusiness(err, "missing_pet_name"))
	assert.False(t, IsBusiness(err, "other_code"))
	assert.False(t, IsBusiness(errors.New("db down"), "missing_pet_name"))
	assert.False(t, IsBusiness(nil, "missing_pet_name"))
}

func TestIsBusinessWrapped(t *testing.T) {
	err := fmt.Errorf("create failed: %w", ErrBusiness("invalid_schedule"))
	assert.True(t, IsBusiness(err, "invalid_schedule"))
}

func TestBusinessCode(t *testing.T) {
	code, ok := BusinessCode(ErrBusiness("appointment_not_found"))
	assert.True(t, ok)
	assert.Equal(t, "appointment_not_found", code)

	_, ok = BusinessCode(errors.New("db down"))
	assert.False(t, ok)
}
