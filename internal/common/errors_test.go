package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("register: %w", NewValidationError("email", "must be a valid email address"))

	assert.True(t, errors.Is(err, ErrValidation))

	var ve *ValidationError
	if assert.True(t, errors.As(err, &ve)) {
		assert.Equal(t, "must be a valid email address", ve.Fields["email"])
	}
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	ve := &ValidationError{Fields: map[string]string{"password": "too short", "email": "required"}}
	assert.Equal(t, "validation error: email: required; password: too short", ve.Error())

	empty := &ValidationError{}
	assert.Equal(t, "validation error", empty.Error())
}
