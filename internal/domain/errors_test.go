package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := Conflict("position %d already taken", 3)

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "position 3 already taken", err.Error())
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("import: %w", Integrity("hash mismatch"))

	assert.Equal(t, KindIntegrity, KindOf(err))
	assert.True(t, errors.Is(err, ErrIntegrity))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("hsm offline")
	err := Internal("signing failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "signing failed: hsm offline", err.Error())
}

func TestValidationStatus(t *testing.T) {
	v := Validation{ID: "v1"}
	assert.Equal(t, ValidationPending, v.Status())

	v.SignedLocationKey = "ab"
	assert.Equal(t, ValidationSigned, v.Status())
}
