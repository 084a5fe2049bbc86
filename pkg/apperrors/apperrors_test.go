package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := FailedPrecondition("monthly hour cap exceeded")
	assert.Equal(t, KindFailedPrecondition, KindOf(err))

	wrapped := fmt.Errorf("assign: %w", err)
	assert.Equal(t, KindFailedPrecondition, KindOf(wrapped))

	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestInternalWraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "failed to persist shift")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to persist shift")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "geofence", KindGeofence.String())
	assert.Equal(t, "already_exists", KindAlreadyExists.String())
	assert.Equal(t, "internal", Kind(0).String())
}
