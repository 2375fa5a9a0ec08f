package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("mat-khau-123")
	assert.NoError(t, err)
	assert.NotEqual(t, "mat-khau-123", hash)

	assert.NoError(t, VerifyPassword(hash, "mat-khau-123"))
	assert.Error(t, VerifyPassword(hash, "sai-mat-khau"))
	assert.Error(t, VerifyPassword("not-a-bcrypt-hash", "mat-khau-123"))
}
