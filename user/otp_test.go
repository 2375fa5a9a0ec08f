package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := generateCode()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', code)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"0912345678",
		"0351234567",
		"0781234567",
		"84912345678",
		"+84912345678",
	}
	for _, phone := range valid {
		assert.True(t, ValidPhone(phone), phone)
	}

	invalid := []string{
		"",
		"12345",
		"0112345678",   // invalid carrier prefix
		"091234567",    // too short
		"09123456789",  // too long
		"+1912345678",  // wrong country code
		"091234567a",   // non-digit
		" 0912345678 ", // whitespace
	}
	for _, phone := range invalid {
		assert.False(t, ValidPhone(phone), phone)
	}
}
