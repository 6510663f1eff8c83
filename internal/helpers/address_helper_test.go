package helpers_test

import (
	"strings"
	"testing"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestIsAddressValid(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"valid lowercase", "0x1234567890abcdef1234567890abcdef12345678", true},
		{"valid mixed case", "0x1234567890ABCDEF1234567890abcdef12345678", true},
		{"missing prefix", "1234567890abcdef1234567890abcdef12345678", false},
		{"too short", "0x1234", false},
		{"too long", "0x1234567890abcdef1234567890abcdef123456789", false},
		{"non-hex characters", "0x1234567890abcdef1234567890abcdef1234567g", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.IsAddressValid(tt.address))
		})
	}
}

func TestIsPrivateKeyValid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"valid key", "0x" + strings.Repeat("ab", 32), true},
		{"missing prefix", strings.Repeat("ab", 32), false},
		{"too short", "0x" + strings.Repeat("ab", 31), false},
		{"non-hex", "0x" + strings.Repeat("zz", 32), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.IsPrivateKeyValid(tt.key))
		})
	}
}

func TestIsValidStage(t *testing.T) {
	assert.True(t, helpers.IsValidStage(helpers.StageLocal))
	assert.True(t, helpers.IsValidStage(helpers.StageDev))
	assert.True(t, helpers.IsValidStage(helpers.StageProd))
	assert.False(t, helpers.IsValidStage("staging"))
	assert.False(t, helpers.IsValidStage(""))
}
