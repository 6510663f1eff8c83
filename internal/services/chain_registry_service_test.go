package services_test

import (
	"testing"

	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/services"
	"github.com/stretchr/testify/assert"
)

func init() {
	logger.InitLogger("test")
}

func TestChainRegistryService_IsChainSupported(t *testing.T) {
	tests := []struct {
		name      string
		chains    []int64
		chainID   int64
		supported bool
	}{
		{
			name:      "registered chain is supported",
			chains:    []int64{1, 11155111},
			chainID:   11155111,
			supported: true,
		},
		{
			name:      "unregistered chain is unsupported",
			chains:    []int64{1, 11155111},
			chainID:   137,
			supported: false,
		},
		{
			name:      "empty registry supports nothing",
			chains:    nil,
			chainID:   1,
			supported: false,
		},
		{
			name:      "zero chain id is unsupported",
			chains:    []int64{1},
			chainID:   0,
			supported: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := services.NewChainRegistryService(tt.chains)
			assert.Equal(t, tt.supported, registry.IsChainSupported(tt.chainID))
		})
	}
}

func TestChainRegistryService_SupportedChains(t *testing.T) {
	registry := services.NewChainRegistryService([]int64{11155111, 1, 8453})

	assert.Equal(t, []int64{1, 8453, 11155111}, registry.SupportedChains())
}

func TestChainRegistryService_SupportedChainsEmpty(t *testing.T) {
	registry := services.NewChainRegistryService(nil)

	assert.Empty(t, registry.SupportedChains())
}
