package wallet_test

import (
	"context"
	"strings"
	"testing"

	"github.com/BarsilNzola/AutoPay-AI/internal/client/wallet"
	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Throwaway dev-chain key, not a live account.
const (
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testKeyAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestNewLocalWallet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"key with prefix", testPrivateKey, false},
		{"key without prefix", strings.TrimPrefix(testPrivateKey, "0x"), false},
		{"empty key", "", true},
		{"truncated key", "0xac0974", true},
		{"non-hex key", "0x" + strings.Repeat("zz", 32), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := wallet.NewLocalWallet(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, w)
		})
	}
}

func TestLocalWallet_Addresses(t *testing.T) {
	w, err := wallet.NewLocalWallet(testPrivateKey)
	require.NoError(t, err)

	addresses, err := w.Addresses(context.Background())
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, strings.ToLower(testKeyAddress), strings.ToLower(addresses[0]))
}

func TestLocalWallet_SignTypedData(t *testing.T) {
	w, err := wallet.NewLocalWallet(testPrivateKey)
	require.NoError(t, err)

	sig, err := w.SignTypedData(context.Background(), helpers.ProbeTypedData(11155111))
	require.NoError(t, err)
	assert.True(t, helpers.IsSignatureWellFormed(sig))

	// Deterministic signing: same payload, same signature.
	again, err := w.SignTypedData(context.Background(), helpers.ProbeTypedData(11155111))
	require.NoError(t, err)
	assert.Equal(t, sig, again)
}

func TestLocalWallet_SignTypedDataCancelledContext(t *testing.T) {
	w, err := wallet.NewLocalWallet(testPrivateKey)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = w.SignTypedData(ctx, helpers.ProbeTypedData(11155111))
	assert.Error(t, err)
}
