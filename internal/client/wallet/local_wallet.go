package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// LocalWallet signs EIP-712 typed data with an in-process ECDSA key. It backs
// the demo confirmation flow, standing in for a browser extension wallet.
type LocalWallet struct {
	key     *ecdsa.PrivateKey
	address string
}

// NewLocalWallet creates a wallet from a hex-encoded private key, with or
// without the 0x prefix.
func NewLocalWallet(privateKeyHex string) (*LocalWallet, error) {
	trimmed := strings.TrimPrefix(privateKeyHex, "0x")
	if !helpers.IsPrivateKeyValid("0x" + trimmed) {
		return nil, fmt.Errorf("invalid private key format")
	}

	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &LocalWallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}, nil
}

// Addresses returns the single account this wallet controls.
func (w *LocalWallet) Addresses(ctx context.Context) ([]string, error) {
	return []string{w.address}, nil
}

// SignTypedData produces an EIP-712 signature over the typed data, with the
// recovery id shifted into the 27/28 range wallets emit.
func (w *LocalWallet) SignTypedData(ctx context.Context, typedData apitypes.TypedData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return "", fmt.Errorf("failed to hash typed data: %w", err)
	}

	signature, err := crypto.Sign(hash, w.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign typed data: %w", err)
	}
	signature[64] += 27

	return hexutil.Encode(signature), nil
}
