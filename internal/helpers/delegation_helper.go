package helpers

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/BarsilNzola/AutoPay-AI/internal/constants"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// ComputeDelegationHash returns the content-hash identifier of a delegation.
// The hash is a pure function of the delegation's fields and is computed the
// same way for real and simulated delegations, so downstream code never needs
// to know which kind it is handling.
func ComputeDelegationHash(d *business.DelegationStruct) (string, error) {
	// Struct field order is fixed, so the JSON encoding is deterministic.
	encoded, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode delegation: %w", err)
	}
	return hexutil.Encode(crypto.Keccak256(encoded)), nil
}

// NewDelegationSalt generates a random 32-byte salt, hex encoded. The salt
// keeps the content hash of otherwise-identical delegations distinct.
func NewDelegationSalt() (string, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate delegation salt: %w", err)
	}
	return hexutil.Encode(salt), nil
}

// NewTransactionHash generates a random 32-byte value formatted as a
// transaction hash. Used by the submitter to synthesize a transaction
// reference without broadcasting.
func NewTransactionHash() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate transaction hash: %w", err)
	}
	return hexutil.Encode(raw), nil
}

// DelegationTypedData builds the EIP-712 payload for a delegation on the
// given chain. The wallet boundary receives this payload for signing.
func DelegationTypedData(d *business.DelegationStruct, chainID int64) apitypes.TypedData {
	caveats := make([]interface{}, 0, len(d.Caveats))
	for _, c := range d.Caveats {
		caveats = append(caveats, map[string]interface{}{
			"enforcer": c.Enforcer,
			"terms":    c.Terms,
		})
	}

	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"Caveat": []apitypes.Type{
				{Name: "enforcer", Type: "address"},
				{Name: "terms", Type: "bytes"},
			},
			"Delegation": []apitypes.Type{
				{Name: "delegate", Type: "address"},
				{Name: "delegator", Type: "address"},
				{Name: "authority", Type: "bytes32"},
				{Name: "caveats", Type: "Caveat[]"},
				{Name: "salt", Type: "uint256"},
			},
		},
		PrimaryType: "Delegation",
		Domain: apitypes.TypedDataDomain{
			Name:    "DelegationManager",
			Version: "1",
			ChainId: (*math.HexOrDecimal256)(big.NewInt(chainID)),
		},
		Message: apitypes.TypedDataMessage{
			"delegate":  d.Delegate,
			"delegator": d.Delegator,
			"authority": delegationAuthority(d),
			"caveats":   caveats,
			"salt":      d.Salt,
		},
	}
}

// delegationAuthority resolves the bytes32 authority value for the typed
// data message. Delegations without an explicit authority chain off the
// delegator directly.
func delegationAuthority(d *business.DelegationStruct) string {
	if d.Authority.Signature != "" {
		return d.Authority.Signature
	}
	return constants.RootAuthority
}

// ProbeTypedData builds the minimal throwaway EIP-712 payload used by the
// capability prober. Its signature is never stored and never counts as the
// delegation signature.
func ProbeTypedData(chainID int64) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
			"Probe": []apitypes.Type{
				{Name: "purpose", Type: "string"},
			},
		},
		PrimaryType: "Probe",
		Domain: apitypes.TypedDataDomain{
			Name:    "AutoPayCapabilityProbe",
			Version: "1",
			ChainId: (*math.HexOrDecimal256)(big.NewInt(chainID)),
		},
		Message: apitypes.TypedDataMessage{
			"purpose": "signing capability check",
		},
	}
}

// IsSignatureWellFormed reports whether sig decodes to a 65-byte secp256k1
// signature. Malformed signatures from a wallet are treated as signing
// failures, not errors.
func IsSignatureWellFormed(sig string) bool {
	raw, err := hexutil.Decode(sig)
	if err != nil {
		return false
	}
	return len(raw) == 65
}
