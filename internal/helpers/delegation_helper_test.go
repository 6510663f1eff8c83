package helpers_test

import (
	"strings"
	"testing"
	"time"

	"github.com/BarsilNzola/AutoPay-AI/internal/constants"
	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDelegation() *business.DelegationStruct {
	return &business.DelegationStruct{
		Delegate:  "0x1111111111111111111111111111111111111111",
		Delegator: "0x1111111111111111111111111111111111111111",
		Caveats: []business.CaveatStruct{
			{Enforcer: "0x7F20f61b1f09b08D970938F6fa563634d665c1F1", Terms: "0x2222222222222222222222222222222222222222"},
		},
		Salt: "0x0101010101010101010101010101010101010101010101010101010101010101",
	}
}

func TestComputeDelegationHash(t *testing.T) {
	d := sampleDelegation()

	first, err := helpers.ComputeDelegationHash(d)
	require.NoError(t, err)
	second, err := helpers.ComputeDelegationHash(d)
	require.NoError(t, err)

	// Content hash: same fields, same identifier.
	assert.Equal(t, first, second)

	raw, err := hexutil.Decode(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestComputeDelegationHashChangesWithContent(t *testing.T) {
	base := sampleDelegation()
	baseHash, err := helpers.ComputeDelegationHash(base)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(d *business.DelegationStruct)
	}{
		{"different salt", func(d *business.DelegationStruct) {
			d.Salt = "0x0202020202020202020202020202020202020202020202020202020202020202"
		}},
		{"different signature", func(d *business.DelegationStruct) {
			d.Signature = constants.SimulatedSignature
		}},
		{"different delegator", func(d *business.DelegationStruct) {
			d.Delegator = "0x3333333333333333333333333333333333333333"
		}},
		{"different caveats", func(d *business.DelegationStruct) {
			d.Caveats = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutated := sampleDelegation()
			tt.mutate(mutated)

			hash, err := helpers.ComputeDelegationHash(mutated)
			require.NoError(t, err)
			assert.NotEqual(t, baseHash, hash)
		})
	}
}

func TestNewDelegationSalt(t *testing.T) {
	first, err := helpers.NewDelegationSalt()
	require.NoError(t, err)
	second, err := helpers.NewDelegationSalt()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	raw, err := hexutil.Decode(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestNewTransactionHash(t *testing.T) {
	hash, err := helpers.NewTransactionHash()
	require.NoError(t, err)

	raw, err := hexutil.Decode(hash)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestDelegationTypedData(t *testing.T) {
	d := sampleDelegation()

	typedData := helpers.DelegationTypedData(d, 11155111)

	assert.Equal(t, "Delegation", typedData.PrimaryType)
	assert.Equal(t, "DelegationManager", typedData.Domain.Name)
	assert.Equal(t, "1", typedData.Domain.Version)
	assert.Equal(t, d.Delegate, typedData.Message["delegate"])
	assert.Equal(t, d.Delegator, typedData.Message["delegator"])
	assert.Equal(t, d.Salt, typedData.Message["salt"])

	// No explicit authority chains off the delegator directly.
	assert.Equal(t, constants.RootAuthority, typedData.Message["authority"])

	caveats, ok := typedData.Message["caveats"].([]interface{})
	require.True(t, ok)
	assert.Len(t, caveats, 1)
}

func TestDelegationTypedDataExplicitAuthority(t *testing.T) {
	d := sampleDelegation()
	d.Authority = business.AuthorityStruct{
		Signature: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}

	typedData := helpers.DelegationTypedData(d, 1)

	assert.Equal(t, d.Authority.Signature, typedData.Message["authority"])
}

func TestProbeTypedData(t *testing.T) {
	typedData := helpers.ProbeTypedData(11155111)

	assert.Equal(t, "Probe", typedData.PrimaryType)
	assert.NotEqual(t, "DelegationManager", typedData.Domain.Name)
}

func TestIsSignatureWellFormed(t *testing.T) {
	tests := []struct {
		name string
		sig  string
		want bool
	}{
		{"placeholder signature", constants.SimulatedSignature, true},
		{"65 bytes of zeros", "0x" + strings.Repeat("00", 65), true},
		{"too short", "0xdeadbeef", false},
		{"too long", "0x" + strings.Repeat("00", 66), false},
		{"not hex", "0xzz", false},
		{"missing prefix", strings.Repeat("00", 65), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpers.IsSignatureWellFormed(tt.sig))
		})
	}
}

func TestNewAutomationID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := helpers.NewAutomationID(now)
	second := helpers.NewAutomationID(now)

	assert.True(t, strings.HasPrefix(first, "1748779200000-"))
	assert.NotEqual(t, first, second)
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0xabcdefabcdefabcdefabcdefabcdefabcdefabcd",
		helpers.NormalizeAddress("0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD"))
}
