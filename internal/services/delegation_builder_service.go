package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// Caveat enforcer contract addresses from the delegation contract suite.
// The same suite is deployed at the same addresses on every supported chain.
const (
	allowedTargetsEnforcer    = "0x7F20f61b1f09b08D970938F6fa563634d665c1F1"
	nativeTokenAmountEnforcer = "0xBD1d09BdD17eBA5aA8932e4902f4225Bc1f3a6Cd"
	allowedMethodsEnforcer    = "0x2c21fD0Cb9DC8445CB3fb0D5b327fd505dA52397"
	timestampEnforcer         = "0x1046bb45C8d673d4ea75321280DB34899413c069"
)

// Method selectors for contract-scoped automation types.
const (
	claimSelector = "0x4e71d92d" // claim()
	stakeSelector = "0x3a4b66f1" // stake()
)

// Validity windows applied to every delegation, chosen by intent frequency.
const (
	defaultValidityWindow = 7 * 24 * time.Hour
	monthlyValidityWindow = 30 * 24 * time.Hour
)

// DelegationBuilderService constructs unsigned delegations from automation
// intents. The delegate defaults to the delegator itself, acting as its own
// authorized executor placeholder; a separate relayer identity would slot in
// here without changing the caveat derivation.
type DelegationBuilderService struct {
	logger *zap.Logger
}

// NewDelegationBuilderService creates a new delegation builder.
func NewDelegationBuilderService() *DelegationBuilderService {
	return &DelegationBuilderService{
		logger: logger.Log,
	}
}

// Build produces an unsigned delegation whose caveats are derived from the
// intent parameters. It fails closed: if a required address or amount cannot
// be resolved, an error is returned rather than a partially-specified
// delegation.
func (s *DelegationBuilderService) Build(ctx context.Context, intent *business.AutomationIntent, delegatorAddress string) (*business.DelegationStruct, error) {
	if intent == nil {
		return nil, fmt.Errorf("automation intent is required")
	}
	if !helpers.IsAddressValid(delegatorAddress) {
		return nil, fmt.Errorf("invalid delegator address: %q", delegatorAddress)
	}

	caveats, err := s.buildCaveats(intent)
	if err != nil {
		return nil, err
	}

	salt, err := helpers.NewDelegationSalt()
	if err != nil {
		return nil, err
	}

	delegation := &business.DelegationStruct{
		Delegate:  delegatorAddress,
		Delegator: delegatorAddress,
		Authority: business.AuthorityStruct{},
		Caveats:   caveats,
		Salt:      salt,
	}

	s.logger.Debug("Built unsigned delegation",
		zap.String("automation_id", intent.ID),
		zap.String("automation_type", string(intent.Type)),
		zap.Int("caveat_count", len(caveats)))

	return delegation, nil
}

// buildCaveats derives the caveat list for the intent type. Every delegation
// additionally carries a validity time window.
func (s *DelegationBuilderService) buildCaveats(intent *business.AutomationIntent) ([]business.CaveatStruct, error) {
	var caveats []business.CaveatStruct

	switch intent.Type {
	case business.AutomationRecurringPayment:
		if !helpers.IsAddressValid(intent.Params.Recipient) {
			return nil, fmt.Errorf("recurring payment requires a valid recipient address, got %q", intent.Params.Recipient)
		}
		maxAmount, err := parseEtherAmount(intent.Params.Amount)
		if err != nil {
			return nil, fmt.Errorf("recurring payment requires a valid amount: %w", err)
		}
		caveats = append(caveats,
			business.CaveatStruct{
				Enforcer: allowedTargetsEnforcer,
				Terms:    addressTerms(intent.Params.Recipient),
			},
			business.CaveatStruct{
				Enforcer: nativeTokenAmountEnforcer,
				Terms:    amountTerms(maxAmount),
			},
		)

	case business.AutomationRewardClaim:
		if !helpers.IsAddressValid(intent.Params.ContractAddress) {
			return nil, fmt.Errorf("reward claim requires a valid contract address, got %q", intent.Params.ContractAddress)
		}
		caveats = append(caveats,
			business.CaveatStruct{
				Enforcer: allowedTargetsEnforcer,
				Terms:    addressTerms(intent.Params.ContractAddress),
			},
			business.CaveatStruct{
				Enforcer: allowedMethodsEnforcer,
				Terms:    claimSelector,
			},
		)

	case business.AutomationStaking:
		if !helpers.IsAddressValid(intent.Params.ContractAddress) {
			return nil, fmt.Errorf("staking requires a valid contract address, got %q", intent.Params.ContractAddress)
		}
		caveats = append(caveats,
			business.CaveatStruct{
				Enforcer: allowedTargetsEnforcer,
				Terms:    addressTerms(intent.Params.ContractAddress),
			},
			business.CaveatStruct{
				Enforcer: allowedMethodsEnforcer,
				Terms:    stakeSelector,
			},
		)

	case business.AutomationReminder:
		// Reminders carry no on-chain action beyond the validity window.

	default:
		return nil, fmt.Errorf("unsupported automation type: %q", intent.Type)
	}

	caveats = append(caveats, business.CaveatStruct{
		Enforcer: timestampEnforcer,
		Terms:    validityWindowTerms(time.Now(), validityWindowFor(intent.Params.Frequency)),
	})

	return caveats, nil
}

// validityWindowFor picks the delegation validity window from the intent
// frequency: monthly automations get the long window, everything else the
// default one.
func validityWindowFor(frequency string) time.Duration {
	if strings.EqualFold(frequency, "monthly") {
		return monthlyValidityWindow
	}
	return defaultValidityWindow
}

// addressTerms encodes a single allowed target address as enforcer terms.
func addressTerms(address string) string {
	return strings.ToLower(common.HexToAddress(address).Hex())
}

// amountTerms encodes a native-token amount cap as 32-byte enforcer terms.
func amountTerms(amount *big.Int) string {
	padded := make([]byte, 32)
	amount.FillBytes(padded)
	return hexutil.Encode(padded)
}

// validityWindowTerms encodes a [start, end] validity window as two
// big-endian uint64 timestamps.
func validityWindowTerms(start time.Time, window time.Duration) string {
	terms := make([]byte, 16)
	binary.BigEndian.PutUint64(terms[:8], uint64(start.Unix()))
	binary.BigEndian.PutUint64(terms[8:], uint64(start.Add(window).Unix()))
	return hexutil.Encode(terms)
}

// parseEtherAmount converts a decimal ether amount ("0.1") to wei. Rejects
// empty, negative, malformed, and sub-wei precision inputs.
func parseEtherAmount(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("amount is empty")
	}

	parts := strings.SplitN(amount, ".", 2)
	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 18 {
		return nil, fmt.Errorf("amount %q exceeds wei precision", amount)
	}

	// Right-pad the fractional part to 18 digits and combine.
	frac = frac + strings.Repeat("0", 18-len(frac))
	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("malformed amount %q", amount)
	}
	if wei.Sign() < 0 {
		return nil, fmt.Errorf("amount %q is negative", amount)
	}
	// Enforcer terms are a uint256; anything larger cannot be encoded.
	if wei.BitLen() > 256 {
		return nil, fmt.Errorf("amount %q exceeds the native token range", amount)
	}
	return wei, nil
}
