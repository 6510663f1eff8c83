package services

import (
	"context"
	"fmt"
	"time"

	"github.com/BarsilNzola/AutoPay-AI/internal/constants"
	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultSigningTimeout bounds the wallet-interaction prompt so a
// non-responsive wallet cannot hang the flow indefinitely.
const defaultSigningTimeout = 30 * time.Second

// User-facing explanations for each terminal path.
const (
	msgSignedReal       = "Delegation signed by your wallet and ready for execution."
	msgChainUnsupported = "Delegation contracts are not deployed on this chain yet, so a simulated delegation was created instead."
	msgSmartWallet      = "Smart-contract wallets cannot produce the required delegation signature, so a simulated delegation was created instead."
	msgWalletCannotSign = "Your wallet does not support structured-data signing, so a simulated delegation was created instead."
	msgSigningFailed    = "Wallet signing did not complete, so a simulated delegation was created instead."
)

// DelegationSignerService drives the probe/sign/simulate state machine:
//
//	Unsigned -> Probing -> {Signing | Simulating} -> {Signed | SimulatedSigned} -> Terminal
//
// Probing short-circuits to simulation on the first disqualifier, checked
// cheapest first: unsupported chain, smart-contract wallet, failed signing
// probe. A real signing attempt that fails falls back to simulation exactly
// once; the same signing attempt is never retried.
type DelegationSignerService struct {
	registry       interfaces.ChainRegistry
	prober         interfaces.WalletProber
	signingTimeout time.Duration
	logger         *zap.Logger
}

// NewDelegationSignerService creates a new delegation signer.
func NewDelegationSignerService(registry interfaces.ChainRegistry, prober interfaces.WalletProber) *DelegationSignerService {
	return &DelegationSignerService{
		registry:       registry,
		prober:         prober,
		signingTimeout: defaultSigningTimeout,
		logger:         logger.Log,
	}
}

// SetSigningTimeout overrides the signing timeout. Used by tests to exercise
// the timeout fallback without waiting 30 seconds.
func (s *DelegationSignerService) SetSigningTimeout(d time.Duration) {
	s.signingTimeout = d
}

// SignDelegation runs the state machine over a built delegation and always
// terminates with a DelegationResult. Simulation is a first-class terminal
// state: consumers must treat the Simulated flag as informational only.
func (s *DelegationSignerService) SignDelegation(ctx context.Context, delegation *business.DelegationStruct, wallet interfaces.WalletClient, chainID int64) business.DelegationResult {
	// Probing: chain support is the cheapest check, so it runs first.
	if !s.registry.IsChainSupported(chainID) {
		s.logger.Info("Chain unsupported, simulating delegation",
			zap.Int64("chain_id", chainID))
		return s.simulate(delegation, business.WalletTypeUnknown, msgChainUnsupported)
	}

	walletType := s.prober.ClassifyWallet(ctx, chainID, delegation.Delegator)
	if walletType == business.WalletTypeSmartContract {
		s.logger.Info("Smart-contract wallet detected, simulating delegation",
			zap.Int64("chain_id", chainID),
			zap.String("delegator", delegation.Delegator))
		return s.simulate(delegation, walletType, msgSmartWallet)
	}

	if !s.prober.CanSignTypedData(ctx, wallet, chainID) {
		s.logger.Info("Wallet failed signing-capability probe, simulating delegation",
			zap.Int64("chain_id", chainID),
			zap.String("wallet_type", string(walletType)))
		return s.simulate(delegation, walletType, msgWalletCannotSign)
	}

	// Signing: one bounded attempt against the real wallet. Any fault here
	// is a fallback trigger, never a fatal error.
	signature, err := s.signWithTimeout(ctx, delegation, wallet, chainID)
	if err != nil {
		s.logger.Warn("Real delegation signing failed, falling back to simulation",
			zap.Int64("chain_id", chainID),
			zap.Error(err))
		return s.simulate(delegation, walletType, msgSigningFailed)
	}

	signed := *delegation
	signed.Signature = signature

	hash, err := helpers.ComputeDelegationHash(&signed)
	if err != nil {
		s.logger.Warn("Failed to hash signed delegation, falling back to simulation",
			zap.Error(err))
		return s.simulate(delegation, walletType, msgSigningFailed)
	}

	s.logger.Info("Delegation signed",
		zap.Int64("chain_id", chainID),
		zap.String("delegation_hash", hash),
		zap.String("wallet_type", string(walletType)))

	return business.DelegationResult{
		Success:        true,
		Delegation:     &signed,
		DelegationHash: hash,
		Simulated:      false,
		WalletType:     walletType,
		Message:        msgSignedReal,
	}
}

// signWithTimeout requests the delegation signature from the wallet, bounded
// by the signing timeout. A malformed signature counts as a failure.
func (s *DelegationSignerService) signWithTimeout(ctx context.Context, delegation *business.DelegationStruct, wallet interfaces.WalletClient, chainID int64) (string, error) {
	signCtx, cancel := context.WithTimeout(ctx, s.signingTimeout)
	defer cancel()

	type signOutcome struct {
		signature string
		err       error
	}
	done := make(chan signOutcome, 1)

	go func() {
		sig, err := wallet.SignTypedData(signCtx, helpers.DelegationTypedData(delegation, chainID))
		done <- signOutcome{signature: sig, err: err}
	}()

	select {
	case <-signCtx.Done():
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("delegation signing cancelled: %w", ctxErr)
		}
		return "", fmt.Errorf("delegation signing timed out after %s", s.signingTimeout)
	case outcome := <-done:
		if outcome.err != nil {
			return "", outcome.err
		}
		if !helpers.IsSignatureWellFormed(outcome.signature) {
			return "", fmt.Errorf("wallet returned malformed signature")
		}
		return outcome.signature, nil
	}
}

// simulate synthesizes a structurally-valid delegation with the placeholder
// signature and a fresh salt. Its identifier is computed with the same hash
// function as a real delegation, so downstream handling is uniform. This
// path always terminates successfully; the defensive last resort below keeps
// automation creation from hard-failing even if salt or hash generation
// breaks.
func (s *DelegationSignerService) simulate(delegation *business.DelegationStruct, walletType business.WalletType, message string) business.DelegationResult {
	simulated := *delegation
	simulated.Signature = constants.SimulatedSignature

	salt, err := helpers.NewDelegationSalt()
	if err == nil {
		simulated.Salt = salt
	}

	hash, err := helpers.ComputeDelegationHash(&simulated)
	if err != nil {
		// Last resort: a minimally valid result with a random identifier.
		s.logger.Error("Failed to hash simulated delegation", zap.Error(err))
		return business.DelegationResult{
			Success:        true,
			DelegationHash: "0x" + uuid.New().String(),
			Simulated:      true,
			WalletType:     walletType,
			Message:        message,
		}
	}

	return business.DelegationResult{
		Success:        true,
		Delegation:     &simulated,
		DelegationHash: hash,
		Simulated:      true,
		WalletType:     walletType,
		Message:        message,
	}
}
