package services

import (
	"context"
	"time"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// probeTimeout bounds the throwaway capability signature request so an
// unresponsive wallet degrades to "incapable" quickly.
const probeTimeout = 10 * time.Second

// WalletProberService performs the two advisory capability checks on a
// delegator account: smart-contract-wallet detection via deployed bytecode,
// and a throwaway typed-data signature probe. Both checks degrade to
// unknown/false on any failure; they never surface an error to the caller.
type WalletProberService struct {
	readers map[int64]interfaces.BytecodeReader // chainID -> RPC bytecode reader
	logger  *zap.Logger
}

// NewWalletProberService creates a new wallet prober. Chains without a
// registered bytecode reader classify every wallet as unknown.
func NewWalletProberService(readers map[int64]interfaces.BytecodeReader) *WalletProberService {
	if readers == nil {
		readers = make(map[int64]interfaces.BytecodeReader)
	}
	return &WalletProberService{
		readers: readers,
		logger:  logger.Log,
	}
}

// RegisterReader attaches a bytecode reader for a chain. Intended for wiring
// at startup, before requests are served.
func (s *WalletProberService) RegisterReader(chainID int64, reader interfaces.BytecodeReader) {
	s.readers[chainID] = reader
}

// ClassifyWallet determines whether the address is a smart-contract wallet.
// Non-empty deployed bytecode means smart contract; an unreachable RPC or
// invalid address means unknown. Smart-contract wallets frequently cannot
// produce the signature format the delegation scheme requires, so they are
// steered to simulation before signing is ever attempted.
func (s *WalletProberService) ClassifyWallet(ctx context.Context, chainID int64, address string) business.WalletType {
	if !helpers.IsAddressValid(address) {
		return business.WalletTypeUnknown
	}

	reader, ok := s.readers[chainID]
	if !ok {
		s.logger.Debug("No bytecode reader for chain, wallet type unknown",
			zap.Int64("chain_id", chainID))
		return business.WalletTypeUnknown
	}

	code, err := reader.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		s.logger.Warn("Bytecode lookup failed, wallet type unknown",
			zap.Int64("chain_id", chainID),
			zap.String("address", address),
			zap.Error(err))
		return business.WalletTypeUnknown
	}

	if len(code) > 0 {
		return business.WalletTypeSmartContract
	}
	return business.WalletTypeEOA
}

// CanSignTypedData attempts a throwaway structured-data signature against
// the wallet. Success means the wallet can produce the signature format the
// delegation scheme needs. The probe signature is discarded and never counts
// as the delegation signature.
func (s *WalletProberService) CanSignTypedData(ctx context.Context, wallet interfaces.WalletClient, chainID int64) bool {
	if wallet == nil {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	sig, err := wallet.SignTypedData(probeCtx, helpers.ProbeTypedData(chainID))
	if err != nil {
		s.logger.Debug("Typed-data signing probe rejected",
			zap.Int64("chain_id", chainID),
			zap.Error(err))
		return false
	}

	return helpers.IsSignatureWellFormed(sig)
}
