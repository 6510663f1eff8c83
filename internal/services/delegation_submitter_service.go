package services

import (
	"context"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"go.uber.org/zap"
)

// DelegationSubmitterService turns a signed (real or simulated) delegation
// result into a submission record carrying a transaction reference. The
// reference behavior synthesizes the transaction hash without touching the
// network; a deployment targeting real broadcast replaces this stage while
// preserving the result contract.
type DelegationSubmitterService struct {
	logger *zap.Logger
}

// NewDelegationSubmitterService creates a new delegation submitter.
func NewDelegationSubmitterService() *DelegationSubmitterService {
	return &DelegationSubmitterService{
		logger: logger.Log,
	}
}

// Submit attaches a transaction reference to a successful delegation result.
// Failed results pass through unchanged; the submitter never resurrects a
// failed pipeline.
func (s *DelegationSubmitterService) Submit(ctx context.Context, result business.DelegationResult, chainID int64) business.DelegationResult {
	if !result.Success {
		return result
	}

	txHash, err := helpers.NewTransactionHash()
	if err != nil {
		s.logger.Error("Failed to synthesize transaction hash",
			zap.Int64("chain_id", chainID),
			zap.Error(err))
		result.Success = false
		result.Error = "failed to record delegation submission"
		return result
	}

	result.TransactionHash = txHash

	s.logger.Info("Delegation submission recorded",
		zap.Int64("chain_id", chainID),
		zap.String("delegation_hash", result.DelegationHash),
		zap.String("transaction_hash", txHash),
		zap.Bool("simulated", result.Simulated))

	return result
}
