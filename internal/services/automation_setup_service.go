package services

import (
	"context"
	"time"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"go.uber.org/zap"
)

// AutomationSetupService is the top-level orchestrator for automation
// confirmation: Builder -> Signer -> Submitter -> store update, emitting a
// best-effort tracking event on success. Only input-validation errors and
// submitter faults surface as user-visible failures; every signing-related
// fault is absorbed into the simulation path by the signer.
type AutomationSetupService struct {
	builder   interfaces.DelegationBuilder
	signer    interfaces.DelegationSigner
	submitter interfaces.DelegationSubmitter
	repo      interfaces.AutomationRepository
	tracker   interfaces.TrackingPublisher
	logger    *zap.Logger
}

// NewAutomationSetupService creates a new setup orchestrator.
func NewAutomationSetupService(
	builder interfaces.DelegationBuilder,
	signer interfaces.DelegationSigner,
	submitter interfaces.DelegationSubmitter,
	repo interfaces.AutomationRepository,
	tracker interfaces.TrackingPublisher,
) *AutomationSetupService {
	return &AutomationSetupService{
		builder:   builder,
		signer:    signer,
		submitter: submitter,
		repo:      repo,
		tracker:   tracker,
		logger:    logger.Log,
	}
}

// SetupAutomationDelegation validates inputs, drives the delegation pipeline
// in strict sequence, and persists the outcome. A result with Success=false
// is never persisted as active.
func (s *AutomationSetupService) SetupAutomationDelegation(ctx context.Context, intent *business.AutomationIntent, wallet interfaces.WalletClient, userAddress string, chainID int64) business.DelegationResult {
	// Fail fast on missing inputs, before any side effects.
	if userAddress == "" || !helpers.IsAddressValid(userAddress) {
		return business.DelegationResult{
			Success: false,
			Error:   "a valid user address is required",
		}
	}
	if wallet == nil {
		return business.DelegationResult{
			Success: false,
			Error:   "a connected wallet is required",
		}
	}
	if intent == nil {
		return business.DelegationResult{
			Success: false,
			Error:   "an automation intent is required",
		}
	}

	if _, err := s.repo.UpdateStatus(ctx, userAddress, intent.ID, business.AutomationActivating); err != nil {
		s.logger.Warn("Failed to mark automation activating",
			zap.String("automation_id", intent.ID),
			zap.Error(err))
	}

	delegation, err := s.builder.Build(ctx, intent, userAddress)
	if err != nil {
		s.logger.Error("Delegation construction failed",
			zap.String("automation_id", intent.ID),
			zap.Error(err))
		s.markFailed(ctx, userAddress, intent.ID)
		return business.DelegationResult{
			Success: false,
			Error:   err.Error(),
		}
	}

	result := s.signer.SignDelegation(ctx, delegation, wallet, chainID)
	if !result.Success {
		s.markFailed(ctx, userAddress, intent.ID)
		return result
	}

	result = s.submitter.Submit(ctx, result, chainID)
	if !result.Success {
		s.markFailed(ctx, userAddress, intent.ID)
		return result
	}

	s.persistActivation(ctx, intent, userAddress, result)
	s.emitTracking(intent, userAddress, chainID, result)

	return result
}

// persistActivation records the delegation outcome on the automation and
// transitions it to active. Store faults are logged, not surfaced: the
// delegation itself succeeded and the result already left the pipeline.
func (s *AutomationSetupService) persistActivation(ctx context.Context, intent *business.AutomationIntent, userAddress string, result business.DelegationResult) {
	status := business.AutomationActive
	nextRun := nextRunAt(time.Now(), intent.Params.Frequency)

	updates := interfaces.UpdateAutomationParams{
		Status:          &status,
		DelegationHash:  &result.DelegationHash,
		TransactionHash: &result.TransactionHash,
		Simulated:       &result.Simulated,
	}
	if nextRun != "" {
		updates.NextRunAt = &nextRun
	}

	if _, err := s.repo.Update(ctx, userAddress, intent.ID, updates); err != nil {
		s.logger.Error("Failed to persist automation activation",
			zap.String("automation_id", intent.ID),
			zap.String("user_address", userAddress),
			zap.Error(err))
	}
}

// emitTracking fires the best-effort activation notification. Failures are
// logged and never propagate to the caller.
func (s *AutomationSetupService) emitTracking(intent *business.AutomationIntent, userAddress string, chainID int64, result business.DelegationResult) {
	if s.tracker == nil {
		return
	}

	event := business.TrackingEvent{
		AutomationID:    intent.ID,
		AutomationType:  string(intent.Type),
		UserAddress:     userAddress,
		DelegationHash:  result.DelegationHash,
		TransactionHash: result.TransactionHash,
		ChainID:         chainID,
		Simulated:       result.Simulated,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.tracker.PublishAutomationActivated(ctx, event); err != nil {
			s.logger.Warn("Tracking notification failed",
				zap.String("automation_id", event.AutomationID),
				zap.Error(err))
		}
	}()
}

func (s *AutomationSetupService) markFailed(ctx context.Context, userAddress, automationID string) {
	if _, err := s.repo.UpdateStatus(ctx, userAddress, automationID, business.AutomationFailed); err != nil {
		s.logger.Warn("Failed to mark automation failed",
			zap.String("automation_id", automationID),
			zap.Error(err))
	}
}

// nextRunAt computes the next execution timestamp for a recurring frequency.
// Unknown or empty frequencies yield no schedule.
func nextRunAt(now time.Time, frequency string) string {
	var next time.Time
	switch frequency {
	case "daily":
		next = now.Add(24 * time.Hour)
	case "weekly":
		next = now.Add(7 * 24 * time.Hour)
	case "monthly":
		next = now.AddDate(0, 1, 0)
	default:
		return ""
	}
	return next.UTC().Format(time.RFC3339)
}
