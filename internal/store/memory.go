package store

import (
	"context"
	"sync"
	"time"

	"github.com/BarsilNzola/AutoPay-AI/internal/helpers"
	"github.com/BarsilNzola/AutoPay-AI/internal/interfaces"
	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"go.uber.org/zap"
)

// MemoryAutomationStore is the in-memory automation repository adapter:
// process-lifetime only, safe for concurrent requests. A placeholder for the
// durable Postgres adapter in production.
type MemoryAutomationStore struct {
	mu     sync.RWMutex
	byUser map[string][]business.AutomationIntent
	logger *zap.Logger
}

// NewMemoryAutomationStore creates an empty in-memory automation store.
func NewMemoryAutomationStore() *MemoryAutomationStore {
	return &MemoryAutomationStore{
		byUser: make(map[string][]business.AutomationIntent),
		logger: logger.Log,
	}
}

// Create persists a new automation intent. An identifier and pending status
// are assigned if not already set.
func (s *MemoryAutomationStore) Create(ctx context.Context, intent *business.AutomationIntent) (*business.AutomationIntent, error) {
	now := time.Now().UTC()

	stored := *intent
	if stored.ID == "" {
		stored.ID = helpers.NewAutomationID(now)
	}
	if stored.Status == "" {
		stored.Status = business.AutomationPending
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UserAddress = helpers.NormalizeAddress(stored.UserAddress)

	key := stored.UserAddress
	s.mu.Lock()
	s.byUser[key] = append(s.byUser[key], stored)
	s.mu.Unlock()

	result := stored
	return &result, nil
}

// Get returns the automation with the given id owned by the user.
func (s *MemoryAutomationStore) Get(ctx context.Context, userAddress, automationID string) (*business.AutomationIntent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, intent := range s.byUser[helpers.NormalizeAddress(userAddress)] {
		if intent.ID == automationID {
			found := intent
			return &found, nil
		}
	}
	return nil, interfaces.ErrAutomationNotFound
}

// Update applies a partial merge to an automation. Updating a nonexistent id
// is a no-op that reports not-found and leaves the store unchanged.
func (s *MemoryAutomationStore) Update(ctx context.Context, userAddress, automationID string, params interfaces.UpdateAutomationParams) (*business.AutomationIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := helpers.NormalizeAddress(userAddress)
	intents := s.byUser[key]
	for i := range intents {
		if intents[i].ID != automationID {
			continue
		}

		if params.Status != nil {
			intents[i].Status = *params.Status
		}
		if params.DelegationHash != nil {
			intents[i].DelegationHash = *params.DelegationHash
		}
		if params.TransactionHash != nil {
			intents[i].TransactionHash = *params.TransactionHash
		}
		if params.Simulated != nil {
			intents[i].Simulated = *params.Simulated
		}
		if params.NextRunAt != nil {
			if next, err := time.Parse(time.RFC3339, *params.NextRunAt); err == nil {
				intents[i].NextRunAt = &next
			}
		}

		updated := intents[i]
		return &updated, nil
	}

	return nil, interfaces.ErrAutomationNotFound
}

// UpdateStatus is the status-transition helper.
func (s *MemoryAutomationStore) UpdateStatus(ctx context.Context, userAddress, automationID string, status business.AutomationStatus) (*business.AutomationIntent, error) {
	return s.Update(ctx, userAddress, automationID, interfaces.UpdateAutomationParams{Status: &status})
}

// Delete removes an automation scoped to its owning user. Returns false when
// the id does not exist for that user.
func (s *MemoryAutomationStore) Delete(ctx context.Context, userAddress, automationID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := helpers.NormalizeAddress(userAddress)
	intents := s.byUser[key]
	for i := range intents {
		if intents[i].ID == automationID {
			s.byUser[key] = append(intents[:i], intents[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListByUser returns all automations owned by the user, oldest first.
func (s *MemoryAutomationStore) ListByUser(ctx context.Context, userAddress string) ([]business.AutomationIntent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	intents := s.byUser[helpers.NormalizeAddress(userAddress)]
	result := make([]business.AutomationIntent, len(intents))
	copy(result, intents)
	return result, nil
}
