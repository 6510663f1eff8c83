package interfaces

import (
	"context"
	"errors"

	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
)

// ErrAutomationNotFound is returned by AutomationRepository implementations
// when the requested automation does not exist for the given user.
var ErrAutomationNotFound = errors.New("automation not found")

// ChainRegistry answers whether the delegation contract suite is deployed on
// a chain. Closed-world: any chain id absent from the registry is
// unsupported, so new chains require explicit enablement.
type ChainRegistry interface {
	IsChainSupported(chainID int64) bool
	SupportedChains() []int64
}

// WalletProber performs advisory capability checks against a delegator
// account. Failures degrade to unknown/false, never to an error.
type WalletProber interface {
	ClassifyWallet(ctx context.Context, chainID int64, address string) business.WalletType
	CanSignTypedData(ctx context.Context, wallet WalletClient, chainID int64) bool
}

// DelegationBuilder constructs unsigned delegations from automation intents.
type DelegationBuilder interface {
	Build(ctx context.Context, intent *business.AutomationIntent, delegatorAddress string) (*business.DelegationStruct, error)
}

// DelegationSigner runs the probe/sign/simulate state machine over a built
// delegation and always terminates with a DelegationResult.
type DelegationSigner interface {
	SignDelegation(ctx context.Context, delegation *business.DelegationStruct, wallet WalletClient, chainID int64) business.DelegationResult
}

// DelegationSubmitter turns a signed (real or simulated) delegation result
// into a submission carrying a transaction reference.
type DelegationSubmitter interface {
	Submit(ctx context.Context, result business.DelegationResult, chainID int64) business.DelegationResult
}

// UpdateAutomationParams contains the optional fields of a partial-merge
// update. Nil fields are left untouched.
type UpdateAutomationParams struct {
	Status          *business.AutomationStatus
	DelegationHash  *string
	TransactionHash *string
	Simulated       *bool
	NextRunAt       *string // RFC3339; nil leaves the schedule unchanged
}

// AutomationRepository persists automation intents keyed by user address.
type AutomationRepository interface {
	Create(ctx context.Context, intent *business.AutomationIntent) (*business.AutomationIntent, error)
	Get(ctx context.Context, userAddress, automationID string) (*business.AutomationIntent, error)
	Update(ctx context.Context, userAddress, automationID string, params UpdateAutomationParams) (*business.AutomationIntent, error)
	UpdateStatus(ctx context.Context, userAddress, automationID string, status business.AutomationStatus) (*business.AutomationIntent, error)
	Delete(ctx context.Context, userAddress, automationID string) (bool, error)
	ListByUser(ctx context.Context, userAddress string) ([]business.AutomationIntent, error)
}
