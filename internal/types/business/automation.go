package business

import "time"

// AutomationType identifies what kind of on-chain action an automation
// authorizes.
type AutomationType string

const (
	AutomationRecurringPayment AutomationType = "recurring_payment"
	AutomationRewardClaim      AutomationType = "reward_claim"
	AutomationStaking          AutomationType = "staking"
	AutomationReminder         AutomationType = "reminder"
)

// AutomationStatus is the lifecycle status of an automation intent.
type AutomationStatus string

const (
	AutomationPending    AutomationStatus = "pending"
	AutomationActivating AutomationStatus = "activating"
	AutomationActive     AutomationStatus = "active"
	AutomationCompleted  AutomationStatus = "completed"
	AutomationFailed     AutomationStatus = "failed"
)

// AutomationParams carries the type-dependent parameters of an intent.
// All fields are optional; which ones are required depends on the type.
type AutomationParams struct {
	Amount          string `json:"amount,omitempty"`
	Currency        string `json:"currency,omitempty"`
	Recipient       string `json:"recipient,omitempty"`
	Frequency       string `json:"frequency,omitempty"` // daily, weekly, monthly
	ContractAddress string `json:"contract_address,omitempty"`
}

// AutomationIntent is a typed automation request produced by the parsing
// collaborator. Status transitions are driven by the setup orchestrator;
// delegation metadata is filled in once setup completes.
type AutomationIntent struct {
	ID          string           `json:"id"`
	Type        AutomationType   `json:"type"`
	Params      AutomationParams `json:"params"`
	UserAddress string           `json:"user_address"`
	Status      AutomationStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	NextRunAt   *time.Time       `json:"next_run_at,omitempty"`

	DelegationHash  string `json:"delegation_hash,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	Simulated       bool   `json:"simulated"`
}

// IsValidAutomationType reports whether t is one of the known automation types.
func IsValidAutomationType(t AutomationType) bool {
	switch t {
	case AutomationRecurringPayment, AutomationRewardClaim, AutomationStaking, AutomationReminder:
		return true
	default:
		return false
	}
}

// IsValidAutomationStatus reports whether s is one of the known lifecycle
// statuses.
func IsValidAutomationStatus(s AutomationStatus) bool {
	switch s {
	case AutomationPending, AutomationActivating, AutomationActive, AutomationCompleted, AutomationFailed:
		return true
	default:
		return false
	}
}
