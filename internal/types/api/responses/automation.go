package responses

import "github.com/BarsilNzola/AutoPay-AI/internal/types/business"

// AutomationResponse represents an automation in API responses.
type AutomationResponse struct {
	ID              string                    `json:"id"`
	Type            string                    `json:"type"`
	Status          string                    `json:"status"`
	UserAddress     string                    `json:"user_address"`
	Params          business.AutomationParams `json:"params"`
	CreatedAt       string                    `json:"created_at"`
	NextRunAt       *string                   `json:"next_run_at,omitempty"`
	DelegationHash  string                    `json:"delegation_hash,omitempty"`
	TransactionHash string                    `json:"transaction_hash,omitempty"`
	Simulated       bool                      `json:"simulated"`
}

// ConfirmAutomationResponse represents the outcome of the delegation setup
// pipeline for a confirmed automation.
type ConfirmAutomationResponse struct {
	Automation AutomationResponse `json:"automation"`
	Delegation DelegationOutcome  `json:"delegation"`
}

// DelegationOutcome is the API-facing view of a delegation result.
type DelegationOutcome struct {
	Success         bool   `json:"success"`
	DelegationHash  string `json:"delegation_hash,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	Simulated       bool   `json:"simulated"`
	WalletType      string `json:"wallet_type,omitempty"`
	Message         string `json:"message,omitempty"`
	Error           string `json:"error,omitempty"`
}

// HealthResponse represents the health check payload.
type HealthResponse struct {
	Status          string  `json:"status"`
	Version         string  `json:"version"`
	SupportedChains []int64 `json:"supported_chains"`
}
