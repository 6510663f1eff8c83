package requests

// AutomationParamsRequest carries the structured parameters extracted from a
// natural-language automation prompt.
type AutomationParamsRequest struct {
	Amount          string `json:"amount,omitempty"`
	Currency        string `json:"currency,omitempty"`
	Recipient       string `json:"recipient,omitempty"`
	Frequency       string `json:"frequency,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
}

// CreateAutomationRequest represents the request body for registering a new
// automation intent.
type CreateAutomationRequest struct {
	Type        string                  `json:"type" binding:"required"`
	UserAddress string                  `json:"user_address" binding:"required"`
	Params      AutomationParamsRequest `json:"params"`
}

// ConfirmAutomationRequest represents the request body for confirming an
// automation, which drives the delegation setup pipeline. The private key is
// a demo-only stand-in for a browser wallet; when omitted the server's
// configured demo signer is used.
type ConfirmAutomationRequest struct {
	UserAddress      string `json:"user_address" binding:"required"`
	ChainID          int64  `json:"chain_id" binding:"required"`
	WalletPrivateKey string `json:"wallet_private_key,omitempty"`
}

// UpdateAutomationRequest represents the request body for a partial
// automation update.
type UpdateAutomationRequest struct {
	Status *string `json:"status,omitempty"`
}
