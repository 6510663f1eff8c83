package business

// DelegationStruct represents the delegation data structure
// This structure matches the format used by MetaMask delegation toolkit
type DelegationStruct struct {
	Delegate  string          `json:"delegate"`
	Delegator string          `json:"delegator"`
	Authority AuthorityStruct `json:"authority"`
	Caveats   []CaveatStruct  `json:"caveats"`
	Salt      string          `json:"salt"`
	Signature string          `json:"signature"`
}

// AuthorityStruct represents the authority information in a delegation
type AuthorityStruct struct {
	Scheme    string `json:"scheme"`
	Signature string `json:"signature"`
	Signer    string `json:"signer"`
}

// CaveatStruct represents a single caveat in a delegation
// Based on MetaMask delegation toolkit: https://docs.metamask.io/delegation-toolkit/concepts/caveat-enforcers/
type CaveatStruct struct {
	Enforcer string `json:"enforcer"` // Address of the caveat enforcer contract
	Terms    string `json:"terms"`    // Encoded parameters defining the specific restrictions (hex string)
}

// WalletType classifies the delegator account as seen by the capability prober.
type WalletType string

const (
	WalletTypeEOA           WalletType = "eoa"
	WalletTypeSmartContract WalletType = "smart_contract"
	WalletTypeUnknown       WalletType = "unknown"
)

// DelegationResult is the uniform outcome record threaded through the whole
// delegation pipeline. Every stage either passes one through unchanged or
// produces a new one. Consumers must treat Simulated as informational only.
type DelegationResult struct {
	Success         bool              `json:"success"`
	Delegation      *DelegationStruct `json:"delegation,omitempty"`
	DelegationHash  string            `json:"delegation_hash,omitempty"`
	TransactionHash string            `json:"transaction_hash,omitempty"`
	Simulated       bool              `json:"simulated"`
	WalletType      WalletType        `json:"wallet_type,omitempty"`
	Message         string            `json:"message,omitempty"`
	Error           string            `json:"error,omitempty"`
}

// TrackingEvent is the fire-and-forget notification emitted after a
// successful automation setup.
type TrackingEvent struct {
	AutomationID    string `json:"automation_id"`
	AutomationType  string `json:"automation_type"`
	UserAddress     string `json:"user_address"`
	DelegationHash  string `json:"delegation_hash"`
	TransactionHash string `json:"transaction_hash"`
	ChainID         int64  `json:"chain_id"`
	Simulated       bool   `json:"simulated"`
}
