package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
)

// SimulatedSignature is the fixed-pattern placeholder signature attached to
// simulated delegations. 65 bytes, hex encoded, recognisable at a glance.
const SimulatedSignature = "0x" +
	"5151515151515151515151515151515151515151515151515151515151515151" +
	"5151515151515151515151515151515151515151515151515151515151515151" +
	"1b"

// RootAuthority marks a delegation that chains directly off the delegator
// rather than off another delegation.
const RootAuthority = "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
