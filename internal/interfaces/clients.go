package interfaces

import (
	"context"
	"math/big"

	"github.com/BarsilNzola/AutoPay-AI/internal/types/business"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// WalletClient is the boundary to a connected wallet. Any method may be
// unavailable or fail; callers treat that as an incapability, not a fatal
// system error.
type WalletClient interface {
	Addresses(ctx context.Context) ([]string, error)
	SignTypedData(ctx context.Context, typedData apitypes.TypedData) (string, error)
}

// BytecodeReader reads the deployed bytecode at an address. Satisfied by
// *ethclient.Client.
type BytecodeReader interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// TrackingPublisher delivers best-effort notifications about completed
// automation setups. Delivery failures must never fail the operation that
// triggered them.
type TrackingPublisher interface {
	PublishAutomationActivated(ctx context.Context, event business.TrackingEvent) error
}
