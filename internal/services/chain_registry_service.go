package services

import (
	"sort"

	"github.com/BarsilNzola/AutoPay-AI/internal/logger"
	"go.uber.org/zap"
)

// ChainRegistryService holds the allow-list of chain ids for which the
// delegation contract suite is known to be deployed. The list is fixed at
// construction; any chain id absent from it is unsupported.
type ChainRegistryService struct {
	supported map[int64]bool
	logger    *zap.Logger
}

// DefaultSupportedChains lists the chains the delegation contracts are
// deployed on out of the box: Ethereum mainnet and Sepolia.
var DefaultSupportedChains = []int64{1, 11155111}

// NewChainRegistryService creates a new chain registry from an explicit
// allow-list. An empty list means every chain resolves to simulation.
func NewChainRegistryService(chainIDs []int64) *ChainRegistryService {
	supported := make(map[int64]bool, len(chainIDs))
	for _, id := range chainIDs {
		supported[id] = true
	}
	return &ChainRegistryService{
		supported: supported,
		logger:    logger.Log,
	}
}

// IsChainSupported reports whether the delegation contract suite is deployed
// on the given chain.
func (s *ChainRegistryService) IsChainSupported(chainID int64) bool {
	return s.supported[chainID]
}

// SupportedChains returns the allow-list in ascending order.
func (s *ChainRegistryService) SupportedChains() []int64 {
	ids := make([]int64, 0, len(s.supported))
	for id := range s.supported {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
