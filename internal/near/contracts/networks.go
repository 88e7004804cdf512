package contracts

import (
	"fmt"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/contracts/ft"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

var networkTokens = map[model.Network][]string{
	model.Mainnet: {
		"meta-pool.near",
		"wrap.near",
		"usdt.tether-token.near",
		"17208628f84f5d6ad33f0da3bbbeb27ffcb398eac501a31bd6ad2011e36133a1",
	},
	model.Testnet: {
		"meta-v2.pool.testnet",
		"wrap.testnet",
	},
}

// ForNetwork returns the registry of token contracts indexed on network.
func ForNetwork(network model.Network) (*Registry, error) {
	tokens, ok := networkTokens[network]
	if !ok {
		return nil, fmt.Errorf("no contracts registered for network %q", network)
	}
	entries := make([]Entry, 0, len(tokens))
	for _, account := range tokens {
		entries = append(entries, Entry{AccountID: account, Decode: ft.Decode})
	}
	return NewRegistry(entries...)
}
