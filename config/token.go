package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type TokenConfig struct {
	Address  common.Address
	Decimals uint8
}

// TokenStore holds the tradeable tokens for a single chain. An empty
// store accepts any asset pair.
type TokenStore struct {
	Tokens map[string]TokenConfig
}

func (s *TokenStore) ConfigByAddress(address common.Address) (string, TokenConfig, error) {
	for symbol, c := range s.Tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}
