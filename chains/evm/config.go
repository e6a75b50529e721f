package evm

import (
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/triggerfi/triggerfi/config"
	"github.com/triggerfi/triggerfi/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	// 1inch limit order protocol deployment for this chain
	LimitOrderProtocol common.Address
	// on-chain store holding keeper condition results and fee counters
	PredicateStore common.Address

	Tokens   config.TokenStore
	GasLimit *big.Int

	BlockRetryInterval time.Duration
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals"`
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`

	LimitOrderProtocol string                    `mapstructure:"limitOrderProtocol"`
	PredicateStore     string                    `mapstructure:"predicateStore"`
	Tokens             map[string]RawTokenConfig `mapstructure:"tokens"`

	GasLimit           int64  `mapstructure:"gasLimit" default:"2000000"`
	BlockRetryInterval uint64 `mapstructure:"blockRetryInterval" default:"5"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.LimitOrderProtocol == "" {
		return fmt.Errorf("required field chain.LimitOrderProtocol empty for chain %v", *c.Id)
	}
	if c.PredicateStore == "" {
		return fmt.Errorf("required field chain.PredicateStore empty for chain %v", *c.Id)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	for symbol, t := range c.Tokens {
		tokens[symbol] = config.TokenConfig{
			Address:  common.HexToAddress(t.Address),
			Decimals: t.Decimals,
		}
	}

	c.ParseFlags()
	cfg := &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		LimitOrderProtocol: common.HexToAddress(c.LimitOrderProtocol),
		PredicateStore:     common.HexToAddress(c.PredicateStore),
		Tokens: config.TokenStore{
			Tokens: tokens,
		},
		GasLimit: big.NewInt(c.GasLimit),
		// nolint:gosec
		BlockRetryInterval: time.Duration(c.BlockRetryInterval) * time.Second,
	}

	return cfg, nil
}
