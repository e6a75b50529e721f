package order

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Order mirrors the 1inch limit order tuple. The field order matches the
// on-chain struct and the EIP-712 type definition and must not change.
type Order struct {
	Salt            *big.Int
	MakerAsset      common.Address
	TakerAsset      common.Address
	Maker           common.Address
	Receiver        common.Address
	AllowedSender   common.Address
	MakingAmount    *big.Int
	TakingAmount    *big.Int
	MakerAssetData  []byte
	TakerAssetData  []byte
	GetMakingAmount []byte
	GetTakingAmount []byte
	Predicate       []byte
	Permit          []byte
	PreInteraction  []byte
	PostInteraction []byte
}

type BuildParams struct {
	MakerAsset   common.Address
	TakerAsset   common.Address
	MakingAmount *big.Int
	TakingAmount *big.Int
	Maker        common.Address
	Receiver     common.Address
	Predicate    []byte
}

// Build assembles an unsigned order with a fresh random salt. The
// predicate bytes are fixed from this point on - changing the condition
// requires building and signing a new order.
func Build(p BuildParams) (*Order, error) {
	if p.MakingAmount == nil || p.MakingAmount.Sign() != 1 {
		return nil, fmt.Errorf("making amount must be positive")
	}
	if p.TakingAmount == nil || p.TakingAmount.Sign() != 1 {
		return nil, fmt.Errorf("taking amount must be positive")
	}
	if p.MakerAsset == p.TakerAsset {
		return nil, fmt.Errorf("maker and taker asset cannot be equal")
	}
	if p.Maker == (common.Address{}) {
		return nil, fmt.Errorf("maker address missing")
	}

	salt, err := NewSalt()
	if err != nil {
		return nil, err
	}

	return &Order{
		Salt:            salt,
		MakerAsset:      p.MakerAsset,
		TakerAsset:      p.TakerAsset,
		Maker:           p.Maker,
		Receiver:        p.Receiver,
		AllowedSender:   common.Address{},
		MakingAmount:    p.MakingAmount,
		TakingAmount:    p.TakingAmount,
		MakerAssetData:  []byte{},
		TakerAssetData:  []byte{},
		GetMakingAmount: []byte{},
		GetTakingAmount: []byte{},
		Predicate:       p.Predicate,
		Permit:          []byte{},
		PreInteraction:  []byte{},
		PostInteraction: []byte{},
	}, nil
}

// NewSalt returns 32 bytes of cryptographic randomness as a uint256.
func NewSalt() (*big.Int, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
