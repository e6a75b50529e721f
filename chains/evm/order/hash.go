package order

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DOMAIN_NAME = "1inch Limit Order Protocol"
	VERSION     = "4"
)

// Hash calculates the EIP-712 digest of the order. It matches the hash the
// protocol contract derives on-chain and is used as the join key for
// registry lookups, fills and cancellations.
func Hash(
	o *Order,
	chainId *big.Int,
	verifyingContract common.Address,
) ([]byte, error) {
	msg := apitypes.TypedDataMessage{
		"salt":            o.Salt,
		"makerAsset":      o.MakerAsset.Hex(),
		"takerAsset":      o.TakerAsset.Hex(),
		"maker":           o.Maker.Hex(),
		"receiver":        o.Receiver.Hex(),
		"allowedSender":   o.AllowedSender.Hex(),
		"makingAmount":    o.MakingAmount,
		"takingAmount":    o.TakingAmount,
		"makerAssetData":  o.MakerAssetData,
		"takerAssetData":  o.TakerAssetData,
		"getMakingAmount": o.GetMakingAmount,
		"getTakingAmount": o.GetTakingAmount,
		"predicate":       o.Predicate,
		"permit":          o.Permit,
		"preInteraction":  o.PreInteraction,
		"postInteraction": o.PostInteraction,
	}

	cid := math.HexOrDecimal256(*chainId)
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Order": []apitypes.Type{
				{Name: "salt", Type: "uint256"},
				{Name: "makerAsset", Type: "address"},
				{Name: "takerAsset", Type: "address"},
				{Name: "maker", Type: "address"},
				{Name: "receiver", Type: "address"},
				{Name: "allowedSender", Type: "address"},
				{Name: "makingAmount", Type: "uint256"},
				{Name: "takingAmount", Type: "uint256"},
				{Name: "makerAssetData", Type: "bytes"},
				{Name: "takerAssetData", Type: "bytes"},
				{Name: "getMakingAmount", Type: "bytes"},
				{Name: "getTakingAmount", Type: "bytes"},
				{Name: "predicate", Type: "bytes"},
				{Name: "permit", Type: "bytes"},
				{Name: "preInteraction", Type: "bytes"},
				{Name: "postInteraction", Type: "bytes"},
			},
		},
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              DOMAIN_NAME,
			Version:           VERSION,
			ChainId:           &cid,
			VerifyingContract: verifyingContract.Hex(),
		},
		Message: msg,
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return []byte{}, err
	}

	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return []byte{}, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(messageHash)))
	return crypto.Keccak256(rawData), nil
}

// Sign produces the maker's 65-byte EIP-712 signature over the order.
func Sign(
	o *Order,
	chainId *big.Int,
	verifyingContract common.Address,
	key *ecdsa.PrivateKey,
) ([]byte, error) {
	digest, err := Hash(o, chainId, verifyingContract)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return nil, err
	}

	sig[64] += 27
	return sig, nil
}
