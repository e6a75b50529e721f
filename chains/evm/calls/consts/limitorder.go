package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// LimitOrderProtocolABI covers the fill/cancel surface of the 1inch limit
// order protocol plus the predicate helper opcodes used to build order
// predicates.
var LimitOrderProtocolABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "salt", "type": "uint256" },
          { "internalType": "address", "name": "makerAsset", "type": "address" },
          { "internalType": "address", "name": "takerAsset", "type": "address" },
          { "internalType": "address", "name": "maker", "type": "address" },
          { "internalType": "address", "name": "receiver", "type": "address" },
          { "internalType": "address", "name": "allowedSender", "type": "address" },
          { "internalType": "uint256", "name": "makingAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "takingAmount", "type": "uint256" },
          { "internalType": "bytes", "name": "makerAssetData", "type": "bytes" },
          { "internalType": "bytes", "name": "takerAssetData", "type": "bytes" },
          { "internalType": "bytes", "name": "getMakingAmount", "type": "bytes" },
          { "internalType": "bytes", "name": "getTakingAmount", "type": "bytes" },
          { "internalType": "bytes", "name": "predicate", "type": "bytes" },
          { "internalType": "bytes", "name": "permit", "type": "bytes" },
          { "internalType": "bytes", "name": "preInteraction", "type": "bytes" },
          { "internalType": "bytes", "name": "postInteraction", "type": "bytes" }
        ],
        "internalType": "struct OrderLib.Order",
        "name": "order",
        "type": "tuple"
      },
      { "internalType": "bytes32", "name": "r", "type": "bytes32" },
      { "internalType": "bytes32", "name": "vs", "type": "bytes32" },
      { "internalType": "uint256", "name": "amount", "type": "uint256" },
      { "internalType": "uint256", "name": "takerTraits", "type": "uint256" }
    ],
    "name": "fillOrder",
    "outputs": [
      { "internalType": "uint256", "name": "makingAmount", "type": "uint256" },
      { "internalType": "uint256", "name": "takingAmount", "type": "uint256" },
      { "internalType": "bytes32", "name": "orderHash", "type": "bytes32" }
    ],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "orderHash", "type": "bytes32" }
    ],
    "name": "cancelOrder",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "orderHash", "type": "bytes32" }
    ],
    "name": "remaining",
    "outputs": [
      { "internalType": "uint256", "name": "", "type": "uint256" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "address", "name": "target", "type": "address" },
      { "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "arbitraryStaticCall",
    "outputs": [
      { "internalType": "uint256", "name": "", "type": "uint256" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "value", "type": "uint256" },
      { "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "gt",
    "outputs": [
      { "internalType": "bool", "name": "", "type": "bool" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "value", "type": "uint256" },
      { "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "lt",
    "outputs": [
      { "internalType": "bool", "name": "", "type": "bool" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "value", "type": "uint256" },
      { "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "eq",
    "outputs": [
      { "internalType": "bool", "name": "", "type": "bool" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "offsets", "type": "uint256" },
      { "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "and",
    "outputs": [
      { "internalType": "bool", "name": "", "type": "bool" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "offsets", "type": "uint256" },
      { "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "or",
    "outputs": [
      { "internalType": "bool", "name": "", "type": "bool" }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`))
