package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var PredicateStoreABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "bytes32", "name": "predicateId", "type": "bytes32" }
    ],
    "name": "checkCondition",
    "outputs": [
      { "internalType": "uint256", "name": "", "type": "uint256" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "predicateId", "type": "bytes32" },
      { "internalType": "bool", "name": "result", "type": "bool" }
    ],
    "name": "checkConditions",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "predicateId", "type": "bytes32" }
    ],
    "name": "updateCount",
    "outputs": [
      { "internalType": "uint256", "name": "", "type": "uint256" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "predicateId", "type": "bytes32" }
    ],
    "name": "getUpdateFees",
    "outputs": [
      { "internalType": "uint256", "name": "", "type": "uint256" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "predicateId", "type": "bytes32" }
    ],
    "name": "collectFees",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))
