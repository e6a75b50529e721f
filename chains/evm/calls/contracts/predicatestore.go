package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"

	"github.com/triggerfi/triggerfi/chains/evm/calls/consts"
)

// PredicateStoreContract wraps the on-chain key-value store holding the
// latest evaluated condition result, update count and accrued fees per
// predicate ID. Result writes are authorized for the keeper address only.
type PredicateStoreContract struct {
	contracts.Contract
	client   client.Client
	gasLimit uint64
}

func NewPredicateStoreContract(
	client client.Client,
	address common.Address,
	transactor transactor.Transactor,
	gasLimit uint64,
) *PredicateStoreContract {
	return &PredicateStoreContract{
		Contract: contracts.NewContract(address, consts.PredicateStoreABI, nil, client, transactor),
		client:   client,
		gasLimit: gasLimit,
	}
}

// CheckCondition returns the stored boolean result as 0 or 1. This is
// the authoritative value the fill-time predicate reads.
func (c *PredicateStoreContract) CheckCondition(predicateId [32]byte) (*big.Int, error) {
	res, err := c.CallContract("checkCondition", predicateId)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

// CheckConditions commits a freshly evaluated result and increments the
// update counter. Keeper-only.
func (c *PredicateStoreContract) CheckConditions(predicateId [32]byte, result bool) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"checkConditions",
		transactor.TransactOptions{GasLimit: c.gasLimit},
		predicateId, result,
	)
}

func (c *PredicateStoreContract) UpdateCount(predicateId [32]byte) (*big.Int, error) {
	res, err := c.CallContract("updateCount", predicateId)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *PredicateStoreContract) GetUpdateFees(predicateId [32]byte) (*big.Int, error) {
	res, err := c.CallContract("getUpdateFees", predicateId)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

// CollectFees settles the accrued update fees for the predicate. The
// amount is attached as transaction value and has to cover the fees the
// store currently reports.
func (c *PredicateStoreContract) CollectFees(predicateId [32]byte, amount *big.Int) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"collectFees",
		transactor.TransactOptions{GasLimit: c.gasLimit, Value: amount},
		predicateId,
	)
}
