package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"

	"github.com/triggerfi/triggerfi/chains/evm/calls/consts"
	"github.com/triggerfi/triggerfi/chains/evm/order"
)

// LimitOrderContract wraps the fill/cancel surface of the 1inch limit
// order protocol deployment.
type LimitOrderContract struct {
	contracts.Contract
	client   client.Client
	gasLimit uint64
}

func NewLimitOrderContract(
	client client.Client,
	address common.Address,
	transactor transactor.Transactor,
	gasLimit uint64,
) *LimitOrderContract {
	return &LimitOrderContract{
		Contract: contracts.NewContract(address, consts.LimitOrderProtocolABI, nil, client, transactor),
		client:   client,
		gasLimit: gasLimit,
	}
}

// FillOrder submits the signed order tuple for execution. Amount zero
// fills the order entirely. The protocol re-verifies the predicate
// atomically, so a fill racing a keeper update reverts on-chain.
func (c *LimitOrderContract) FillOrder(
	o *order.Order,
	r [32]byte,
	vs [32]byte,
	amount *big.Int,
	takerTraits *big.Int,
) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"fillOrder",
		transactor.TransactOptions{GasLimit: c.gasLimit},
		*o, r, vs, amount, takerTraits,
	)
}

func (c *LimitOrderContract) CancelOrder(orderHash [32]byte) (*common.Hash, error) {
	return c.ExecuteTransaction(
		"cancelOrder",
		transactor.TransactOptions{GasLimit: c.gasLimit},
		orderHash,
	)
}

// Remaining returns the unfilled making amount for the order hash. Zero
// means the order has been fully consumed.
func (c *LimitOrderContract) Remaining(orderHash [32]byte) (*big.Int, error) {
	res, err := c.CallContract("remaining", orderHash)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}
