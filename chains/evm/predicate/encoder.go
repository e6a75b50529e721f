package predicate

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/triggerfi/triggerfi/chains/evm/calls/consts"
	"github.com/triggerfi/triggerfi/condition"
)

// each offset occupies one 32-bit lane of the packed offsets word
const maxComposite = 8

// Encoder builds the predicate calldata blobs embedded into signed
// orders. All output is a pure function of its inputs so encoding the
// same predicate twice yields byte-identical blobs.
type Encoder struct {
	store common.Address
}

func NewEncoder(store common.Address) *Encoder {
	return &Encoder{
		store: store,
	}
}

// ConditionPredicate encodes the full predicate gating an order on the
// stored keeper result: gt(0, arbitraryStaticCall(store, checkCondition(id))).
// The comparison is always against zero because the condition logic has
// already been collapsed to a single 0/1 by the keeper.
func (e *Encoder) ConditionPredicate(predicateId [32]byte) ([]byte, error) {
	calldata, err := consts.PredicateStoreABI.Pack("checkCondition", predicateId)
	if err != nil {
		return nil, err
	}

	staticCall, err := e.EncodeStaticCall(e.store, calldata)
	if err != nil {
		return nil, err
	}

	return e.EncodeComparison(condition.OperatorGreaterThan, big.NewInt(0), staticCall)
}

// EncodeStaticCall wraps raw calldata into the protocol's generic
// arbitraryStaticCall opcode: the 4-byte selector followed by the packed
// (address target, bytes data) arguments.
func (e *Encoder) EncodeStaticCall(target common.Address, calldata []byte) ([]byte, error) {
	return consts.LimitOrderProtocolABI.Pack("arbitraryStaticCall", target, calldata)
}

// EncodeComparison wraps an inner call into one of the protocol's
// comparison opcodes so that its uint256 result decides fillability.
func (e *Encoder) EncodeComparison(op condition.Operator, value *big.Int, innerCall []byte) ([]byte, error) {
	var method string
	switch op {
	case condition.OperatorGreaterThan:
		method = "gt"
	case condition.OperatorLessThan:
		method = "lt"
	case condition.OperatorEqual:
		method = "eq"
	default:
		return nil, fmt.Errorf("unsupported comparison operator %s", op)
	}

	return consts.LimitOrderProtocolABI.Pack(method, value, innerCall)
}

func (e *Encoder) EncodeAnd(predicates [][]byte) ([]byte, error) {
	return e.encodeComposite("and", predicates)
}

func (e *Encoder) EncodeOr(predicates [][]byte) ([]byte, error) {
	return e.encodeComposite("or", predicates)
}

// encodeComposite packs sub-predicates into a single and/or opcode. The
// offsets word holds the cumulative byte length after each sub-predicate,
// not its start position.
func (e *Encoder) encodeComposite(method string, predicates [][]byte) ([]byte, error) {
	if len(predicates) == 0 {
		return nil, fmt.Errorf("composite predicate requires at least one sub-predicate")
	}
	if len(predicates) > maxComposite {
		return nil, fmt.Errorf("composite predicate supports at most %d sub-predicates, got %d", maxComposite, len(predicates))
	}

	offsets := new(big.Int)
	data := []byte{}
	cumulative := int64(0)
	for i, p := range predicates {
		cumulative += int64(len(p))
		offsets.Or(offsets, new(big.Int).Lsh(big.NewInt(cumulative), uint(32*i)))
		data = append(data, p...)
	}

	return consts.LimitOrderProtocolABI.Pack(method, offsets, data)
}
