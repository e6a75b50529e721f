package predicate_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/triggerfi/triggerfi/chains/evm/calls/consts"
	"github.com/triggerfi/triggerfi/chains/evm/predicate"
	"github.com/triggerfi/triggerfi/condition"
)

var store = common.HexToAddress("0x6d2cD70b15b54BD66b855A7b8a5BA09DE3a33a9c")

type EncoderTestSuite struct {
	suite.Suite

	encoder *predicate.Encoder
}

func TestRunEncoderTestSuite(t *testing.T) {
	suite.Run(t, new(EncoderTestSuite))
}

func (s *EncoderTestSuite) SetupTest() {
	s.encoder = predicate.NewEncoder(store)
}

func (s *EncoderTestSuite) Test_ConditionPredicate_Deterministic() {
	id := [32]byte{0x01, 0x02}

	p1, err := s.encoder.ConditionPredicate(id)
	s.Nil(err)
	p2, err := s.encoder.ConditionPredicate(id)
	s.Nil(err)

	s.Equal(p1, p2)
}

func (s *EncoderTestSuite) Test_ConditionPredicate_Layout() {
	id := [32]byte{0xaa}

	p, err := s.encoder.ConditionPredicate(id)
	s.Nil(err)

	gt := consts.LimitOrderProtocolABI.Methods["gt"]
	s.Equal(gt.ID, p[:4])

	args, err := gt.Inputs.Unpack(p[4:])
	s.Nil(err)
	s.Zero(args[0].(*big.Int).Cmp(big.NewInt(0)))

	inner := args[1].([]byte)
	staticCall := consts.LimitOrderProtocolABI.Methods["arbitraryStaticCall"]
	s.Equal(staticCall.ID, inner[:4])

	innerArgs, err := staticCall.Inputs.Unpack(inner[4:])
	s.Nil(err)
	s.Equal(store, innerArgs[0].(common.Address))

	calldata, err := consts.PredicateStoreABI.Pack("checkCondition", id)
	s.Nil(err)
	s.Equal(calldata, innerArgs[1].([]byte))
}

func (s *EncoderTestSuite) Test_EncodeComparison_UnsupportedOperator() {
	_, err := s.encoder.EncodeComparison("!=", big.NewInt(0), []byte{0x01})

	s.NotNil(err)
}

func (s *EncoderTestSuite) Test_EncodeComparison_Operators() {
	for op, method := range map[condition.Operator]string{
		condition.OperatorGreaterThan: "gt",
		condition.OperatorLessThan:    "lt",
		condition.OperatorEqual:       "eq",
	} {
		p, err := s.encoder.EncodeComparison(op, big.NewInt(10), []byte{0x01})
		s.Nil(err)
		s.Equal(consts.LimitOrderProtocolABI.Methods[method].ID, p[:4])
	}
}

func (s *EncoderTestSuite) Test_EncodeAnd_Offsets() {
	p1 := []byte{0x01, 0x02, 0x03}
	p2 := []byte{0x04, 0x05}
	p3 := []byte{0x06}

	composite, err := s.encoder.EncodeAnd([][]byte{p1, p2, p3})
	s.Nil(err)

	and := consts.LimitOrderProtocolABI.Methods["and"]
	s.Equal(and.ID, composite[:4])

	args, err := and.Inputs.Unpack(composite[4:])
	s.Nil(err)

	// cumulative byte lengths packed into 32-bit lanes
	expectedOffsets := new(big.Int)
	expectedOffsets.Or(expectedOffsets, new(big.Int).Lsh(big.NewInt(3), 0))
	expectedOffsets.Or(expectedOffsets, new(big.Int).Lsh(big.NewInt(5), 32))
	expectedOffsets.Or(expectedOffsets, new(big.Int).Lsh(big.NewInt(6), 64))
	s.Equal(expectedOffsets, args[0].(*big.Int))

	s.Equal([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, args[1].([]byte))
}

func (s *EncoderTestSuite) Test_EncodeOr_Selector() {
	composite, err := s.encoder.EncodeOr([][]byte{{0x01}, {0x02}})
	s.Nil(err)

	s.Equal(consts.LimitOrderProtocolABI.Methods["or"].ID, composite[:4])
}

func (s *EncoderTestSuite) Test_EncodeComposite_Empty() {
	_, err := s.encoder.EncodeAnd([][]byte{})

	s.NotNil(err)
}

func (s *EncoderTestSuite) Test_EncodeComposite_TooManySubPredicates() {
	predicates := make([][]byte, 9)
	for i := range predicates {
		predicates[i] = []byte{byte(i)}
	}

	_, err := s.encoder.EncodeAnd(predicates)

	s.NotNil(err)
}
