package condition_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/triggerfi/triggerfi/condition"
)

var creator = common.HexToAddress("0x8BA1f109551bD432803012645Ac136ddd64DBA72")

func tariffCondition() condition.Condition {
	return condition.Condition{
		Endpoint:  "https://api.example.com/tariffs/japan/cars",
		AuthType:  condition.AuthNone,
		JSONPath:  "data.rate",
		Operator:  condition.OperatorGreaterThan,
		Threshold: 15,
	}
}

type PredicateConfigTestSuite struct {
	suite.Suite
}

func TestRunPredicateConfigTestSuite(t *testing.T) {
	suite.Run(t, new(PredicateConfigTestSuite))
}

func (s *PredicateConfigTestSuite) Test_EmptyConditions() {
	_, err := condition.NewPredicateConfig([]condition.Condition{}, condition.LogicAnd, creator)

	s.NotNil(err)
}

func (s *PredicateConfigTestSuite) Test_InvalidLogic() {
	_, err := condition.NewPredicateConfig([]condition.Condition{tariffCondition()}, "XOR", creator)

	s.NotNil(err)
}

func (s *PredicateConfigTestSuite) Test_MissingJSONPath() {
	c := tariffCondition()
	c.JSONPath = ""

	_, err := condition.NewPredicateConfig([]condition.Condition{c}, condition.LogicAnd, creator)

	s.NotNil(err)
}

func (s *PredicateConfigTestSuite) Test_InvalidOperator() {
	c := tariffCondition()
	c.Operator = ">="

	_, err := condition.NewPredicateConfig([]condition.Condition{c}, condition.LogicAnd, creator)

	s.NotNil(err)
}

func (s *PredicateConfigTestSuite) Test_MissingAuthValue() {
	c := tariffCondition()
	c.AuthType = condition.AuthBearer

	_, err := condition.NewPredicateConfig([]condition.Condition{c}, condition.LogicAnd, creator)

	s.NotNil(err)
}

func (s *PredicateConfigTestSuite) Test_AuthValueWithoutAuthType() {
	c := tariffCondition()
	c.AuthValue = "secret"

	_, err := condition.NewPredicateConfig([]condition.Condition{c}, condition.LogicAnd, creator)

	s.NotNil(err)
}

func (s *PredicateConfigTestSuite) Test_ValidConfig() {
	p, err := condition.NewPredicateConfig([]condition.Condition{tariffCondition()}, condition.LogicAnd, creator)

	s.Nil(err)
	s.Equal(condition.LogicAnd, p.Logic)
	s.Equal(creator, p.Creator)
	s.NotEqual([32]byte{}, p.ID)
}

func (s *PredicateConfigTestSuite) Test_DeriveID_Deterministic() {
	id1 := condition.DeriveID([]condition.Condition{tariffCondition()}, condition.LogicAnd, creator)
	id2 := condition.DeriveID([]condition.Condition{tariffCondition()}, condition.LogicAnd, creator)

	s.Equal(id1, id2)
}

func (s *PredicateConfigTestSuite) Test_DeriveID_ChangesWithThreshold() {
	c := tariffCondition()
	id1 := condition.DeriveID([]condition.Condition{c}, condition.LogicAnd, creator)

	c.Threshold = 20
	id2 := condition.DeriveID([]condition.Condition{c}, condition.LogicAnd, creator)

	s.NotEqual(id1, id2)
}

func (s *PredicateConfigTestSuite) Test_DeriveID_ChangesWithLogic() {
	c := tariffCondition()
	id1 := condition.DeriveID([]condition.Condition{c}, condition.LogicAnd, creator)
	id2 := condition.DeriveID([]condition.Condition{c}, condition.LogicOr, creator)

	s.NotEqual(id1, id2)
}

func (s *PredicateConfigTestSuite) Test_DeriveID_IgnoresAuthValue() {
	c := tariffCondition()
	c.AuthType = condition.AuthApiKey
	c.AuthValue = "secret-a"
	id1 := condition.DeriveID([]condition.Condition{c}, condition.LogicAnd, creator)

	c.AuthValue = "secret-b"
	id2 := condition.DeriveID([]condition.Condition{c}, condition.LogicAnd, creator)

	s.Equal(id1, id2)
}
