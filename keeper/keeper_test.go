package keeper_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/triggerfi/triggerfi/cache"
	"github.com/triggerfi/triggerfi/condition"
	"github.com/triggerfi/triggerfi/keeper"
	mock_keeper "github.com/triggerfi/triggerfi/keeper/mock"
	"github.com/triggerfi/triggerfi/registry"
)

type KeeperTestSuite struct {
	suite.Suite

	keeper        *keeper.Keeper
	mockOrders    *mock_keeper.MockOrderStore
	mockEvaluator *mock_keeper.MockConditionEvaluator
	mockStore     *mock_keeper.MockPredicateStore
	mockMetrics   *mock_keeper.MockMetrics
	resultChn     chan cache.Result
}

func TestRunKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockOrders = mock_keeper.NewMockOrderStore(ctrl)
	s.mockEvaluator = mock_keeper.NewMockConditionEvaluator(ctrl)
	s.mockStore = mock_keeper.NewMockPredicateStore(ctrl)
	s.mockMetrics = mock_keeper.NewMockMetrics(ctrl)
	s.resultChn = make(chan cache.Result, 8)

	s.mockMetrics.EXPECT().StartCycle(gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().EndCycle(gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().TrackActiveSet(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().TrackUpdate().AnyTimes()
	s.mockMetrics.EXPECT().TrackEvaluationFailure().AnyTimes()

	s.keeper = keeper.NewKeeper(
		s.mockOrders,
		s.mockEvaluator,
		s.mockStore,
		s.mockMetrics,
		time.Hour,
		big.NewInt(2000000),
		s.resultChn,
	)
}

func (s *KeeperTestSuite) predicate(predicateID string) *registry.Predicate {
	conditions, _ := json.Marshal([]condition.Condition{
		{
			Endpoint:  "https://api.example.com/tariffs",
			JSONPath:  "data.rate",
			Operator:  condition.OperatorGreaterThan,
			Threshold: 15,
		},
	})
	return &registry.Predicate{
		PredicateID: predicateID,
		Logic:       string(condition.LogicAnd),
		Conditions:  string(conditions),
	}
}

func (s *KeeperTestSuite) runSingleCycle(ctx context.Context, cancel context.CancelFunc) cache.Result {
	go s.keeper.Start(ctx)

	select {
	case res := <-s.resultChn:
		cancel()
		return res
	case <-time.After(time.Second * 5):
		cancel()
		s.Fail("no result received")
		return cache.Result{}
	}
}

func (s *KeeperTestSuite) Test_Cycle_CommitsResultAndFees() {
	ctx, cancel := context.WithCancel(context.Background())
	p := s.predicate("0x0000000000000000000000000000000000000000000000000000000000000001")
	txHash := common.HexToHash("0xdeadbeef")

	s.mockOrders.EXPECT().ExpireOverdue(gomock.Any()).Return([]string{}, nil)
	s.mockOrders.EXPECT().ActivePredicates().Return([]*registry.Predicate{p}, nil)
	s.mockOrders.EXPECT().ActiveOrders().Return([]*registry.Order{{}, {}}, nil)
	s.mockEvaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any(), condition.LogicAnd).Return(true)
	s.mockStore.EXPECT().CheckConditions(
		[32]byte(common.HexToHash(p.PredicateID)), true,
	).Return(&txHash, nil)
	s.mockStore.EXPECT().UpdateCount(gomock.Any()).Return(big.NewInt(3), nil)
	s.mockOrders.EXPECT().UpdatePredicateResult(p.PredicateID, true, uint64(3), "6000000").Return(nil)

	res := s.runSingleCycle(ctx, cancel)

	s.Equal(p.PredicateID, res.PredicateID)
	s.True(res.Value)
	s.Equal(uint64(3), res.UpdateCount)
	s.Equal("6000000", res.Fees)
}

func (s *KeeperTestSuite) Test_Cycle_FalseResultStillCommitted() {
	ctx, cancel := context.WithCancel(context.Background())
	p := s.predicate("0x0000000000000000000000000000000000000000000000000000000000000002")
	txHash := common.HexToHash("0xdeadbeef")

	s.mockOrders.EXPECT().ExpireOverdue(gomock.Any()).Return([]string{}, nil)
	s.mockOrders.EXPECT().ActivePredicates().Return([]*registry.Predicate{p}, nil)
	s.mockOrders.EXPECT().ActiveOrders().Return([]*registry.Order{{}}, nil)
	s.mockEvaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any(), condition.LogicAnd).Return(false)
	s.mockStore.EXPECT().CheckConditions(gomock.Any(), false).Return(&txHash, nil)
	s.mockStore.EXPECT().UpdateCount(gomock.Any()).Return(big.NewInt(1), nil)
	s.mockOrders.EXPECT().UpdatePredicateResult(p.PredicateID, false, uint64(1), "2000000").Return(nil)

	res := s.runSingleCycle(ctx, cancel)

	s.False(res.Value)
	s.Equal("2000000", res.Fees)
}

func (s *KeeperTestSuite) Test_Cycle_FailedPredicateDoesNotBlockOthers() {
	ctx, cancel := context.WithCancel(context.Background())
	failing := s.predicate("0x0000000000000000000000000000000000000000000000000000000000000003")
	healthy := s.predicate("0x0000000000000000000000000000000000000000000000000000000000000004")
	txHash := common.HexToHash("0xdeadbeef")

	s.mockOrders.EXPECT().ExpireOverdue(gomock.Any()).Return([]string{}, nil)
	s.mockOrders.EXPECT().ActivePredicates().Return([]*registry.Predicate{failing, healthy}, nil)
	s.mockOrders.EXPECT().ActiveOrders().Return([]*registry.Order{{}, {}}, nil)
	s.mockEvaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	s.mockStore.EXPECT().CheckConditions(
		[32]byte(common.HexToHash(failing.PredicateID)), true,
	).Return(nil, fmt.Errorf("transaction reverted"))
	s.mockStore.EXPECT().CheckConditions(
		[32]byte(common.HexToHash(healthy.PredicateID)), true,
	).Return(&txHash, nil)
	s.mockStore.EXPECT().UpdateCount(gomock.Any()).Return(big.NewInt(2), nil)
	s.mockOrders.EXPECT().UpdatePredicateResult(healthy.PredicateID, true, uint64(2), "4000000").Return(nil)

	res := s.runSingleCycle(ctx, cancel)

	s.Equal(healthy.PredicateID, res.PredicateID)
}

func (s *KeeperTestSuite) Test_Cycle_ExpiresOverdueOrders() {
	ctx, cancel := context.WithCancel(context.Background())
	p := s.predicate("0x0000000000000000000000000000000000000000000000000000000000000005")
	txHash := common.HexToHash("0xdeadbeef")

	s.mockOrders.EXPECT().ExpireOverdue(gomock.Any()).Return([]string{"o1", "o2"}, nil)
	s.mockOrders.EXPECT().ActivePredicates().Return([]*registry.Predicate{p}, nil)
	s.mockOrders.EXPECT().ActiveOrders().Return([]*registry.Order{}, nil)
	s.mockEvaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.mockStore.EXPECT().CheckConditions(gomock.Any(), true).Return(&txHash, nil)
	s.mockStore.EXPECT().UpdateCount(gomock.Any()).Return(big.NewInt(1), nil)
	s.mockOrders.EXPECT().UpdatePredicateResult(p.PredicateID, true, uint64(1), "2000000").Return(nil)

	s.runSingleCycle(ctx, cancel)
}
