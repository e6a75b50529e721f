package keeper

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/triggerfi/triggerfi/cache"
	"github.com/triggerfi/triggerfi/condition"
	"github.com/triggerfi/triggerfi/registry"
)

//go:generate mockgen -source=keeper.go -destination=./mock/keeper.go -package mock_keeper

type ConditionEvaluator interface {
	Evaluate(ctx context.Context, conditions []condition.Condition, logic condition.LogicOperator) bool
}

type PredicateStore interface {
	CheckConditions(predicateId [32]byte, result bool) (*common.Hash, error)
	UpdateCount(predicateId [32]byte) (*big.Int, error)
}

type OrderStore interface {
	ActivePredicates() ([]*registry.Predicate, error)
	ActiveOrders() ([]*registry.Order, error)
	UpdatePredicateResult(predicateID string, result bool, updateCount uint64, accumulatedFees string) error
	ExpireOverdue(now time.Time) ([]string, error)
}

type Metrics interface {
	TrackActiveSet(predicates int, orders int)
	TrackUpdate()
	TrackEvaluationFailure()
	StartCycle(cycleID string)
	EndCycle(cycleID string)
}

// Keeper periodically re-evaluates every predicate referenced by an
// active order and commits the result on-chain. Each committed update
// increments the store's update counter, which accrues fees for the
// maker to settle at fill time.
type Keeper struct {
	orders    OrderStore
	evaluator ConditionEvaluator
	store     PredicateStore
	metrics   Metrics

	interval     time.Duration
	feePerUpdate *big.Int
	resultChn    chan cache.Result
}

func NewKeeper(
	orders OrderStore,
	evaluator ConditionEvaluator,
	store PredicateStore,
	metrics Metrics,
	interval time.Duration,
	feePerUpdate *big.Int,
	resultChn chan cache.Result,
) *Keeper {
	return &Keeper{
		orders:       orders,
		evaluator:    evaluator,
		store:        store,
		metrics:      metrics,
		interval:     interval,
		feePerUpdate: feePerUpdate,
		resultChn:    resultChn,
	}
}

// Start runs the update loop until the context is cancelled. The first
// cycle executes immediately.
func (k *Keeper) Start(ctx context.Context) {
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	k.cycle(ctx)
	for {
		select {
		case <-ticker.C:
			k.cycle(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// cycle expires overdue orders and refreshes every active predicate.
// A failing predicate never blocks the rest of the working set.
func (k *Keeper) cycle(ctx context.Context) {
	cycleID := uuid.NewString()
	k.metrics.StartCycle(cycleID)
	defer k.metrics.EndCycle(cycleID)

	expired, err := k.orders.ExpireOverdue(time.Now())
	if err != nil {
		log.Err(err).Msg("Failed expiring overdue orders")
	}
	for _, orderID := range expired {
		log.Info().Str("order", orderID).Msg("Order expired")
	}

	predicates, err := k.orders.ActivePredicates()
	if err != nil {
		log.Err(err).Msg("Failed fetching active predicates")
		return
	}
	if orders, err := k.orders.ActiveOrders(); err == nil {
		k.metrics.TrackActiveSet(len(predicates), len(orders))
	}

	for _, p := range predicates {
		if err := k.update(ctx, p); err != nil {
			k.metrics.TrackEvaluationFailure()
			log.Err(err).Str("predicate", p.PredicateID).Msg("Failed updating predicate")
		}
	}
}

func (k *Keeper) update(ctx context.Context, p *registry.Predicate) error {
	conditions, err := p.ConditionSet()
	if err != nil {
		return err
	}

	result := k.evaluator.Evaluate(ctx, conditions, condition.LogicOperator(p.Logic))

	id := common.HexToHash(p.PredicateID)
	hash, err := k.store.CheckConditions(id, result)
	if err != nil {
		return err
	}
	log.Debug().
		Str("predicate", p.PredicateID).
		Bool("result", result).
		Msgf("Committed predicate update with hash: %s", hash.Hex())

	count, err := k.store.UpdateCount(id)
	if err != nil {
		return err
	}
	fees := new(big.Int).Mul(count, k.feePerUpdate)

	err = k.orders.UpdatePredicateResult(p.PredicateID, result, count.Uint64(), fees.String())
	if err != nil {
		return err
	}
	k.metrics.TrackUpdate()

	res := cache.Result{
		PredicateID: p.PredicateID,
		Value:       result,
		UpdateCount: count.Uint64(),
		Fees:        fees.String(),
		CheckedAt:   time.Now(),
	}
	select {
	case k.resultChn <- res:
	default:
	}
	return nil
}
