package metrics

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
)

const (
	CYCLE_TTL = time.Minute * 10
)

type KeeperMetrics struct {
	activePredicatesGauge metric.Int64ObservableGauge
	activeOrdersGauge     metric.Int64ObservableGauge
	activePredicateCount  *int64
	activeOrderCount      *int64

	updateCounter            metric.Int64Counter
	evaluationFailureCounter metric.Int64Counter
	fillCounter              metric.Int64Counter

	cycleTimeHistogram  metric.Float64Histogram
	cycleStartTimeCache *ttlcache.Cache[string, time.Time]
}

// NewKeeperMetrics initializes metrics related to the keeper loop
func NewKeeperMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*KeeperMetrics, error) {
	activePredicateCount := new(int64)
	activeOrderCount := new(int64)
	activePredicatesGauge, err := meter.Int64ObservableGauge(
		"keeper.ActivePredicates",
		metric.WithInt64Callback(func(context context.Context, result metric.Int64Observer) error {
			result.Observe(*activePredicateCount, opts)
			return nil
		}),
		metric.WithDescription("Number of predicates referenced by active orders"),
	)
	if err != nil {
		return nil, err
	}
	activeOrdersGauge, err := meter.Int64ObservableGauge(
		"keeper.ActiveOrders",
		metric.WithInt64Callback(func(context context.Context, result metric.Int64Observer) error {
			result.Observe(*activeOrderCount, opts)
			return nil
		}),
		metric.WithDescription("Number of orders currently active"),
	)
	if err != nil {
		return nil, err
	}

	updateCounter, err := meter.Int64Counter(
		"keeper.PredicateUpdates",
		metric.WithDescription("Number of on-chain predicate result updates"),
	)
	if err != nil {
		return nil, err
	}
	evaluationFailureCounter, err := meter.Int64Counter(
		"keeper.EvaluationFailures",
		metric.WithDescription("Number of failed predicate evaluation attempts"),
	)
	if err != nil {
		return nil, err
	}
	fillCounter, err := meter.Int64Counter(
		"keeper.Fills",
		metric.WithDescription("Number of successfully filled orders"),
	)
	if err != nil {
		return nil, err
	}

	cycleTimeHistogram, err := meter.Float64Histogram("keeper.CycleTime")
	if err != nil {
		return nil, err
	}

	return &KeeperMetrics{
		activePredicatesGauge:    activePredicatesGauge,
		activeOrdersGauge:        activeOrdersGauge,
		activePredicateCount:     activePredicateCount,
		activeOrderCount:         activeOrderCount,
		updateCounter:            updateCounter,
		evaluationFailureCounter: evaluationFailureCounter,
		fillCounter:              fillCounter,
		cycleTimeHistogram:       cycleTimeHistogram,
		cycleStartTimeCache: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](CYCLE_TTL),
		),
	}, nil
}

func (m *KeeperMetrics) TrackActiveSet(predicates int, orders int) {
	*m.activePredicateCount = int64(predicates)
	*m.activeOrderCount = int64(orders)
}

func (m *KeeperMetrics) TrackUpdate() {
	m.updateCounter.Add(context.Background(), 1)
}

func (m *KeeperMetrics) TrackEvaluationFailure() {
	m.evaluationFailureCounter.Add(context.Background(), 1)
}

func (m *KeeperMetrics) TrackFill() {
	m.fillCounter.Add(context.Background(), 1)
}

func (m *KeeperMetrics) StartCycle(cycleID string) {
	m.cycleStartTimeCache.Set(cycleID, time.Now(), ttlcache.DefaultTTL)
}

func (m *KeeperMetrics) EndCycle(cycleID string) {
	startTime := m.cycleStartTimeCache.Get(cycleID)
	if startTime == nil {
		log.Warn().Msgf("Cycle start time with ID %s not found", cycleID)
		return
	}

	m.cycleTimeHistogram.Record(context.Background(), time.Since(startTime.Value()).Seconds())
}
