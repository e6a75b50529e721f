package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

const (
	RESULT_TTL = time.Minute * 10
)

// Result is one keeper evaluation outcome as published on-chain.
type Result struct {
	PredicateID string
	Value       bool
	UpdateCount uint64
	Fees        string
	CheckedAt   time.Time
}

// PredicateCache keeps the latest evaluation result per predicate so API
// reads do not hit the registry or the chain. Entries expire if the
// keeper stops refreshing them.
type PredicateCache struct {
	resultCache *ttlcache.Cache[string, Result]
}

func NewPredicateCache(ctx context.Context, resultChn chan Result) *PredicateCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, Result](RESULT_TTL),
	)

	pc := &PredicateCache{
		resultCache: cache,
	}

	go cache.Start()
	go pc.watch(ctx, resultChn)
	return pc
}

func (p *PredicateCache) Result(predicateID string) (Result, error) {
	res := p.resultCache.Get(predicateID)
	if res == nil {
		return Result{}, fmt.Errorf("no result found for predicate %s", predicateID)
	}

	return res.Value(), nil
}

func (p *PredicateCache) watch(ctx context.Context, resultChn chan Result) {
	for {
		select {
		case res := <-resultChn:
			{
				log.Debug().Msgf("Caching result for predicate: %s", res.PredicateID)
				p.resultCache.Set(res.PredicateID, res, ttlcache.DefaultTTL)
			}
		case <-ctx.Done():
			{
				p.resultCache.Stop()
				return
			}
		}
	}
}
