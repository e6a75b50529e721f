package registry

import (
	"sync"
)

// Subscription yields snapshots of the current active order set. Slow
// consumers only ever see the latest snapshot; intermediate ones are
// dropped.
type Subscription struct {
	C chan []*Order

	once  sync.Once
	unsub func()
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.unsub != nil {
			s.unsub()
		}
	})
}

func (s *Subscription) send(orders []*Order) {
	// drop the stale snapshot if the consumer has not caught up
	select {
	case <-s.C:
	default:
	}
	select {
	case s.C <- orders:
	default:
	}
}

type feed struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*Subscription
}

func newFeed() *feed {
	return &feed{
		subs: make(map[uint64]*Subscription),
	}
}

func (f *feed) subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++

	sub := &Subscription{
		C: make(chan []*Order, 1),
	}
	sub.unsub = func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}

	f.subs[id] = sub
	return sub
}

func (f *feed) publish(orders []*Order) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, sub := range f.subs {
		sub.send(orders)
	}
}
