package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/triggerfi/triggerfi/condition"
)

var (
	ErrNotFound = errors.New("order not found")
	// returned when a status transition is attempted on an order that
	// already reached filled, cancelled or expired
	ErrTerminalState = errors.New("order already in terminal state")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusFilled    Status = "filled"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) Terminal() bool {
	return s != StatusActive
}

// Order is the durable off-chain record of one signed conditional order.
// The order body and signature are immutable after creation; only status,
// fee bookkeeping and error fields mutate.
type Order struct {
	gorm.Model `json:"-"`

	OrderID   string `gorm:"uniqueIndex" json:"orderId"`
	OrderHash string `gorm:"uniqueIndex" json:"orderHash"`
	ChainID   uint64 `json:"chainId"`

	Maker         string `gorm:"index" json:"maker"`
	Receiver      string `json:"receiver"`
	MakerAsset    string `json:"makerAsset"`
	TakerAsset    string `json:"takerAsset"`
	MakingAmount  string `json:"makingAmount"`
	TakingAmount  string `json:"takingAmount"`
	AllowedSender string `json:"allowedSender"`
	Salt          string `json:"salt"`
	Predicate     string `json:"predicate"`
	Signature     string `json:"signature"`

	PredicateID string `gorm:"index" json:"predicateId"`
	Status      Status `gorm:"index" json:"status"`

	UpdateCount     uint64 `json:"updateCount"`
	AccumulatedFees string `json:"accumulatedFees"`

	LastError  string     `json:"lastError,omitempty"`
	FillTxHash string     `json:"fillTxHash,omitempty"`
	Filler     string     `json:"filler,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

// Predicate is the durable record of one reusable condition set together
// with the keeper-owned evaluation bookkeeping.
type Predicate struct {
	gorm.Model `json:"-"`

	PredicateID string `gorm:"uniqueIndex" json:"predicateId"`
	Creator     string `json:"creator"`
	Logic       string `json:"logic"`
	// JSON encoded condition descriptors
	Conditions string `json:"-"`

	LastResult  bool       `json:"lastResult"`
	LastChecked *time.Time `json:"lastChecked,omitempty"`
	UpdateCount uint64     `json:"updateCount"`
}

func (p *Predicate) ConditionSet() ([]condition.Condition, error) {
	var conditions []condition.Condition
	if err := json.Unmarshal([]byte(p.Conditions), &conditions); err != nil {
		return nil, fmt.Errorf("failed decoding conditions for predicate %s: %w", p.PredicateID, err)
	}
	return conditions, nil
}

// Registry is the single order store implementation. All read and write
// paths of the order lifecycle go through it.
type Registry struct {
	db   *gorm.DB
	feed *feed
}

func NewRegistry(db *gorm.DB) (*Registry, error) {
	if err := db.AutoMigrate(&Order{}, &Predicate{}); err != nil {
		return nil, err
	}

	return &Registry{
		db:   db,
		feed: newFeed(),
	}, nil
}

func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// CreateOrder persists a new order as active together with its predicate
// configuration. Predicates are shared, so an existing predicate with the
// same ID is reused instead of duplicated.
func (r *Registry) CreateOrder(o *Order, p *Predicate) error {
	if o.PredicateID != p.PredicateID {
		return fmt.Errorf("order references predicate %s but %s given", o.PredicateID, p.PredicateID)
	}

	o.Status = StatusActive
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("predicate_id = ?", p.PredicateID).FirstOrCreate(p).Error; err != nil {
			return err
		}
		return tx.Create(o).Error
	})
	if err != nil {
		return err
	}

	r.publish()
	return nil
}

func (r *Registry) OrderByID(orderID string) (*Order, error) {
	var o Order
	if err := r.db.Where("order_id = ?", orderID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *Registry) OrderByHash(orderHash string) (*Order, error) {
	var o Order
	if err := r.db.Where("order_hash = ?", orderHash).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *Registry) ActiveOrders() ([]*Order, error) {
	var orders []*Order
	if err := r.db.Where("status = ?", StatusActive).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Registry) OrdersByMaker(maker string) ([]*Order, error) {
	var orders []*Order
	if err := r.db.Where("maker = ?", maker).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Orders lists orders filtered by maker and status. Empty filters match
// everything.
func (r *Registry) Orders(maker string, status Status) ([]*Order, error) {
	q := r.db
	if maker != "" {
		q = q.Where("maker = ?", maker)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []*Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Registry) OrdersByPredicate(predicateID string) ([]*Order, error) {
	var orders []*Order
	if err := r.db.Where("predicate_id = ?", predicateID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ActivePredicates returns every predicate currently referenced by at
// least one active order. This is the working set of the keeper loop.
func (r *Registry) ActivePredicates() ([]*Predicate, error) {
	var predicates []*Predicate
	err := r.db.
		Where("predicate_id IN (?)", r.db.
			Model(&Order{}).
			Distinct("predicate_id").
			Where("status = ?", StatusActive)).
		Find(&predicates).Error
	if err != nil {
		return nil, err
	}
	return predicates, nil
}

func (r *Registry) PredicateByID(predicateID string) (*Predicate, error) {
	var p Predicate
	if err := r.db.Where("predicate_id = ?", predicateID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdatePredicateResult stores a fresh keeper evaluation and mirrors the
// new fee total onto every active order referencing the predicate.
func (r *Registry) UpdatePredicateResult(predicateID string, result bool, updateCount uint64, accumulatedFees string) error {
	now := time.Now()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Predicate{}).
			Where("predicate_id = ?", predicateID).
			Updates(map[string]interface{}{
				"last_result":  result,
				"last_checked": now,
				"update_count": updateCount,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		return tx.Model(&Order{}).
			Where("predicate_id = ? AND status = ?", predicateID, StatusActive).
			Updates(map[string]interface{}{
				"update_count":     updateCount,
				"accumulated_fees": accumulatedFees,
			}).Error
	})
	if err != nil {
		return err
	}

	r.publish()
	return nil
}

// UpdateStatus moves an order into a terminal state. Status only ever
// moves forward; transitioning an already terminal order fails with
// ErrTerminalState.
func (r *Registry) UpdateStatus(orderID string, next Status) error {
	if !next.Terminal() {
		return fmt.Errorf("invalid transition to %s", next)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.Where("order_id = ?", orderID).First(&o).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if o.Status.Terminal() {
			return fmt.Errorf("%w: %s is %s", ErrTerminalState, orderID, o.Status)
		}

		o.Status = next
		return tx.Save(&o).Error
	})
	if err != nil {
		return err
	}

	r.publish()
	return nil
}

// MarkFilled finalizes a successful fill with its transaction reference
// and filler identity.
func (r *Registry) MarkFilled(orderID string, fillTxHash string, filler string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.Where("order_id = ?", orderID).First(&o).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if o.Status.Terminal() {
			return fmt.Errorf("%w: %s is %s", ErrTerminalState, orderID, o.Status)
		}

		o.Status = StatusFilled
		o.FillTxHash = fillTxHash
		o.Filler = filler
		o.LastError = ""
		return tx.Save(&o).Error
	})
	if err != nil {
		return err
	}

	r.publish()
	return nil
}

// SetLastError persists failure detail for observability without moving
// the order out of active.
func (r *Registry) SetLastError(orderID string, detail string) error {
	res := r.db.Model(&Order{}).
		Where("order_id = ?", orderID).
		Update("last_error", detail)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpireOverdue expires every active order whose maker-side deadline has
// passed and returns the affected order IDs.
func (r *Registry) ExpireOverdue(now time.Time) ([]string, error) {
	var orders []*Order
	err := r.db.
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", StatusActive, now).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	expired := make([]string, 0, len(orders))
	for _, o := range orders {
		if err := r.UpdateStatus(o.OrderID, StatusExpired); err != nil {
			return expired, err
		}
		expired = append(expired, o.OrderID)
	}
	return expired, nil
}

// Subscribe returns a feed of active order set snapshots. The initial
// snapshot is delivered immediately; the subscription has to be released
// with Unsubscribe.
func (r *Registry) Subscribe() *Subscription {
	sub := r.feed.subscribe()
	if orders, err := r.ActiveOrders(); err == nil {
		sub.send(orders)
	}
	return sub
}

func (r *Registry) publish() {
	orders, err := r.ActiveOrders()
	if err != nil {
		return
	}
	r.feed.publish(orders)
}
