package filler

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/triggerfi/triggerfi/cache"
	"github.com/triggerfi/triggerfi/chains/evm/order"
	"github.com/triggerfi/triggerfi/registry"
)

const FEE_CONFIRMATION_TIMEOUT = time.Minute * 5

// ErrNotFillable marks orders whose stored predicate result is not true
// or that already left the active state. The caller may retry after the
// next keeper update.
var ErrNotFillable = errors.New("order not fillable")

//go:generate mockgen -source=filler.go -destination=./mock/filler.go -package mock_filler

type OrderStore interface {
	OrderByID(orderID string) (*registry.Order, error)
	MarkFilled(orderID string, fillTxHash string, filler string) error
	SetLastError(orderID string, detail string) error
	UpdateStatus(orderID string, next registry.Status) error
	Subscribe() *registry.Subscription
}

type LimitOrder interface {
	FillOrder(o *order.Order, r [32]byte, vs [32]byte, amount *big.Int, takerTraits *big.Int) (*common.Hash, error)
	Remaining(orderHash [32]byte) (*big.Int, error)
}

type PredicateStore interface {
	CheckCondition(predicateId [32]byte) (*big.Int, error)
	GetUpdateFees(predicateId [32]byte) (*big.Int, error)
	CollectFees(predicateId [32]byte, amount *big.Int) (*common.Hash, error)
}

type ResultCache interface {
	Result(predicateID string) (cache.Result, error)
}

type ChainClient interface {
	WaitAndReturnTxReceipt(h common.Hash) (*ethTypes.Receipt, error)
	LatestBlock() (*big.Int, error)
}

type Metrics interface {
	TrackFill()
}

// Filler executes fills as the taker. Fees owed to the keeper are
// settled and confirmed on-chain before the fill transaction is
// submitted; a failed or reverted settlement aborts the fill.
type Filler struct {
	orders  OrderStore
	limit   LimitOrder
	store   PredicateStore
	results ResultCache
	metrics Metrics
	client  ChainClient

	confirmations      uint64
	blocktime          time.Duration
	blockRetryInterval time.Duration
	fillerTag          string
}

func NewFiller(
	orders OrderStore,
	limit LimitOrder,
	store PredicateStore,
	results ResultCache,
	metrics Metrics,
	client ChainClient,
	confirmations uint64,
	blocktime time.Duration,
	blockRetryInterval time.Duration,
	fillerTag string,
) *Filler {
	return &Filler{
		orders:             orders,
		limit:              limit,
		store:              store,
		results:            results,
		metrics:            metrics,
		client:             client,
		confirmations:      confirmations,
		blocktime:          blocktime,
		blockRetryInterval: blockRetryInterval,
		fillerTag:          fillerTag,
	}
}

// Fill attempts to execute the order. The on-chain predicate value is
// checked first, then accrued update fees are paid and confirmed, then
// the fill is submitted for the full making amount. Reverts caused by a
// stale predicate or a competing fill map to ErrNotFillable.
func (f *Filler) Fill(ctx context.Context, orderID string) (*common.Hash, error) {
	o, err := f.orders.OrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != registry.StatusActive {
		return nil, fmt.Errorf("%w: order is %s", ErrNotFillable, o.Status)
	}

	predicateID := common.HexToHash(o.PredicateID)
	result, err := f.store.CheckCondition(predicateID)
	if err != nil {
		return nil, err
	}
	if result.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: predicate is false", ErrNotFillable)
	}

	if err := f.settleFees(ctx, o, predicateID); err != nil {
		return nil, err
	}

	po, r, vs, err := toProtocolOrder(o)
	if err != nil {
		return nil, err
	}

	hash, err := f.limit.FillOrder(po, r, vs, big.NewInt(0), big.NewInt(0))
	if err != nil {
		return nil, f.classifyFillFailure(o, err)
	}

	if err := f.orders.MarkFilled(o.OrderID, hash.Hex(), f.fillerTag); err != nil {
		return hash, err
	}
	f.metrics.TrackFill()
	log.Info().
		Str("order", o.OrderID).
		Msgf("Filled order with hash: %s", hash.Hex())
	return hash, nil
}

// Watch fills orders automatically whenever the keeper publishes a true
// result for their predicate.
func (f *Filler) Watch(ctx context.Context) {
	sub := f.orders.Subscribe()
	defer sub.Unsubscribe()

	for {
		select {
		case orders := <-sub.C:
			for _, o := range orders {
				res, err := f.results.Result(o.PredicateID)
				if err != nil || !res.Value {
					continue
				}

				if _, err := f.Fill(ctx, o.OrderID); err != nil && !errors.Is(err, ErrNotFillable) {
					log.Err(err).Str("order", o.OrderID).Msg("Failed filling order")
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// settleFees pays the accrued keeper fees before filling. The amount is
// read live from the store so the payment always matches what the store
// expects, and the payment has to succeed on-chain before the fill goes
// out.
func (f *Filler) settleFees(ctx context.Context, o *registry.Order, predicateID common.Hash) error {
	fees, err := f.store.GetUpdateFees(predicateID)
	if err != nil {
		return err
	}
	if fees.Sign() == 0 {
		return nil
	}

	hash, err := f.store.CollectFees(predicateID, fees)
	if err == nil {
		err = f.waitFeeConfirmed(ctx, *hash)
	}
	if err != nil {
		detail := fmt.Sprintf("fee settlement failed: %s", err)
		if serr := f.orders.SetLastError(o.OrderID, detail); serr != nil {
			log.Err(serr).Str("order", o.OrderID).Msg("Failed recording fee error")
		}
		return fmt.Errorf("failed settling fees for order %s: %w", o.OrderID, err)
	}

	log.Debug().
		Str("order", o.OrderID).
		Str("fees", fees.String()).
		Msgf("Settled update fees with hash: %s", hash.Hex())
	return nil
}

// waitFeeConfirmed blocks until the fee transaction is mined with a
// successful status and buried under enough confirmations.
func (f *Filler) waitFeeConfirmed(ctx context.Context, hash common.Hash) error {
	ctx, cancel := context.WithTimeout(ctx, FEE_CONFIRMATION_TIMEOUT)
	defer cancel()

	receipt, err := f.client.WaitAndReturnTxReceipt(hash)
	if err != nil {
		return err
	}
	if receipt.Status != ethTypes.ReceiptStatusSuccessful {
		return fmt.Errorf("fee transaction %s reverted", hash.Hex())
	}

	required := new(big.Int).SetUint64(f.confirmations)
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timed out waiting for fee transaction %s confirmations", hash.Hex())
		default:
			currentBlock, err := f.client.LatestBlock()
			if err != nil {
				log.Warn().Msgf("Error fetching current block: %v", err)
				time.Sleep(f.blockRetryInterval)
				continue
			}

			confirmations := new(big.Int).Sub(currentBlock, receipt.BlockNumber)
			if confirmations.Cmp(required) != -1 {
				return nil
			}
			if confirmations.Sign() == -1 {
				time.Sleep(f.blockRetryInterval)
				continue
			}

			// nolint:gosec
			time.Sleep(f.blocktime * time.Duration(f.confirmations-confirmations.Uint64()))
		}
	}
}

// classifyFillFailure distinguishes an order consumed by a competing
// fill from a transient revert. Remaining at zero means the order is
// gone for good and the registry record moves to filled.
func (f *Filler) classifyFillFailure(o *registry.Order, fillErr error) error {
	remaining, err := f.limit.Remaining(common.HexToHash(o.OrderHash))
	if err == nil && remaining.Sign() == 0 {
		if serr := f.orders.UpdateStatus(o.OrderID, registry.StatusFilled); serr != nil && !errors.Is(serr, registry.ErrTerminalState) {
			log.Err(serr).Str("order", o.OrderID).Msg("Failed marking externally filled order")
		}
		return fmt.Errorf("%w: order already filled", ErrNotFillable)
	}

	detail := fmt.Sprintf("fill reverted: %s", fillErr)
	if serr := f.orders.SetLastError(o.OrderID, detail); serr != nil {
		log.Err(serr).Str("order", o.OrderID).Msg("Failed recording fill error")
	}
	return fmt.Errorf("%w: %s", ErrNotFillable, fillErr)
}

// toProtocolOrder rebuilds the on-chain order tuple and compact
// signature from the stored record.
func toProtocolOrder(o *registry.Order) (*order.Order, [32]byte, [32]byte, error) {
	var r, vs [32]byte

	salt, ok := new(big.Int).SetString(o.Salt, 10)
	if !ok {
		return nil, r, vs, fmt.Errorf("invalid salt %q", o.Salt)
	}
	makingAmount, ok := new(big.Int).SetString(o.MakingAmount, 10)
	if !ok {
		return nil, r, vs, fmt.Errorf("invalid making amount %q", o.MakingAmount)
	}
	takingAmount, ok := new(big.Int).SetString(o.TakingAmount, 10)
	if !ok {
		return nil, r, vs, fmt.Errorf("invalid taking amount %q", o.TakingAmount)
	}

	sig := common.FromHex(o.Signature)
	r, vs, err := order.SplitSignature(sig)
	if err != nil {
		return nil, r, vs, err
	}

	po := &order.Order{
		Salt:            salt,
		MakerAsset:      common.HexToAddress(o.MakerAsset),
		TakerAsset:      common.HexToAddress(o.TakerAsset),
		Maker:           common.HexToAddress(o.Maker),
		Receiver:        common.HexToAddress(o.Receiver),
		AllowedSender:   common.HexToAddress(o.AllowedSender),
		MakingAmount:    makingAmount,
		TakingAmount:    takingAmount,
		MakerAssetData:  []byte{},
		TakerAssetData:  []byte{},
		GetMakingAmount: []byte{},
		GetTakingAmount: []byte{},
		Predicate:       common.FromHex(o.Predicate),
		Permit:          []byte{},
		PreInteraction:  []byte{},
		PostInteraction: []byte{},
	}
	return po, r, vs, nil
}
