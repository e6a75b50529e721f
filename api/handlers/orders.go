package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/triggerfi/triggerfi/chains/evm/order"
	"github.com/triggerfi/triggerfi/condition"
	"github.com/triggerfi/triggerfi/config"
	"github.com/triggerfi/triggerfi/filler"
	"github.com/triggerfi/triggerfi/registry"
)

//go:generate mockgen -source=orders.go -destination=./mock/orders.go -package mock_handlers

type OrderStore interface {
	CreateOrder(o *registry.Order, p *registry.Predicate) error
	OrderByID(orderID string) (*registry.Order, error)
	Orders(maker string, status registry.Status) ([]*registry.Order, error)
	UpdateStatus(orderID string, next registry.Status) error
}

type PredicateEncoder interface {
	ConditionPredicate(predicateId [32]byte) ([]byte, error)
}

type OrderCanceller interface {
	CancelOrder(orderHash [32]byte) (*common.Hash, error)
}

type OrderFiller interface {
	Fill(ctx context.Context, orderID string) (*common.Hash, error)
}

type ConditionBody struct {
	Endpoint  string  `json:"endpoint"`
	AuthType  string  `json:"authType"`
	AuthValue string  `json:"authValue"`
	JSONPath  string  `json:"jsonPath"`
	Operator  string  `json:"operator"`
	Threshold float64 `json:"threshold"`
}

type PredicateBody struct {
	Logic      string          `json:"logic"`
	Conditions []ConditionBody `json:"conditions"`
}

type OrderBody struct {
	Maker        string         `json:"maker"`
	Receiver     string         `json:"receiver"`
	MakerAsset   string         `json:"makerAsset"`
	TakerAsset   string         `json:"takerAsset"`
	MakingAmount *BigInt        `json:"makingAmount"`
	TakingAmount *BigInt        `json:"takingAmount"`
	Salt         *BigInt        `json:"salt"`
	Signature    string         `json:"signature"`
	ExpiresAt    *time.Time     `json:"expiresAt"`
	Predicate    *PredicateBody `json:"predicate"`
}

type OrderResponse struct {
	OrderID     string `json:"orderId"`
	OrderHash   string `json:"orderHash"`
	PredicateID string `json:"predicateId"`
}

type FillResponse struct {
	TxHash string `json:"txHash"`
}

type OrderHandler struct {
	orders  OrderStore
	encoder PredicateEncoder
	limit   OrderCanceller
	filler  OrderFiller
	tokens  config.TokenStore

	chainId           *big.Int
	verifyingContract common.Address
}

func NewOrderHandler(
	orders OrderStore,
	encoder PredicateEncoder,
	limit OrderCanceller,
	filler OrderFiller,
	tokens config.TokenStore,
	chainId *big.Int,
	verifyingContract common.Address,
) *OrderHandler {
	return &OrderHandler{
		orders:            orders,
		encoder:           encoder,
		limit:             limit,
		filler:            filler,
		tokens:            tokens,
		chainId:           chainId,
		verifyingContract: verifyingContract,
	}
}

// HandleCreate registers a signed order together with its predicate
// configuration. The predicate bytes are re-derived server side and the
// signature has to recover to the maker address, so a tampered or
// mismatched submission is rejected before it is persisted.
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	b := &OrderBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	err = h.validate(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	maker := common.HexToAddress(b.Maker)
	cfg, err := condition.NewPredicateConfig(
		toConditions(b.Predicate.Conditions),
		condition.LogicOperator(b.Predicate.Logic),
		maker,
	)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid predicate: %s", err), http.StatusBadRequest)
		return
	}

	predicateBytes, err := h.encoder.ConditionPredicate(cfg.ID)
	if err != nil {
		JSONError(w, fmt.Errorf("failed encoding predicate: %s", err), http.StatusInternalServerError)
		return
	}

	o := &order.Order{
		Salt:            b.Salt.Int,
		MakerAsset:      common.HexToAddress(b.MakerAsset),
		TakerAsset:      common.HexToAddress(b.TakerAsset),
		Maker:           maker,
		Receiver:        common.HexToAddress(b.Receiver),
		AllowedSender:   common.Address{},
		MakingAmount:    b.MakingAmount.Int,
		TakingAmount:    b.TakingAmount.Int,
		MakerAssetData:  []byte{},
		TakerAssetData:  []byte{},
		GetMakingAmount: []byte{},
		GetTakingAmount: []byte{},
		Predicate:       predicateBytes,
		Permit:          []byte{},
		PreInteraction:  []byte{},
		PostInteraction: []byte{},
	}
	digest, err := order.Hash(o, h.chainId, h.verifyingContract)
	if err != nil {
		JSONError(w, fmt.Errorf("failed hashing order: %s", err), http.StatusInternalServerError)
		return
	}

	signer, err := recoverSigner(digest, common.FromHex(b.Signature))
	if err != nil {
		JSONError(w, fmt.Errorf("invalid signature: %s", err), http.StatusBadRequest)
		return
	}
	if signer != maker {
		JSONError(w, fmt.Errorf("signature does not match maker"), http.StatusBadRequest)
		return
	}

	conditionsJSON, err := json.Marshal(cfg.Conditions)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	predicateID := common.Hash(cfg.ID).Hex()
	record := &registry.Order{
		OrderID:         fmt.Sprintf("%s-%s", strings.ToLower(maker.Hex()), uuid.NewString()),
		OrderHash:       hexutil.Encode(digest),
		ChainID:         h.chainId.Uint64(),
		Maker:           maker.Hex(),
		Receiver:        o.Receiver.Hex(),
		MakerAsset:      o.MakerAsset.Hex(),
		TakerAsset:      o.TakerAsset.Hex(),
		MakingAmount:    o.MakingAmount.String(),
		TakingAmount:    o.TakingAmount.String(),
		AllowedSender:   o.AllowedSender.Hex(),
		Salt:            o.Salt.String(),
		Predicate:       hexutil.Encode(predicateBytes),
		Signature:       b.Signature,
		PredicateID:     predicateID,
		AccumulatedFees: "0",
		ExpiresAt:       b.ExpiresAt,
	}
	predicate := &registry.Predicate{
		PredicateID: predicateID,
		Creator:     maker.Hex(),
		Logic:       string(cfg.Logic),
		Conditions:  string(conditionsJSON),
	}

	err = h.orders.CreateOrder(record, predicate)
	if err != nil {
		JSONError(w, fmt.Errorf("failed storing order: %s", err), http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("order", record.OrderID).
		Str("predicate", predicateID).
		Msg("Order registered")
	JSONResponse(w, &OrderResponse{
		OrderID:     record.OrderID,
		OrderHash:   record.OrderHash,
		PredicateID: predicateID,
	}, http.StatusCreated)
}

func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	o, err := h.orders.OrderByID(vars["orderId"])
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			JSONError(w, err, http.StatusNotFound)
			return
		}
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, o, http.StatusOK)
}

func (h *OrderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := registry.Status(r.URL.Query().Get("status"))
	switch status {
	case "", registry.StatusActive, registry.StatusFilled, registry.StatusCancelled, registry.StatusExpired:
	default:
		JSONError(w, fmt.Errorf("invalid status %q", status), http.StatusBadRequest)
		return
	}

	orders, err := h.orders.Orders(r.URL.Query().Get("maker"), status)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, orders, http.StatusOK)
}

// HandleCancel cancels the order both on-chain and in the registry.
// Cancelling an already cancelled order succeeds without issuing another
// transaction.
func (h *OrderHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	o, err := h.orders.OrderByID(vars["orderId"])
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			JSONError(w, err, http.StatusNotFound)
			return
		}
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	if o.Status == registry.StatusCancelled {
		JSONResponse(w, o, http.StatusOK)
		return
	}
	if o.Status.Terminal() {
		JSONError(w, fmt.Errorf("order is %s", o.Status), http.StatusConflict)
		return
	}

	hash, err := h.limit.CancelOrder(common.HexToHash(o.OrderHash))
	if err != nil {
		JSONError(w, fmt.Errorf("failed cancelling order: %s", err), http.StatusInternalServerError)
		return
	}

	err = h.orders.UpdateStatus(o.OrderID, registry.StatusCancelled)
	if err != nil && !errors.Is(err, registry.ErrTerminalState) {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("order", o.OrderID).
		Msgf("Cancelled order with hash: %s", hash.Hex())
	JSONResponse(w, &FillResponse{TxHash: hash.Hex()}, http.StatusOK)
}

// HandleFill triggers an immediate fill attempt as the configured taker.
func (h *OrderHandler) HandleFill(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hash, err := h.filler.Fill(r.Context(), vars["orderId"])
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			JSONError(w, err, http.StatusNotFound)
			return
		}
		if errors.Is(err, filler.ErrNotFillable) {
			JSONError(w, err, http.StatusConflict)
			return
		}
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, &FillResponse{TxHash: hash.Hex()}, http.StatusOK)
}

func (h *OrderHandler) validate(b *OrderBody) error {
	if b.Maker == "" {
		return fmt.Errorf("missing field 'maker'")
	}
	if b.MakerAsset == "" {
		return fmt.Errorf("missing field 'makerAsset'")
	}
	if b.TakerAsset == "" {
		return fmt.Errorf("missing field 'takerAsset'")
	}
	if b.MakingAmount == nil {
		return fmt.Errorf("missing field 'makingAmount'")
	}
	if b.TakingAmount == nil {
		return fmt.Errorf("missing field 'takingAmount'")
	}
	if b.Salt == nil {
		return fmt.Errorf("missing field 'salt'")
	}
	if b.Signature == "" {
		return fmt.Errorf("missing field 'signature'")
	}
	if b.Predicate == nil {
		return fmt.Errorf("missing field 'predicate'")
	}

	if b.MakingAmount.Sign() != 1 {
		return fmt.Errorf("field 'makingAmount' must be positive")
	}
	if b.TakingAmount.Sign() != 1 {
		return fmt.Errorf("field 'takingAmount' must be positive")
	}
	if b.Salt.Sign() == -1 {
		return fmt.Errorf("field 'salt' must not be negative")
	}
	if common.HexToAddress(b.MakerAsset) == common.HexToAddress(b.TakerAsset) {
		return fmt.Errorf("maker and taker asset cannot be equal")
	}

	// with a configured token list only whitelisted assets are accepted
	if len(h.tokens.Tokens) > 0 {
		if _, _, err := h.tokens.ConfigByAddress(common.HexToAddress(b.MakerAsset)); err != nil {
			return fmt.Errorf("unsupported maker asset %s", b.MakerAsset)
		}
		if _, _, err := h.tokens.ConfigByAddress(common.HexToAddress(b.TakerAsset)); err != nil {
			return fmt.Errorf("unsupported taker asset %s", b.TakerAsset)
		}
	}
	return nil
}

func toConditions(bodies []ConditionBody) []condition.Condition {
	conditions := make([]condition.Condition, len(bodies))
	for i, b := range bodies {
		conditions[i] = condition.Condition{
			Endpoint:  b.Endpoint,
			AuthType:  condition.AuthType(b.AuthType),
			AuthValue: b.AuthValue,
			JSONPath:  b.JSONPath,
			Operator:  condition.Operator(b.Operator),
			Threshold: b.Threshold,
		}
		if conditions[i].AuthType == "" {
			conditions[i].AuthType = condition.AuthNone
		}
	}
	return conditions
}

func recoverSigner(digest []byte, sig []byte) (common.Address, error) {
	if len(sig) != 65 {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(sig))
	}

	s := make([]byte, 65)
	copy(s, sig)
	if s[64] >= 27 {
		s[64] -= 27
	}

	pub, err := crypto.SigToPub(digest, s)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
