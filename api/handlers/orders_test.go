package handlers_test

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/triggerfi/triggerfi/api/handlers"
	mock_handlers "github.com/triggerfi/triggerfi/api/handlers/mock"
	"github.com/triggerfi/triggerfi/chains/evm/order"
	"github.com/triggerfi/triggerfi/config"
	"github.com/triggerfi/triggerfi/filler"
	"github.com/triggerfi/triggerfi/registry"
)

var (
	testChainID           = big.NewInt(1)
	testVerifyingContract = common.HexToAddress("0x119c71D3BbAC22029622cbaEc24854d3D32D2828")
	testPredicateBytes    = []byte{0xde, 0xad, 0xbe, 0xef}
)

type OrderHandlerTestSuite struct {
	suite.Suite

	handler       *handlers.OrderHandler
	registry      *registry.Registry
	mockEncoder   *mock_handlers.MockPredicateEncoder
	mockCanceller *mock_handlers.MockOrderCanceller
	mockFiller    *mock_handlers.MockOrderFiller

	makerKey *ecdsa.PrivateKey
	maker    common.Address
	counter  int
}

func TestRunOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	db, err := registry.OpenSQLite(fmt.Sprintf("file:handlers%d?mode=memory&cache=shared", s.counter))
	s.Require().Nil(err)
	s.counter++
	s.registry, err = registry.NewRegistry(db)
	s.Require().Nil(err)

	s.mockEncoder = mock_handlers.NewMockPredicateEncoder(ctrl)
	s.mockCanceller = mock_handlers.NewMockOrderCanceller(ctrl)
	s.mockFiller = mock_handlers.NewMockOrderFiller(ctrl)

	s.makerKey, err = crypto.GenerateKey()
	s.Require().Nil(err)
	s.maker = crypto.PubkeyToAddress(s.makerKey.PublicKey)

	s.handler = handlers.NewOrderHandler(
		s.registry,
		s.mockEncoder,
		s.mockCanceller,
		s.mockFiller,
		config.TokenStore{},
		testChainID,
		testVerifyingContract,
	)
}

func (s *OrderHandlerTestSuite) body() map[string]interface{} {
	o := &order.Order{
		Salt:            big.NewInt(42),
		MakerAsset:      common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
		TakerAsset:      common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
		Maker:           s.maker,
		MakingAmount:    big.NewInt(1000),
		TakingAmount:    big.NewInt(2000),
		MakerAssetData:  []byte{},
		TakerAssetData:  []byte{},
		GetMakingAmount: []byte{},
		GetTakingAmount: []byte{},
		Predicate:       testPredicateBytes,
		Permit:          []byte{},
		PreInteraction:  []byte{},
		PostInteraction: []byte{},
	}
	sig, err := order.Sign(o, testChainID, testVerifyingContract, s.makerKey)
	s.Require().Nil(err)

	return map[string]interface{}{
		"maker":        s.maker.Hex(),
		"makerAsset":   o.MakerAsset.Hex(),
		"takerAsset":   o.TakerAsset.Hex(),
		"makingAmount": "1000",
		"takingAmount": "2000",
		"salt":         "42",
		"signature":    hexutil.Encode(sig),
		"predicate": map[string]interface{}{
			"logic": "AND",
			"conditions": []map[string]interface{}{
				{
					"endpoint":  "https://api.example.com/tariffs",
					"jsonPath":  "data.rate",
					"operator":  ">",
					"threshold": 15,
				},
			},
		},
	}
}

func (s *OrderHandlerTestSuite) post(path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	s.handler.HandleCreate(rec, req)
	return rec
}

func (s *OrderHandlerTestSuite) create() handlers.OrderResponse {
	s.mockEncoder.EXPECT().ConditionPredicate(gomock.Any()).Return(testPredicateBytes, nil)

	rec := s.post("/v1/orders", s.body())
	s.Require().Equal(http.StatusCreated, rec.Code)

	resp := handlers.OrderResponse{}
	s.Require().Nil(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader([]byte("invalid")))
	rec := httptest.NewRecorder()

	s.handler.HandleCreate(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_MissingField() {
	body := s.body()
	delete(body, "signature")

	rec := s.post("/v1/orders", body)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_ZeroAmount() {
	body := s.body()
	body["makingAmount"] = "0"

	rec := s.post("/v1/orders", body)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Len(s.activeOrders(), 0)
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_NegativeAmount() {
	body := s.body()
	body["takingAmount"] = "-2000"

	rec := s.post("/v1/orders", body)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Len(s.activeOrders(), 0)
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_EqualAssets() {
	body := s.body()
	body["takerAsset"] = body["makerAsset"]

	rec := s.post("/v1/orders", body)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Len(s.activeOrders(), 0)
}

func (s *OrderHandlerTestSuite) activeOrders() []*registry.Order {
	orders, err := s.registry.Orders("", registry.StatusActive)
	s.Require().Nil(err)
	return orders
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_InvalidPredicate() {
	body := s.body()
	body["predicate"] = map[string]interface{}{
		"logic":      "XOR",
		"conditions": []map[string]interface{}{},
	}

	rec := s.post("/v1/orders", body)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_SignatureMismatch() {
	body := s.body()
	body["maker"] = "0x0000000000000000000000000000000000000001"
	s.mockEncoder.EXPECT().ConditionPredicate(gomock.Any()).Return(testPredicateBytes, nil)

	rec := s.post("/v1/orders", body)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_UnsupportedAsset() {
	s.handler = handlers.NewOrderHandler(
		s.registry,
		s.mockEncoder,
		s.mockCanceller,
		s.mockFiller,
		config.TokenStore{
			Tokens: map[string]config.TokenConfig{
				"WETH": {Address: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), Decimals: 18},
			},
		},
		testChainID,
		testVerifyingContract,
	)

	rec := s.post("/v1/orders", s.body())

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleCreate_Success() {
	resp := s.create()

	s.Contains(resp.OrderID, "0x")
	stored, err := s.registry.OrderByID(resp.OrderID)
	s.Nil(err)
	s.Equal(registry.StatusActive, stored.Status)
	s.Equal(resp.PredicateID, stored.PredicateID)
	s.Equal(hexutil.Encode(testPredicateBytes), stored.Predicate)
}

func (s *OrderHandlerTestSuite) Test_HandleGet_NotFound() {
	req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"orderId": "missing"})
	rec := httptest.NewRecorder()

	s.handler.HandleGet(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleGet_Success() {
	resp := s.create()

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+resp.OrderID, nil)
	req = mux.SetURLVars(req, map[string]string{"orderId": resp.OrderID})
	rec := httptest.NewRecorder()

	s.handler.HandleGet(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	stored := registry.Order{}
	s.Nil(json.Unmarshal(rec.Body.Bytes(), &stored))
	s.Equal(resp.OrderID, stored.OrderID)
}

func (s *OrderHandlerTestSuite) Test_HandleList_InvalidStatus() {
	req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=bogus", nil)
	rec := httptest.NewRecorder()

	s.handler.HandleList(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleList_FiltersByMaker() {
	resp := s.create()

	req := httptest.NewRequest(http.MethodGet, "/v1/orders?maker="+s.maker.Hex()+"&status=active", nil)
	rec := httptest.NewRecorder()
	s.handler.HandleList(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	orders := []registry.Order{}
	s.Nil(json.Unmarshal(rec.Body.Bytes(), &orders))
	s.Len(orders, 1)
	s.Equal(resp.OrderID, orders[0].OrderID)

	req = httptest.NewRequest(http.MethodGet, "/v1/orders?maker=0x0000000000000000000000000000000000000001", nil)
	rec = httptest.NewRecorder()
	s.handler.HandleList(rec, req)

	s.Nil(json.Unmarshal(rec.Body.Bytes(), &orders))
	s.Len(orders, 0)
}

func (s *OrderHandlerTestSuite) Test_HandleCancel_Success() {
	resp := s.create()
	txHash := common.HexToHash("0xcc")
	s.mockCanceller.EXPECT().CancelOrder([32]byte(common.HexToHash(resp.OrderHash))).Return(&txHash, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/"+resp.OrderID+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"orderId": resp.OrderID})
	rec := httptest.NewRecorder()

	s.handler.HandleCancel(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	stored, _ := s.registry.OrderByID(resp.OrderID)
	s.Equal(registry.StatusCancelled, stored.Status)
}

func (s *OrderHandlerTestSuite) Test_HandleCancel_Idempotent() {
	resp := s.create()
	txHash := common.HexToHash("0xcc")
	s.mockCanceller.EXPECT().CancelOrder(gomock.Any()).Return(&txHash, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/"+resp.OrderID+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"orderId": resp.OrderID})

	rec := httptest.NewRecorder()
	s.handler.HandleCancel(rec, req)
	s.Equal(http.StatusOK, rec.Code)

	// second cancellation does not issue another transaction
	rec = httptest.NewRecorder()
	s.handler.HandleCancel(rec, req)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleCancel_FilledOrderConflicts() {
	resp := s.create()
	s.Nil(s.registry.MarkFilled(resp.OrderID, "0xf1", "0xtaker"))

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/"+resp.OrderID+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"orderId": resp.OrderID})
	rec := httptest.NewRecorder()

	s.handler.HandleCancel(rec, req)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleFill_NotFillable() {
	s.mockFiller.EXPECT().Fill(gomock.Any(), "o1").Return(nil, fmt.Errorf("%w: predicate is false", filler.ErrNotFillable))

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/o1/fill", nil)
	req = mux.SetURLVars(req, map[string]string{"orderId": "o1"})
	rec := httptest.NewRecorder()

	s.handler.HandleFill(rec, req)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *OrderHandlerTestSuite) Test_HandleFill_Success() {
	txHash := common.HexToHash("0xf1")
	s.mockFiller.EXPECT().Fill(gomock.Any(), "o1").Return(&txHash, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/o1/fill", nil)
	req = mux.SetURLVars(req, map[string]string{"orderId": "o1"})
	rec := httptest.NewRecorder()

	s.handler.HandleFill(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	resp := handlers.FillResponse{}
	s.Nil(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(txHash.Hex(), resp.TxHash)
}
