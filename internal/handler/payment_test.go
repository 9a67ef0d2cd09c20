package handler

import (
	"context"
	"encoding/json"
	"grocery-bazaar-backend/internal/client"
	"grocery-bazaar-backend/internal/dto"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/repository"
	"grocery-bazaar-backend/internal/service"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const clientURL = "https://shop.example.com"

type fakePaymentClient struct {
	lastRequest *client.InitiationRequest
	err         error
}

func (f *fakePaymentClient) InitiatePayment(ctx context.Context, req *client.InitiationRequest) (*client.InitiationResponse, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return &client.InitiationResponse{
		Status:         "SUCCESS",
		GatewayPageURL: "https://gateway.example.com/pay/sess-1",
	}, nil
}

type paymentFixture struct {
	echo      *echo.Echo
	orderRepo repository.OrderRepository
	gateway   *fakePaymentClient
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Order{}, &model.OrderItem{}))

	orderRepo := repository.NewOrderRepository(db)
	gateway := &fakePaymentClient{}
	paymentService := service.NewPaymentService(gateway, orderRepo, "https://api.example.com")
	h := NewPaymentHandler(paymentService, clientURL)

	e := echo.New()
	e.POST("/orders", h.SubmitOrder)
	e.GET("/orders", h.GetOrders)
	e.GET("/orders/transaction/:id", h.GetOrderByTransactionID)
	e.GET("/orders/:id", h.GetOrderByID)
	e.POST("/payment/success", h.HandleSuccess)
	e.POST("/payment/fail", h.HandleFail)
	e.POST("/payment/cancel", h.HandleCancel)

	return &paymentFixture{echo: e, orderRepo: orderRepo, gateway: gateway}
}

func (f *paymentFixture) submitOrder(t *testing.T) string {
	t.Helper()

	body := `{
		"name": "Karim",
		"email": "karim@example.com",
		"address": "Dhaka",
		"totalAmount": 500,
		"items": [
			{"name": "Rice", "category": "Grocery", "price": 300, "quantity": 1},
			{"name": "Oil", "category": "Grocery", "price": 200, "quantity": 1}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SubmitOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://gateway.example.com/pay/sess-1", resp.URL)

	require.NotNil(t, f.gateway.lastRequest)
	return f.gateway.lastRequest.TransactionID
}

func (f *paymentFixture) post(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func TestSubmitOrderReturnsGatewayURL(t *testing.T) {
	f := newPaymentFixture(t)

	transactionID := f.submitOrder(t)

	order, err := f.orderRepo.FindByTransactionID(context.Background(), transactionID)
	require.NoError(t, err)
	assert.False(t, order.PaymentStatus)
}

func TestSubmitOrderEmptyBody(t *testing.T) {
	f := newPaymentFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
}

func TestSubmitOrderGatewayRejection(t *testing.T) {
	f := newPaymentFixture(t)
	f.gateway.err = &client.GatewayError{Status: "FAILED", Reason: "invalid store"}

	req := httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"totalAmount":500,"items":[{"name":"Rice","category":"Grocery","price":500,"quantity":1}]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	orders, err := f.orderRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSuccessCallbackRedirectsToDashboard(t *testing.T) {
	f := newPaymentFixture(t)
	transactionID := f.submitOrder(t)

	rec := f.post("/payment/success?transactionId=" + transactionID)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t,
		clientURL+"/dashboard/success?transactionId="+transactionID,
		rec.Header().Get(echo.HeaderLocation))

	order, err := f.orderRepo.FindByTransactionID(context.Background(), transactionID)
	require.NoError(t, err)
	assert.True(t, order.PaymentStatus)
	assert.NotNil(t, order.PaidAt)
}

func TestSuccessCallbackMissingTransactionID(t *testing.T) {
	f := newPaymentFixture(t)
	transactionID := f.submitOrder(t)

	rec := f.post("/payment/success")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, clientURL+"/dashboard/failed", rec.Header().Get(echo.HeaderLocation))

	// no store mutation
	order, err := f.orderRepo.FindByTransactionID(context.Background(), transactionID)
	require.NoError(t, err)
	assert.False(t, order.PaymentStatus)
}

func TestSuccessCallbackUnknownTransactionID(t *testing.T) {
	f := newPaymentFixture(t)

	rec := f.post("/payment/success?transactionId=tx-unknown")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "Payment failed", rec.Body.String())
}

func TestFailCallbackRemovesOrder(t *testing.T) {
	f := newPaymentFixture(t)
	transactionID := f.submitOrder(t)

	rec := f.post("/payment/fail?transactionId=" + transactionID)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, clientURL+"/dashboard/failed", rec.Header().Get(echo.HeaderLocation))

	_, err := f.orderRepo.FindByTransactionID(context.Background(), transactionID)
	assert.Error(t, err)
}

func TestFailCallbackUnknownTransactionID(t *testing.T) {
	f := newPaymentFixture(t)

	// redirect target is the same whether or not anything was deleted
	rec := f.post("/payment/fail?transactionId=tx-unknown")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, clientURL+"/dashboard/failed", rec.Header().Get(echo.HeaderLocation))
}

func TestCancelCallbackIsNoOp(t *testing.T) {
	f := newPaymentFixture(t)
	transactionID := f.submitOrder(t)

	rec := f.post("/payment/cancel")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment cancelled")

	// order stays pending
	order, err := f.orderRepo.FindByTransactionID(context.Background(), transactionID)
	require.NoError(t, err)
	assert.False(t, order.PaymentStatus)
}

func TestGetOrderByTransactionID(t *testing.T) {
	f := newPaymentFixture(t)
	transactionID := f.submitOrder(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/transaction/"+transactionID, nil)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, transactionID, order.TransactionID)
	assert.Len(t, order.Items, 2)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	f := newPaymentFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/999", nil)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
