package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raamveerrr/pos/internal/auth"
	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/infra"
	"github.com/raamveerrr/pos/internal/mocks"
	"github.com/raamveerrr/pos/internal/services"
)

type testEnv struct {
	router      *gin.Engine
	token       string
	payments    *mocks.MockPaymentRepository
	orders      *mocks.MockOrderRepository
	users       *mocks.MockUserProfileRepository
	gateway     *mocks.MockRazorpayClient
	restaurants *mocks.MockRestaurantRepository
	tables      *mocks.MockTableRepository
	menu        *mocks.MockMenuItemRepository
	inventory   *mocks.MockInventoryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		payments:    new(mocks.MockPaymentRepository),
		orders:      new(mocks.MockOrderRepository),
		users:       new(mocks.MockUserProfileRepository),
		gateway:     new(mocks.MockRazorpayClient),
		restaurants: new(mocks.MockRestaurantRepository),
		tables:      new(mocks.MockTableRepository),
		menu:        new(mocks.MockMenuItemRepository),
		inventory:   new(mocks.MockInventoryRepository),
	}

	pub := new(mocks.MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	paymentSvc := services.NewPaymentService(env.payments, env.orders, env.users, env.gateway, pub)
	orderSvc := services.NewOrderService(env.orders, env.tables, env.restaurants, paymentSvc, pub)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate(services.TestUserID, services.TestRestaurantID, "cashier")
	require.NoError(t, err)
	env.token = token

	handler := NewHandler(
		orderSvc,
		paymentSvc,
		services.NewTableService(env.tables, pub),
		services.NewMenuService(env.menu),
		services.NewReportService(env.orders, env.inventory),
		tokens,
	)

	env.router = gin.New()
	handler.RegisterRoutes(env.router)
	return env
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHealthzIsPublic(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitiatePaymentAuth(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing token", func(t *testing.T) {
		w := env.do(http.MethodPost, "/functions/payments/initiate", "", gin.H{"order_id": services.TestOrderID})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := env.do(http.MethodPost, "/functions/payments/initiate", "not-a-jwt", gin.H{"order_id": services.TestOrderID})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})
}

func TestInitiatePaymentValidation(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing order id", func(t *testing.T) {
		w := env.do(http.MethodPost, "/functions/payments/initiate", env.token, gin.H{
			"amount": 108.80,
			"method": "cash",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})

	t.Run("negative amount reaches the taxonomy", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.On("FindByID", mock.Anything, services.TestUserID).
			Return(services.CreateTestProfile(services.TestUserID, services.TestRestaurantID), nil)
		env.orders.On("FindByID", mock.Anything, services.TestOrderID).
			Return(services.CreateTestOrder(services.TestOrderID, services.TestRestaurantID, domain.OrderStatusPending), nil)

		w := env.do(http.MethodPost, "/functions/payments/initiate", env.token, gin.H{
			"order_id": services.TestOrderID,
			"amount":   -10,
			"method":   "cash",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, domain.ErrInvalidAmount.Error(), body["error"])
		env.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestInitiatePaymentCash(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("FindByID", mock.Anything, services.TestUserID).
		Return(services.CreateTestProfile(services.TestUserID, services.TestRestaurantID), nil)
	env.orders.On("FindByID", mock.Anything, services.TestOrderID).
		Return(services.CreateTestOrder(services.TestOrderID, services.TestRestaurantID, domain.OrderStatusPending), nil)
	env.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	env.orders.On("MarkServed", mock.Anything, services.TestOrderID, services.TestUserID, mock.AnythingOfType("time.Time")).Return(nil)
	env.orders.On("UpdatePaymentStatus", mock.Anything, services.TestOrderID, domain.PaymentStatusCompleted).Return(nil)

	w := env.do(http.MethodPost, "/functions/payments/initiate", env.token, gin.H{
		"order_id": services.TestOrderID,
		"amount":   108.80,
		"currency": "INR",
		"method":   "cash",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["payment_id"])
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "cash", body["method"])
	assert.NotContains(t, body, "razorpay_order_id")
	assert.NotContains(t, body, "razorpay_key_id")

	time.Sleep(100 * time.Millisecond)
	env.payments.AssertExpectations(t)
	env.orders.AssertExpectations(t)
}

func TestInitiatePaymentRazorpay(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("FindByID", mock.Anything, services.TestUserID).
		Return(services.CreateTestProfile(services.TestUserID, services.TestRestaurantID), nil)
	env.orders.On("FindByID", mock.Anything, services.TestOrderID).
		Return(services.CreateTestOrder(services.TestOrderID, services.TestRestaurantID, domain.OrderStatusPending), nil)
	env.gateway.On("CreateOrder", mock.Anything, mock.Anything, "INR", mock.AnythingOfType("string")).
		Return(&infra.GatewayOrder{ID: "order_gw_1", Currency: "INR", Status: "created"}, nil)
	env.gateway.On("KeyID").Return("rzp_test_key")
	env.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	w := env.do(http.MethodPost, "/functions/payments/initiate", env.token, gin.H{
		"order_id": services.TestOrderID,
		"amount":   150.50,
		"currency": "INR",
		"method":   "razorpay",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "order_gw_1", body["razorpay_order_id"])
	assert.Equal(t, "rzp_test_key", body["razorpay_key_id"])
	assert.Equal(t, "pending", body["status"])
}

func TestSubmitOrderEndpoint(t *testing.T) {
	t.Run("empty cart rejected", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(http.MethodPost, "/orders", env.token, gin.H{
			"payment_method": "cash",
			"items":          []gin.H{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cash order created", func(t *testing.T) {
		env := newTestEnv(t)
		env.restaurants.On("FindByID", mock.Anything, services.TestRestaurantID).
			Return(services.CreateTestRestaurant(), nil)
		env.orders.On("NextOrderNumber", mock.Anything, services.TestRestaurantID, mock.AnythingOfType("time.Time")).
			Return(int64(12), nil)
		env.orders.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
		env.users.On("FindByID", mock.Anything, services.TestUserID).
			Return(services.CreateTestProfile(services.TestUserID, services.TestRestaurantID), nil)
		env.payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
		env.orders.On("MarkServed", mock.Anything, mock.AnythingOfType("string"), services.TestUserID, mock.AnythingOfType("time.Time")).Return(nil)
		env.orders.On("UpdatePaymentStatus", mock.Anything, mock.AnythingOfType("string"), domain.PaymentStatusCompleted).Return(nil)
		env.orders.On("FindByID", mock.Anything, mock.AnythingOfType("string")).
			Return(services.CreateTestOrder(services.TestOrderID, services.TestRestaurantID, domain.OrderStatusServed), nil)

		w := env.do(http.MethodPost, "/orders", env.token, gin.H{
			"payment_method": "cash",
			"customer_name":  "Walk-in",
			"items": []gin.H{
				{"menu_item_id": "55555555-5555-5555-5555-555555555555", "name": "Paneer Tikka", "unit_price": 42.50, "quantity": 2},
			},
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "order")
		assert.Contains(t, body, "payment")
	})
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("FindByID", mock.Anything, services.TestOrderID).
		Return(services.CreateTestOrder(services.TestOrderID, services.TestRestaurantID, domain.OrderStatusServed), nil)

	w := env.do(http.MethodPatch, "/orders/"+services.TestOrderID+"/status", env.token, gin.H{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRevenueEndpoint(t *testing.T) {
	env := newTestEnv(t)
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	env.orders.On("RevenueByDay", mock.Anything, services.TestRestaurantID, day).
		Return(&domain.RevenueSummary{OrdersCount: 2}, nil)

	w := env.do(http.MethodGet, "/reports/revenue?date=2025-01-01", env.token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["orders_count"])
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/functions/payments/initiate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
