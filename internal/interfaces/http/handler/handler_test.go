package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/zenerp/backend/internal/application/catalog"
	financeapp "github.com/zenerp/backend/internal/application/finance"
	partnerapp "github.com/zenerp/backend/internal/application/partner"
	searchapp "github.com/zenerp/backend/internal/application/search"
	tradeapp "github.com/zenerp/backend/internal/application/trade"
	"github.com/zenerp/backend/internal/interfaces/http/middleware"
	"github.com/zenerp/backend/internal/interfaces/http/router"
	"github.com/zenerp/backend/internal/store"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	st := store.New(store.Seed())
	opts := tradeapp.Options{StrictTransitions: true}

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewCustomerHandler(partnerapp.NewCustomerService(st))).
		Register(NewVendorHandler(partnerapp.NewVendorService(st))).
		Register(NewProductHandler(catalogapp.NewProductService(st))).
		Register(NewSalesOrderHandler(tradeapp.NewSalesOrderService(st, opts))).
		Register(NewPurchaseOrderHandler(tradeapp.NewPurchaseOrderService(st, opts))).
		Register(NewLedgerHandler(financeapp.NewLedgerService(st))).
		Register(NewSearchHandler(searchapp.NewService(st))).
		Register(NewSystemHandler("zenerp-test"))
	r.Setup()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestCustomerEndpoints(t *testing.T) {
	engine := setupTestServer(t)

	w, envelope := doJSON(t, engine, http.MethodPost, "/api/v1/partner/customers",
		`{"name":"Frank Miller","company":"Miller Media"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "CUST-006", data["id"])

	w, envelope = doJSON(t, engine, http.MethodGet, "/api/v1/partner/customers/CUST-006", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Frank Miller", envelope["data"].(map[string]any)["name"])

	w, envelope = doJSON(t, engine, http.MethodGet, "/api/v1/partner/customers/CUST-404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "NOT_FOUND", envelope["error"].(map[string]any)["code"])
}

func TestCustomerCreate_ValidationError(t *testing.T) {
	engine := setupTestServer(t)

	w, envelope := doJSON(t, engine, http.MethodPost, "/api/v1/partner/customers", `{"company":"Nameless"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, envelope["success"])
}

func TestSalesOrderLifecycleOverHTTP(t *testing.T) {
	engine := setupTestServer(t)

	w, envelope := doJSON(t, engine, http.MethodPost, "/api/v1/trade/sales-orders",
		`{"customerId":"CUST-001","items":[{"productId":"PROD-001","quantity":2}]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := envelope["data"].(map[string]any)["id"].(string)
	assert.Equal(t, "SO-001", orderID)

	// Draft -> Dispatched violates the strict transition table
	w, envelope = doJSON(t, engine, http.MethodPatch, "/api/v1/trade/sales-orders/"+orderID+"/status",
		`{"status":"Dispatched"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INVALID_STATE", envelope["error"].(map[string]any)["code"])

	w, _ = doJSON(t, engine, http.MethodPatch, "/api/v1/trade/sales-orders/"+orderID+"/status",
		`{"status":"Confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, envelope = doJSON(t, engine, http.MethodPatch, "/api/v1/trade/sales-orders/"+orderID+"/status",
		`{"status":"Dispatched"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dispatched", envelope["data"].(map[string]any)["status"])

	// Dispatch effects: stock decremented and one ledger entry posted
	w, envelope = doJSON(t, engine, http.MethodGet, "/api/v1/catalog/products/PROD-001", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(13), envelope["data"].(map[string]any)["stockQuantity"])

	w, envelope = doJSON(t, engine, http.MethodGet, "/api/v1/finance/ledger", "")
	require.Equal(t, http.StatusOK, w.Code)
	entries := envelope["data"].([]any)
	require.Len(t, entries, 1)
	assert.Equal(t, "Sales", entries[0].(map[string]any)["type"])

	w, envelope = doJSON(t, engine, http.MethodGet, "/api/v1/finance/ledger/balance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2400", envelope["data"].(map[string]any)["balance"])
}

func TestRecordPaymentOverHTTP(t *testing.T) {
	engine := setupTestServer(t)

	w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/trade/sales-orders",
		`{"customerId":"CUST-001","items":[{"productId":"PROD-002","quantity":4}]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, envelope := doJSON(t, engine, http.MethodPost, "/api/v1/trade/sales-orders/SO-001/payments",
		`{"amount":"50"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "50", envelope["data"].(map[string]any)["paidAmount"])

	// Non-positive amounts are rejected by request validation
	w, _ = doJSON(t, engine, http.MethodPost, "/api/v1/trade/sales-orders/SO-001/payments",
		`{"amount":"-10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStockAdjustmentOverHTTP(t *testing.T) {
	engine := setupTestServer(t)

	w, envelope := doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products/PROD-005/stock-adjustments",
		`{"quantity":30,"direction":"decrease"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(70), envelope["data"].(map[string]any)["stockQuantity"])

	w, _ = doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products/PROD-005/stock-adjustments",
		`{"quantity":30,"direction":"sideways"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, envelope = doJSON(t, engine, http.MethodPost, "/api/v1/catalog/products/PROD-404/stock-adjustments",
		`{"quantity":1,"direction":"increase"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", envelope["error"].(map[string]any)["code"])
}

func TestSearchOverHTTP(t *testing.T) {
	engine := setupTestServer(t)

	w, envelope := doJSON(t, engine, http.MethodGet, "/api/v1/search?q=laptop", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := envelope["data"].(map[string]any)
	assert.Len(t, data["products"].([]any), 1)
	assert.Empty(t, data["customers"].([]any))

	w, _ = doJSON(t, engine, http.MethodGet, "/api/v1/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupTestServer(t)

	w, envelope := doJSON(t, engine, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", envelope["data"].(map[string]any)["status"])
}
