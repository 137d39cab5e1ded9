package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Fatimadayan/Sooqbot/ai"
	"github.com/Fatimadayan/Sooqbot/entity"
	"github.com/Fatimadayan/Sooqbot/middleware"
	orderrepo "github.com/Fatimadayan/Sooqbot/order/repository"
	ordersvc "github.com/Fatimadayan/Sooqbot/order/service"
	productrepo "github.com/Fatimadayan/Sooqbot/product/repository"
	productsvc "github.com/Fatimadayan/Sooqbot/product/service"
	"github.com/Fatimadayan/Sooqbot/realtime"
	storerepo "github.com/Fatimadayan/Sooqbot/store/repository"
	storesvc "github.com/Fatimadayan/Sooqbot/store/service"
)

const testSecret = "test-secret"

// fakeGenerator satisfies ai.Generator for handler tests.
type fakeGenerator struct {
	drafts []ai.ProductDraft
	err    error
}

func (f *fakeGenerator) GenerateProducts(ctx context.Context, req ai.GenerateRequest) ([]ai.ProductDraft, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.drafts, nil
}

// testEnv wires the full stack on in-memory repositories.
type testEnv struct {
	router    *gin.Engine
	storeRepo *storerepo.MemoryStoreRepo
	generator *fakeGenerator
	hub       *realtime.Hub
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storeRepo := storerepo.NewMemoryStoreRepo()
	productRepo := productrepo.NewMemoryProductRepo()
	orderRepo := orderrepo.NewMemoryOrderRepo()
	gen := &fakeGenerator{}

	hub := realtime.NewHub()
	storeHandler := NewStoreHandler(storesvc.NewStoreService(storeRepo), testSecret)
	productHandler := NewProductHandler(productsvc.NewProductService(productRepo, storeRepo, gen))
	orderHandler := NewOrderHandler(ordersvc.NewOrderService(orderRepo, storeRepo), hub)
	wsHandler := NewWSHandler(hub, testSecret)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/stores", storeHandler.CreateStore())
		v1.GET("/stores", storeHandler.ListStores())
		v1.GET("/stores/:id", storeHandler.GetStore())
		v1.PATCH("/stores/:id", storeHandler.UpdateStore())
		v1.POST("/stores/:id/generate-products", productHandler.GenerateProducts())
		v1.GET("/stores/:id/dashboard/ws", wsHandler.DashboardSocket())

		v1.POST("/products", productHandler.CreateProduct())
		v1.GET("/products", productHandler.ListProducts())
		v1.GET("/products/:id", productHandler.GetProduct())

		v1.POST("/orders", orderHandler.CreateOrder())
		v1.GET("/orders", orderHandler.ListOrders())
		v1.GET("/orders/:id", orderHandler.GetOrder())
		v1.PATCH("/orders/:id/status", middleware.RequireStoreToken(testSecret), orderHandler.UpdateStatus())
	}

	return &testEnv{router: r, storeRepo: storeRepo, generator: gen, hub: hub}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

// createStore is a helper that creates a store via the API and returns the
// store and its dashboard token.
func (e *testEnv) createStore(t *testing.T, name string) (entity.Store, string) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/stores", gin.H{"name": name, "category": "general"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		Store          entity.Store `json:"store"`
		DashboardToken string       `json:"dashboard_token"`
	}
	decode(t, rec, &resp)
	return resp.Store, resp.DashboardToken
}
