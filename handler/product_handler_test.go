package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fatimadayan/Sooqbot/ai"
	"github.com/Fatimadayan/Sooqbot/entity"
)

func TestCreateProduct(t *testing.T) {
	env := setupEnv(t)
	st, _ := env.createStore(t, "gadgets")

	t.Run("created", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/products", gin.H{
			"store_id":    st.ID.String(),
			"name":        "USB lamp",
			"price_cents": 1999,
			"stock":       3,
		}, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var p entity.Product
		decode(t, rec, &p)
		assert.Equal(t, st.ID, p.StoreID)
		assert.False(t, p.AIGenerated)
	})

	t.Run("unknown store is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/products", gin.H{
			"store_id":    uuid.NewString(),
			"name":        "orphan",
			"price_cents": 100,
		}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("negative price rejected at validation", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/products", gin.H{
			"store_id":    st.ID.String(),
			"name":        "bad",
			"price_cents": -1,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative stock rejected at validation", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/products", gin.H{
			"store_id":    st.ID.String(),
			"name":        "bad",
			"price_cents": 100,
			"stock":       -2,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListProducts(t *testing.T) {
	env := setupEnv(t)
	st, _ := env.createStore(t, "gadgets")

	rec := env.do(t, http.MethodGet, "/api/v1/products?store_id="+st.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []entity.Product
	decode(t, rec, &list)
	assert.Empty(t, list)

	rec = env.do(t, http.MethodGet, "/api/v1/products", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "store_id is required")
}

func TestGenerateProducts(t *testing.T) {
	env := setupEnv(t)
	st, _ := env.createStore(t, "fashion house")

	payload := gin.H{
		"category":    "fashion",
		"count":       5,
		"price_range": gin.H{"min": 5, "max": 50},
	}

	t.Run("persists the whole batch", func(t *testing.T) {
		env.generator.err = nil
		env.generator.drafts = []ai.ProductDraft{
			{Name: "Silk Scarf", Description: "d", Category: "fashion", PriceCents: 2500},
			{Name: "Wool Beanie", Description: "d", Category: "fashion", PriceCents: 1500},
			{Name: "Linen Shirt", Description: "d", Category: "fashion", PriceCents: 4200},
			{Name: "Denim Skirt", Description: "d", Category: "fashion", PriceCents: 3900},
			{Name: "Straw Hat", Description: "d", Category: "fashion", PriceCents: 800},
		}

		rec := env.do(t, http.MethodPost, "/api/v1/stores/"+st.ID.String()+"/generate-products", payload, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var resp struct {
			Products []entity.Product `json:"products"`
			Count    int              `json:"count"`
		}
		decode(t, rec, &resp)
		require.Equal(t, 5, resp.Count)
		for _, p := range resp.Products {
			assert.True(t, p.AIGenerated)
			assert.GreaterOrEqual(t, p.PriceCents, int64(500))
			assert.LessOrEqual(t, p.PriceCents, int64(5000))
		}

		listRec := env.do(t, http.MethodGet, "/api/v1/products?store_id="+st.ID.String(), nil, nil)
		var list []entity.Product
		decode(t, listRec, &list)
		assert.Len(t, list, 5)
	})

	t.Run("upstream failure is a bad gateway and persists nothing", func(t *testing.T) {
		env2 := setupEnv(t)
		st2, _ := env2.createStore(t, "fashion house")
		env2.generator.err = &ai.GenerationError{Stage: "parse", Err: assert.AnError}

		rec := env2.do(t, http.MethodPost, "/api/v1/stores/"+st2.ID.String()+"/generate-products", payload, nil)
		assert.Equal(t, http.StatusBadGateway, rec.Code)

		listRec := env2.do(t, http.MethodGet, "/api/v1/products?store_id="+st2.ID.String(), nil, nil)
		var list []entity.Product
		decode(t, listRec, &list)
		assert.Empty(t, list)
	})

	t.Run("unknown store", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/stores/"+uuid.NewString()+"/generate-products", payload, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("count bounds enforced", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/stores/"+st.ID.String()+"/generate-products", gin.H{
			"category":    "fashion",
			"count":       50,
			"price_range": gin.H{"min": 5, "max": 50},
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("inverted price range rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/stores/"+st.ID.String()+"/generate-products", gin.H{
			"category":    "fashion",
			"count":       3,
			"price_range": gin.H{"min": 50, "max": 5},
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
