package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fatimadayan/Sooqbot/ai"
	"github.com/Fatimadayan/Sooqbot/entity"
	productpkg "github.com/Fatimadayan/Sooqbot/product"
	productrepo "github.com/Fatimadayan/Sooqbot/product/repository"
	storerepo "github.com/Fatimadayan/Sooqbot/store/repository"
)

// fakeGenerator returns canned drafts or a canned error.
type fakeGenerator struct {
	drafts []ai.ProductDraft
	err    error
	calls  int
}

func (f *fakeGenerator) GenerateProducts(ctx context.Context, req ai.GenerateRequest) ([]ai.ProductDraft, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.drafts, nil
}

// failAfterRepo wraps a repository and fails inserts after n successes.
type failAfterRepo struct {
	productpkg.Repository
	n     int
	count int
}

func (r *failAfterRepo) CreateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if r.count >= r.n {
		return nil, errors.New("disk full")
	}
	r.count++
	return r.Repository.CreateProduct(ctx, p)
}

func setupService(t *testing.T, gen ai.Generator) (productpkg.Service, *storerepo.MemoryStoreRepo, *productrepo.MemoryProductRepo, uuid.UUID) {
	t.Helper()
	storeRepo := storerepo.NewMemoryStoreRepo()
	repo := productrepo.NewMemoryProductRepo()
	st, err := storeRepo.CreateStore(context.Background(), &entity.Store{Name: "test store", Active: true})
	require.NoError(t, err)
	return NewProductService(repo, storeRepo, gen), storeRepo, repo, st.ID
}

func TestCreateProduct_Success(t *testing.T) {
	svc, _, _, storeID := setupService(t, &fakeGenerator{})

	created, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{
		StoreID:    storeID,
		Name:       "Linen shirt",
		PriceCents: 4500,
		Stock:      12,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.Active)
	assert.False(t, created.AIGenerated)

	got, err := svc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestCreateProduct_UnknownStore(t *testing.T) {
	svc, _, repo, _ := setupService(t, &fakeGenerator{})
	unknown := uuid.New()

	_, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{
		StoreID:    unknown,
		Name:       "orphan",
		PriceCents: 100,
	})
	assert.ErrorIs(t, err, productpkg.ErrStoreNotFound)

	// nothing persisted
	list, err := repo.ListProductsByStore(context.Background(), unknown)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateProduct_NegativeValues(t *testing.T) {
	svc, _, repo, storeID := setupService(t, &fakeGenerator{})

	_, err := svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{
		StoreID: storeID, Name: "bad", PriceCents: -1,
	})
	assert.ErrorIs(t, err, productpkg.ErrInvalidPrice)

	_, err = svc.CreateProduct(context.Background(), productpkg.CreateProductRequest{
		StoreID: storeID, Name: "bad", PriceCents: 100, Stock: -5,
	})
	assert.ErrorIs(t, err, productpkg.ErrInvalidStock)

	list, err := repo.ListProductsByStore(context.Background(), storeID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func drafts(n int, cents int64) []ai.ProductDraft {
	out := make([]ai.ProductDraft, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ai.ProductDraft{
			Name:        "Item",
			Description: "desc",
			Category:    "fashion",
			PriceCents:  cents,
		})
	}
	return out
}

func TestGenerateProducts_Success(t *testing.T) {
	gen := &fakeGenerator{drafts: drafts(5, 2500)}
	svc, _, repo, storeID := setupService(t, gen)

	created, err := svc.GenerateProducts(context.Background(), productpkg.GenerateProductsRequest{
		StoreID:       storeID,
		Category:      "fashion",
		Count:         5,
		MinPriceCents: 500,
		MaxPriceCents: 5000,
	})
	require.NoError(t, err)
	require.Len(t, created, 5)
	assert.Equal(t, 1, gen.calls, "one upstream call per batch")

	persisted, err := repo.ListProductsByStore(context.Background(), storeID)
	require.NoError(t, err)
	require.Len(t, persisted, 5)
	for _, p := range persisted {
		assert.True(t, p.AIGenerated)
		assert.Equal(t, "fashion", p.Category)
		assert.GreaterOrEqual(t, p.PriceCents, int64(500))
		assert.LessOrEqual(t, p.PriceCents, int64(5000))
	}
}

func TestGenerateProducts_UpstreamFailurePersistsNothing(t *testing.T) {
	gen := &fakeGenerator{err: &ai.GenerationError{Stage: "parse", Err: errors.New("bad json")}}
	svc, _, repo, storeID := setupService(t, gen)

	_, err := svc.GenerateProducts(context.Background(), productpkg.GenerateProductsRequest{
		StoreID: storeID, Category: "fashion", Count: 5, MinPriceCents: 500, MaxPriceCents: 5000,
	})
	var genErr *ai.GenerationError
	require.ErrorAs(t, err, &genErr)

	list, err := repo.ListProductsByStore(context.Background(), storeID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGenerateProducts_UnknownStoreSkipsUpstream(t *testing.T) {
	gen := &fakeGenerator{drafts: drafts(3, 1000)}
	svc, _, _, _ := setupService(t, gen)

	_, err := svc.GenerateProducts(context.Background(), productpkg.GenerateProductsRequest{
		StoreID: uuid.New(), Category: "fashion", Count: 3, MinPriceCents: 500, MaxPriceCents: 5000,
	})
	assert.ErrorIs(t, err, productpkg.ErrStoreNotFound)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateProducts_MidBatchInsertFailureKeepsEarlierRows(t *testing.T) {
	storeRepo := storerepo.NewMemoryStoreRepo()
	inner := productrepo.NewMemoryProductRepo()
	repo := &failAfterRepo{Repository: inner, n: 3}
	st, err := storeRepo.CreateStore(context.Background(), &entity.Store{Name: "s"})
	require.NoError(t, err)

	svc := NewProductService(repo, storeRepo, &fakeGenerator{drafts: drafts(5, 1000)})
	created, err := svc.GenerateProducts(context.Background(), productpkg.GenerateProductsRequest{
		StoreID: st.ID, Category: "fashion", Count: 5, MinPriceCents: 500, MaxPriceCents: 5000,
	})
	require.Error(t, err)
	assert.Len(t, created, 3)

	persisted, lerr := inner.ListProductsByStore(context.Background(), st.ID)
	require.NoError(t, lerr)
	assert.Len(t, persisted, 3, "no rollback of earlier inserts")
}
