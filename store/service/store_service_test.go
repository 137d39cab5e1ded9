package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fatimadayan/Sooqbot/entity"
	storepkg "github.com/Fatimadayan/Sooqbot/store"
	storerepo "github.com/Fatimadayan/Sooqbot/store/repository"
)

func setupService(t *testing.T) storepkg.Service {
	t.Helper()
	return NewStoreService(storerepo.NewMemoryStoreRepo())
}

func TestCreateStore_Defaults(t *testing.T) {
	svc := setupService(t)

	created, err := svc.CreateStore(context.Background(), storepkg.CreateStoreRequest{Name: "  Dana's Candles  "})
	require.NoError(t, err)
	assert.Equal(t, "Dana's Candles", created.Name, "name is trimmed")
	assert.Equal(t, entity.TemplateClassic, created.Template)
	assert.True(t, created.Active)

	got, err := svc.GetStore(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestCreateStore_RequiresName(t *testing.T) {
	svc := setupService(t)

	_, err := svc.CreateStore(context.Background(), storepkg.CreateStoreRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestUpdateStore(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateStore(ctx, storepkg.CreateStoreRequest{Name: "before", Category: "crafts"})
	require.NoError(t, err)

	name := "after"
	inactive := false
	updated, err := svc.UpdateStore(ctx, created.ID, storepkg.UpdateStoreRequest{Name: &name, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	assert.False(t, updated.Active)
	assert.Equal(t, "crafts", updated.Category, "untouched field survives")
}

func TestUpdateStore_CustomDomain(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateStore(ctx, storepkg.CreateStoreRequest{Name: "candles"})
	require.NoError(t, err)

	domain := "candles.example.com"
	updated, err := svc.UpdateStore(ctx, created.ID, storepkg.UpdateStoreRequest{CustomDomain: &domain})
	require.NoError(t, err)
	require.NotNil(t, updated.CustomDomain)
	assert.Equal(t, domain, *updated.CustomDomain)

	empty := ""
	updated, err = svc.UpdateStore(ctx, created.ID, storepkg.UpdateStoreRequest{CustomDomain: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.CustomDomain, "empty string clears the domain")
}

func TestUpdateStore_MissingStore(t *testing.T) {
	svc := setupService(t)

	name := "x"
	_, err := svc.UpdateStore(context.Background(), uuid.New(), storepkg.UpdateStoreRequest{Name: &name})
	assert.ErrorIs(t, err, storepkg.ErrStoreNotFound)
}

func TestUpdateStore_EmptyPatchStillChecksExistence(t *testing.T) {
	svc := setupService(t)

	_, err := svc.UpdateStore(context.Background(), uuid.New(), storepkg.UpdateStoreRequest{})
	assert.ErrorIs(t, err, storepkg.ErrStoreNotFound)
}
