package services

import (
	"context"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/storage/memory"
	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

func TestNewProductService(t *testing.T) {
	service := NewProductService(memory.NewProductStore())

	require.NotNil(t, service)
	assert.NotNil(t, service.store)
}

func TestProductService_Create_Lentilha(t *testing.T) {
	service := NewProductService(memory.NewProductStore())
	ctx := context.Background()

	created, err := service.Create(ctx, driving.ProductRequest{Name: "Lentilha", Price: "14.20"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Lentilha", created.Name)
	assert.True(t, decimal.RequireFromString("14.20").Equal(created.Price))

	found, err := service.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Lentilha", found.Name)
	assert.True(t, created.Price.Equal(found.Price))
}

func TestProductService_Create_ValidationStopsBeforeStore(t *testing.T) {
	store := &failingProductStore{ProductStore: memory.NewProductStore()}
	service := NewProductService(store)

	_, err := service.Create(context.Background(), driving.ProductRequest{Price: "1.00"})

	require.Error(t, err)
	assert.Equal(t, "Required parameter 'nome' is null or blank!", err.Error())
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "nome", vErr.Field)
	assert.Zero(t, store.writes)
}

func TestProductService_Create_StoreFailure(t *testing.T) {
	store := &failingProductStore{ProductStore: memory.NewProductStore(), createErr: errStoreDown}
	service := NewProductService(store)

	_, err := service.Create(context.Background(), driving.ProductRequest{Name: "Arroz", Price: "5"})

	assert.ErrorIs(t, err, domain.ErrCreationFailed)
	assert.ErrorIs(t, err, errStoreDown)
	assert.Equal(t, "Error creating product", err.Error())
}

func TestProductService_FindByID_NotFound(t *testing.T) {
	service := NewProductService(memory.NewProductStore())

	_, err := service.FindByID(context.Background(), 85)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found :: 85", err.Error())
}

func TestProductService_FindAll(t *testing.T) {
	service := NewProductService(memory.NewProductStore())
	ctx := context.Background()
	for _, name := range []string{"Cebola", "Arroz", "Batata"} {
		_, err := service.Create(ctx, driving.ProductRequest{Name: name, Price: "1"})
		require.NoError(t, err)
	}

	page, err := service.FindAll(ctx, domain.PageRequest{Size: 2})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Arroz", page.Items[0].Name)
	assert.Equal(t, int64(3), page.TotalElements)
}

func TestProductService_FindAll_Empty(t *testing.T) {
	service := NewProductService(memory.NewProductStore())

	_, err := service.FindAll(context.Background(), domain.PageRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Products not found", err.Error())
}

func TestProductService_FindAll_PageBeyondIntRange(t *testing.T) {
	service := NewProductService(memory.NewProductStore())
	ctx := context.Background()
	_, err := service.Create(ctx, driving.ProductRequest{Name: "Arroz", Price: "1"})
	require.NoError(t, err)

	_, err = service.FindAll(ctx, domain.PageRequest{Page: math.MaxInt/12 + 1, Size: 12})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_FindAll_StoreError(t *testing.T) {
	store := &failingProductStore{ProductStore: memory.NewProductStore(), listErr: errStoreDown}
	service := NewProductService(store)

	_, err := service.FindAll(context.Background(), domain.PageRequest{})

	assert.ErrorIs(t, err, errStoreDown)
}

func TestProductService_Update(t *testing.T) {
	service := NewProductService(memory.NewProductStore())
	ctx := context.Background()
	created, _ := service.Create(ctx, driving.ProductRequest{Name: "Arroz", Price: "5.00"})

	updated, err := service.Update(ctx, created.ID, driving.ProductRequest{Name: "Arroz Integral", Price: "6.50"})

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Arroz Integral", updated.Name)
	assert.True(t, decimal.RequireFromString("6.5").Equal(updated.Price))
}

func TestProductService_Update_NotFoundWritesNothing(t *testing.T) {
	store := &failingProductStore{ProductStore: memory.NewProductStore()}
	service := NewProductService(store)

	_, err := service.Update(context.Background(), 7, driving.ProductRequest{Name: "X", Price: "1"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found :: 7", err.Error())
	assert.Zero(t, store.writes)
}

func TestProductService_Update_ValidationFirst(t *testing.T) {
	service := NewProductService(memory.NewProductStore())

	_, err := service.Update(context.Background(), 7, driving.ProductRequest{Name: "X"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductService_Delete(t *testing.T) {
	service := NewProductService(memory.NewProductStore())
	ctx := context.Background()
	created, _ := service.Create(ctx, driving.ProductRequest{Name: "Sal", Price: "2"})

	require.NoError(t, service.Delete(ctx, created.ID))

	_, err := service.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_Delete_NotFoundWritesNothing(t *testing.T) {
	store := &failingProductStore{ProductStore: memory.NewProductStore()}
	service := NewProductService(store)

	err := service.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, store.writes)
}

func TestProductService_NilStore(t *testing.T) {
	service := NewProductService(nil)
	ctx := context.Background()

	_, err := service.FindByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = service.FindAll(ctx, domain.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = service.Create(ctx, driving.ProductRequest{Name: "A", Price: "1"})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
