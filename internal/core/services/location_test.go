package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/storage/memory"
	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

type locationFixture struct {
	products  *memory.ProductStore
	locations *memory.LocationStore
	service   *LocationService
}

func newLocationFixture(t *testing.T) locationFixture {
	t.Helper()
	products := memory.NewProductStore()
	locations := memory.NewLocationStore(products, memory.SeedLocations()...)
	return locationFixture{
		products:  products,
		locations: locations,
		service:   NewLocationService(locations, products),
	}
}

func (f locationFixture) product(t *testing.T, name string) *domain.Product {
	t.Helper()
	created, err := NewProductService(f.products).Create(context.Background(), driving.ProductRequest{Name: name, Price: "1.00"})
	require.NoError(t, err)
	return created
}

func TestLocationService_FindByID(t *testing.T) {
	f := newLocationFixture(t)

	loc, err := f.service.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "A-01", loc.Name)

	_, err = f.service.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Location not found :: 404", err.Error())
}

func TestLocationService_FindAll(t *testing.T) {
	f := newLocationFixture(t)

	page, err := f.service.FindAll(context.Background(), domain.PageRequest{Size: 5})

	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, int64(12), page.TotalElements)
}

func TestLocationService_FindAll_Empty(t *testing.T) {
	products := memory.NewProductStore()
	service := NewLocationService(memory.NewLocationStore(products), products)

	_, err := service.FindAll(context.Background(), domain.PageRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Locations not found", err.Error())
}

func TestLocationService_Subscribe(t *testing.T) {
	f := newLocationFixture(t)
	ctx := context.Background()
	product := f.product(t, "Lentilha")

	loc, err := f.service.SubscribeProduct(ctx, 2, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loc.ID)
	require.NotNil(t, loc.Product)
	assert.Equal(t, product.ID, loc.Product.ID)

	found, err := f.service.FindByProductID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.ID)
}

func TestLocationService_Subscribe_ProductAlreadyPlaced(t *testing.T) {
	f := newLocationFixture(t)
	ctx := context.Background()
	product := f.product(t, "Arroz")
	_, err := f.service.SubscribeProduct(ctx, 1, product.ID)
	require.NoError(t, err)

	_, err = f.service.SubscribeProduct(ctx, 2, product.ID)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Equal(t, "This Product is already registered ", err.Error())

	loc, _ := f.service.FindByID(ctx, 2)
	assert.False(t, loc.HoldsProduct(), "second location must be unchanged")
}

func TestLocationService_Subscribe_SameLocationTwice(t *testing.T) {
	f := newLocationFixture(t)
	ctx := context.Background()
	product := f.product(t, "Arroz")
	_, err := f.service.SubscribeProduct(ctx, 1, product.ID)
	require.NoError(t, err)

	_, err = f.service.SubscribeProduct(ctx, 1, product.ID)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestLocationService_Subscribe_LocationOccupied(t *testing.T) {
	f := newLocationFixture(t)
	ctx := context.Background()
	first := f.product(t, "Arroz")
	second := f.product(t, "Feijão")
	_, err := f.service.SubscribeProduct(ctx, 1, first.ID)
	require.NoError(t, err)

	_, err = f.service.SubscribeProduct(ctx, 1, second.ID)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Equal(t, "This location already holds a product :: 1", err.Error())
}

func TestLocationService_Subscribe_ConflictBeforeExistence(t *testing.T) {
	f := newLocationFixture(t)
	ctx := context.Background()
	product := f.product(t, "Arroz")
	_, err := f.service.SubscribeProduct(ctx, 1, product.ID)
	require.NoError(t, err)

	_, err = f.service.SubscribeProduct(ctx, 999, product.ID)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestLocationService_Subscribe_CheckOrder(t *testing.T) {
	f := newLocationFixture(t)
	counting := &countingLocationStore{LocationStore: f.locations}
	service := NewLocationService(counting, f.products)
	product := f.product(t, "Arroz")

	_, err := service.SubscribeProduct(context.Background(), 1, product.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"ProductAssigned", "Occupied", "Get", "AssignProduct"}, counting.calls)
}

func TestLocationService_Subscribe_UnknownLocation(t *testing.T) {
	f := newLocationFixture(t)
	product := f.product(t, "Arroz")

	_, err := f.service.SubscribeProduct(context.Background(), 999, product.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Location not found :: 999", err.Error())
}

func TestLocationService_Subscribe_UnknownProduct(t *testing.T) {
	f := newLocationFixture(t)

	_, err := f.service.SubscribeProduct(context.Background(), 1, 777)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found :: 777", err.Error())
}

func TestLocationService_Subscribe_LostRace(t *testing.T) {
	f := newLocationFixture(t)
	product := f.product(t, "Arroz")
	service := NewLocationService(racingLocationStore{LocationStore: f.locations}, f.products)

	_, err := service.SubscribeProduct(context.Background(), 1, product.ID)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestLocationService_Unsubscribe(t *testing.T) {
	f := newLocationFixture(t)
	ctx := context.Background()
	product := f.product(t, "Arroz")
	_, err := f.service.SubscribeProduct(ctx, 1, product.ID)
	require.NoError(t, err)

	loc, err := f.service.UnsubscribeProduct(ctx, 1)
	require.NoError(t, err)
	assert.False(t, loc.HoldsProduct())

	_, err = f.service.FindByProductID(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "No location holds product :: 1", err.Error())

	// The product can be placed again once freed.
	_, err = f.service.SubscribeProduct(ctx, 2, product.ID)
	assert.NoError(t, err)
}

func TestLocationService_Unsubscribe_EmptyLocation(t *testing.T) {
	f := newLocationFixture(t)

	loc, err := f.service.UnsubscribeProduct(context.Background(), 3)

	require.NoError(t, err)
	assert.False(t, loc.HoldsProduct())
}

func TestLocationService_Unsubscribe_UnknownWritesNothing(t *testing.T) {
	f := newLocationFixture(t)
	counting := &countingLocationStore{LocationStore: f.locations}
	service := NewLocationService(counting, f.products)

	_, err := service.UnsubscribeProduct(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotContains(t, counting.calls, "ClearProduct")
}

func TestLocationService_Unsubscribe_ChecksExistenceOnly(t *testing.T) {
	f := newLocationFixture(t)
	counting := &countingLocationStore{LocationStore: f.locations}
	service := NewLocationService(counting, f.products)

	_, err := service.UnsubscribeProduct(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"Exists", "ClearProduct"}, counting.calls)
}

func TestLocationService_Unsubscribe_UnknownMessage(t *testing.T) {
	f := newLocationFixture(t)

	_, err := f.service.UnsubscribeProduct(context.Background(), 999)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Location not found :: 999", err.Error())
}

func TestLocationService_DeletedProductFreesLocation(t *testing.T) {
	f := newLocationFixture(t)
	ctx := context.Background()
	product := f.product(t, "Arroz")
	_, err := f.service.SubscribeProduct(ctx, 1, product.ID)
	require.NoError(t, err)

	require.NoError(t, NewProductService(f.products).Delete(ctx, product.ID))

	loc, err := f.service.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, loc.HoldsProduct())
}

func TestLocationService_NilStores(t *testing.T) {
	service := NewLocationService(nil, nil)

	_, err := service.SubscribeProduct(context.Background(), 1, 1)

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
