package memory

import (
	"context"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

func newProduct(name, price string) domain.Product {
	return domain.Product{Name: name, Price: decimal.RequireFromString(price)}
}

func TestProductStore_Create_AssignsIDs(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	first, err := store.Create(ctx, newProduct("Lentilha", "14.20"))
	require.NoError(t, err)
	second, err := store.Create(ctx, newProduct("Arroz", "5.00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestProductStore_Get_NotFound(t *testing.T) {
	store := NewProductStore()

	product, err := store.Get(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, product)
}

func TestProductStore_Get_ReturnsCopy(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()
	created, _ := store.Create(ctx, newProduct("Feijão", "7.99"))

	created.Name = "changed"

	stored, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Feijão", stored.Name)
}

func TestProductStore_Update(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()
	created, _ := store.Create(ctx, newProduct("Old", "1.00"))

	updated, err := store.Update(ctx, created.ID, newProduct("New", "2.50"))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New", updated.Name)
	assert.True(t, decimal.RequireFromString("2.5").Equal(updated.Price))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestProductStore_Update_NotFound(t *testing.T) {
	store := NewProductStore()

	_, err := store.Update(context.Background(), 5, newProduct("X", "1"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductStore_Delete(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()
	created, _ := store.Create(ctx, newProduct("Sal", "2.00"))

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err := store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, store.Delete(ctx, created.ID))
}

func TestProductStore_List_SortsAndPaginates(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()
	for _, name := range []string{"Cebola", "Arroz", "Batata", "Alho", "Damasco"} {
		_, _ = store.Create(ctx, newProduct(name, "1.00"))
	}

	page, err := store.List(ctx, domain.PageRequest{Page: 0, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Alho", page.Items[0].Name)
	assert.Equal(t, "Arroz", page.Items[1].Name)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages())

	last, err := store.List(ctx, domain.PageRequest{Page: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, "Damasco", last.Items[0].Name)

	desc, err := store.List(ctx, domain.PageRequest{Size: 1, Direction: domain.DirectionDesc})
	require.NoError(t, err)
	assert.Equal(t, "Damasco", desc.Items[0].Name)
}

func TestProductStore_List_PastEnd(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()
	_, _ = store.Create(ctx, newProduct("Arroz", "1.00"))

	page, err := store.List(ctx, domain.PageRequest{Page: 4, Size: 12})

	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestProductStore_List_HugePageNumber(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()
	_, _ = store.Create(ctx, newProduct("Arroz", "1.00"))

	page, err := store.List(ctx, domain.PageRequest{Page: math.MaxInt/12 + 1, Size: 12})

	require.NoError(t, err)
	assert.True(t, page.IsEmpty())
	assert.Equal(t, math.MaxInt/12+1, page.Number)
}
