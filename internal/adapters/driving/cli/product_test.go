package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

func resetProductFlags() {
	productName = ""
	productPrice = ""
	productJSON = false
	productPage = pageFlags{size: domain.DefaultPageSize, direction: string(domain.DirectionAsc)}
}

func addTestProduct(t *testing.T, name, price string) *domain.Product {
	t.Helper()
	p, err := productService.Create(context.Background(), driving.ProductRequest{Name: name, Price: price})
	require.NoError(t, err)
	return p
}

func TestProductCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range productCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"list", "get", "add", "update", "remove"}, names)
}

func TestProductListCmd_PageFlags(t *testing.T) {
	flag := productListCmd.Flags().Lookup("size")
	require.NotNil(t, flag)
	assert.Equal(t, "12", flag.DefValue)
	assert.NotNil(t, productListCmd.Flags().Lookup("page"))
	assert.NotNil(t, productListCmd.Flags().Lookup("direction"))
}

func TestProductAdd_CreatesProduct(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProductFlags()

	buf, err := executeCommand("product", "add", "--nome", "Arroz 5kg", "--preco", "23.9")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Added [1] Arroz 5kg  R$ 23.90")

	stored, err := productService.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Arroz 5kg", stored.Name)
}

func TestProductAdd_MissingName(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProductFlags()

	_, err := executeCommand("product", "add", "--preco", "1.00")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "'nome'")
}

func TestProductList_OrdersAndPages(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProductFlags()
	addTestProduct(t, "Feijão", "8.50")
	addTestProduct(t, "Arroz", "23.90")
	addTestProduct(t, "Café", "15.00")

	buf, err := executeCommand("product", "list", "--size", "2")

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Arroz")
	assert.Contains(t, out, "Café")
	assert.NotContains(t, out, "Feijão")
	assert.Contains(t, out, "Page 1 of 2 (3 products)")
}

func TestProductList_Descending(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProductFlags()
	addTestProduct(t, "Arroz", "23.90")
	addTestProduct(t, "Feijão", "8.50")

	buf, err := executeCommand("product", "list", "--direction", "desc", "--size", "1")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Feijão")
	assert.NotContains(t, buf.String(), "Arroz")
}

func TestProductList_EmptyCatalogue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProductFlags()

	_, err := executeCommand("product", "list")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGet_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProductFlags()
	p := addTestProduct(t, "Lentilha", "14.20")

	buf, err := executeCommand("product", "get", "--json", "1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Contains(t, buf.String(), `"Name": "Lentilha"`)
	assert.Contains(t, buf.String(), `"14.2"`)
}

func TestProductGet_InvalidID(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("product", "get", "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGet_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("product", "get", "99")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Product not found :: 99")
}

func TestProductUpdate_ReplacesFields(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetProductFlags()
	addTestProduct(t, "Arroz", "20.00")

	buf, err := executeCommand("product", "update", "1", "--nome", "Arroz Integral", "--preco", "25.50")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Updated [1] Arroz Integral  R$ 25.50")
}

func TestProductRemove_DeletesProduct(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addTestProduct(t, "Arroz", "20.00")

	buf, err := executeCommand("product", "remove", "1")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Removed product 1")
	_, err = productService.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	productService = nil

	_, err := executeCommand("product", "get", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product service not configured")
}
