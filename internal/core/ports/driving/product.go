package driving

import (
	"context"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// ProductRequest carries the raw client values for creating or updating a product.
// Missing and blank values are both "".
type ProductRequest struct {
	Name  string
	Price string
}

// ProductService manages products.
type ProductService interface {
	// FindAll returns one page of products.
	// Returns domain.ErrNotFound if the page is empty.
	FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error)

	// FindByID retrieves a product.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create validates and stores a new product.
	Create(ctx context.Context, req ProductRequest) (*domain.Product, error)

	// Update validates and overwrites an existing product.
	Update(ctx context.Context, id int64, req ProductRequest) (*domain.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}
