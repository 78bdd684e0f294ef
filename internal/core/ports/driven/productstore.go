package driven

import (
	"context"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// ProductStore persists products.
type ProductStore interface {
	// Get retrieves a product by ID.
	// Returns domain.ErrNotFound if the product does not exist.
	Get(ctx context.Context, id int64) (*domain.Product, error)

	// List returns one page of products ordered by name.
	List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error)

	// Create stores a new product and returns it with its assigned ID.
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)

	// Update overwrites the mutable fields of an existing product.
	// Returns domain.ErrNotFound if the product does not exist.
	Update(ctx context.Context, id int64, product domain.Product) (*domain.Product, error)

	// Delete removes a product. Any location holding it becomes empty.
	Delete(ctx context.Context, id int64) error
}
