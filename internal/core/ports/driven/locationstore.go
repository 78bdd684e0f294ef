package driven

import (
	"context"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// LocationStore persists locations and their product assignment.
type LocationStore interface {
	// Get retrieves a location by ID.
	// Returns domain.ErrNotFound if the location does not exist.
	Get(ctx context.Context, id int64) (*domain.Location, error)

	// List returns one page of locations ordered by name.
	List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Location], error)

	// GetByProductID retrieves the location currently holding a product.
	// Returns domain.ErrNotFound if no location holds it.
	GetByProductID(ctx context.Context, productID int64) (*domain.Location, error)

	// Exists reports whether a location with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ProductAssigned reports whether any location holds the product.
	ProductAssigned(ctx context.Context, productID int64) (bool, error)

	// Occupied reports whether the location holds a product.
	Occupied(ctx context.Context, locationID int64) (bool, error)

	// AssignProduct persists location.Product as the held product.
	// The store re-checks the one-to-one invariant atomically and returns
	// domain.ErrAlreadyExists if the location is occupied or the product
	// is held elsewhere by the time the write happens.
	AssignProduct(ctx context.Context, location domain.Location) (*domain.Location, error)

	// ClearProduct empties the location and returns it.
	// Returns domain.ErrNotFound if the location does not exist.
	ClearProduct(ctx context.Context, id int64) (*domain.Location, error)
}
