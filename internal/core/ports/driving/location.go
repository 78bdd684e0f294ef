package driving

import (
	"context"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// LocationService manages locations and which product each one holds.
type LocationService interface {
	// FindAll returns one page of locations.
	// Returns domain.ErrNotFound if the page is empty.
	FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Location], error)

	// FindByID retrieves a location.
	FindByID(ctx context.Context, id int64) (*domain.Location, error)

	// FindByProductID retrieves the location holding a product.
	FindByProductID(ctx context.Context, productID int64) (*domain.Location, error)

	// SubscribeProduct places a product in an empty location.
	// Returns domain.ErrAlreadyExists if either side is already paired.
	SubscribeProduct(ctx context.Context, locationID, productID int64) (*domain.Location, error)

	// UnsubscribeProduct empties a location.
	UnsubscribeProduct(ctx context.Context, locationID int64) (*domain.Location, error)
}
