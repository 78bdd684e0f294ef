package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
	"github.com/mapmarket/mapmarket-api/internal/logger"
)

// Ensure LocationService implements the interface.
var _ driving.LocationService = (*LocationService)(nil)

// LocationService manages locations and the product each one holds.
// A product sits in at most one location and a location holds at most
// one product.
type LocationService struct {
	locations driven.LocationStore
	products  driven.ProductStore
}

// NewLocationService creates a new location service.
func NewLocationService(locations driven.LocationStore, products driven.ProductStore) *LocationService {
	return &LocationService{
		locations: locations,
		products:  products,
	}
}

// FindAll returns one page of locations.
func (s *LocationService) FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Location], error) {
	if s.locations == nil {
		return domain.Page[domain.Location]{}, domain.ErrNotImplemented
	}
	page, err := s.locations.List(ctx, req.Normalise())
	if err != nil {
		return domain.Page[domain.Location]{}, err
	}
	if page.IsEmpty() {
		return page, domain.NewNotFound(domain.LocationsNotFound)
	}
	return page, nil
}

// FindByID retrieves a location.
func (s *LocationService) FindByID(ctx context.Context, id int64) (*domain.Location, error) {
	if s.locations == nil {
		return nil, domain.ErrNotImplemented
	}
	location, err := s.locations.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, locationNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return location, nil
}

// FindByProductID retrieves the location holding a product.
func (s *LocationService) FindByProductID(ctx context.Context, productID int64) (*domain.Location, error) {
	if s.locations == nil {
		return nil, domain.ErrNotImplemented
	}
	location, err := s.locations.GetByProductID(ctx, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(domain.ProductInLocationMissing + strconv.FormatInt(productID, 10))
	}
	if err != nil {
		return nil, err
	}
	return location, nil
}

// SubscribeProduct places a product in an empty location.
//
// Conflicts are reported before existence: a product that is already
// placed yields a conflict even when the target location is unknown.
func (s *LocationService) SubscribeProduct(ctx context.Context, locationID, productID int64) (*domain.Location, error) {
	if s.locations == nil || s.products == nil {
		return nil, domain.ErrNotImplemented
	}

	assigned, err := s.locations.ProductAssigned(ctx, productID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, domain.NewConflict(domain.ProductAlreadyRegistered)
	}

	occupied, err := s.locations.Occupied(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, domain.NewConflict(domain.LocationAlreadyHolds + strconv.FormatInt(locationID, 10))
	}

	location, err := s.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.Get(ctx, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, productNotFound(productID)
	}
	if err != nil {
		return nil, err
	}

	location.Assign(*product)
	saved, err := s.locations.AssignProduct(ctx, *location)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		// Lost a race with a concurrent subscribe.
		return nil, domain.NewConflict(domain.ProductAlreadyRegistered)
	case errors.Is(err, domain.ErrNotFound):
		return nil, productNotFound(productID)
	case err != nil:
		return nil, err
	}

	logger.Debug("product %d subscribed to location %d", productID, locationID)
	return saved, nil
}

// UnsubscribeProduct empties a location.
func (s *LocationService) UnsubscribeProduct(ctx context.Context, locationID int64) (*domain.Location, error) {
	if s.locations == nil {
		return nil, domain.ErrNotImplemented
	}
	exists, err := s.locations.Exists(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, locationNotFound(locationID)
	}

	location, err := s.locations.ClearProduct(ctx, locationID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, locationNotFound(locationID)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("location %d emptied", locationID)
	return location, nil
}

func locationNotFound(id int64) error {
	return domain.NewNotFound(domain.LocationNotFound + strconv.FormatInt(id, 10))
}
