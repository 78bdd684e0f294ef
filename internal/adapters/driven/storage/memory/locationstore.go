package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
)

// Ensure LocationStore implements the interface.
var _ driven.LocationStore = (*LocationStore)(nil)

// slot is a stored location. Only the product id is kept; product data is
// read from the ProductStore so updates and deletes are visible here.
type slot struct {
	location  domain.Location
	productID int64
}

// LocationStore is an in-memory implementation of driven.LocationStore.
type LocationStore struct {
	mu       sync.RWMutex
	slots    map[int64]slot
	products *ProductStore
}

// NewLocationStore creates a location store backed by products and
// pre-populated with seed. Seed products are ignored; locations start empty.
func NewLocationStore(products *ProductStore, seed ...domain.Location) *LocationStore {
	s := &LocationStore{
		slots:    make(map[int64]slot, len(seed)),
		products: products,
	}
	for _, loc := range seed {
		loc.Product = nil
		s.slots[loc.ID] = slot{location: loc}
	}
	return s
}

// SeedLocations returns the shelf layout every new database starts with.
func SeedLocations() []domain.Location {
	aisles := []string{"A", "B", "C"}
	shelves := []string{"01", "02", "03", "04"}

	result := make([]domain.Location, 0, len(aisles)*len(shelves))
	var id int64
	for _, aisle := range aisles {
		for _, shelf := range shelves {
			id++
			result = append(result, domain.Location{
				ID:    id,
				Name:  aisle + "-" + shelf,
				Aisle: aisle,
				Shelf: shelf,
			})
		}
	}
	return result
}

// Get retrieves a location by ID.
func (s *LocationStore) Get(ctx context.Context, id int64) (*domain.Location, error) {
	s.mu.RLock()
	sl, ok := s.slots[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.resolve(ctx, sl), nil
}

// List returns one page of locations ordered by name.
func (s *LocationStore) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Location], error) {
	s.mu.RLock()
	snapshot := make([]slot, 0, len(s.slots))
	for _, sl := range s.slots {
		snapshot = append(snapshot, sl)
	}
	s.mu.RUnlock()

	result := make([]domain.Location, 0, len(snapshot))
	for _, sl := range snapshot {
		result = append(result, *s.resolve(ctx, sl))
	}

	return paginate(result, req,
		func(l domain.Location) string { return l.Name },
		func(l domain.Location) int64 { return l.ID },
	), nil
}

// GetByProductID retrieves the location holding a product.
func (s *LocationStore) GetByProductID(ctx context.Context, productID int64) (*domain.Location, error) {
	s.mu.RLock()
	sl, ok := s.findByProduct(productID)
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.resolve(ctx, sl), nil
}

// Exists reports whether a location exists.
func (s *LocationStore) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.slots[id]
	return ok, nil
}

// ProductAssigned reports whether any location holds the product.
func (s *LocationStore) ProductAssigned(_ context.Context, productID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.findByProduct(productID)
	return ok, nil
}

// Occupied reports whether the location holds a product.
func (s *LocationStore) Occupied(_ context.Context, locationID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sl, ok := s.slots[locationID]
	if !ok {
		return false, nil
	}
	return s.held(sl), nil
}

// AssignProduct stores location.Product as the held product. The pairing
// invariant is re-checked under the write lock.
func (s *LocationStore) AssignProduct(ctx context.Context, location domain.Location) (*domain.Location, error) {
	if location.Product == nil {
		return nil, domain.ErrInvalidInput
	}
	productID := location.Product.ID
	if !s.products.exists(productID) {
		return nil, domain.ErrNotFound
	}

	s.mu.Lock()
	sl, ok := s.slots[location.ID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if s.held(sl) {
		s.mu.Unlock()
		return nil, domain.ErrAlreadyExists
	}
	if _, taken := s.findByProduct(productID); taken {
		s.mu.Unlock()
		return nil, domain.ErrAlreadyExists
	}
	sl.productID = productID
	sl.location.UpdatedAt = time.Now()
	s.slots[location.ID] = sl
	s.mu.Unlock()

	return s.resolve(ctx, sl), nil
}

// ClearProduct empties a location.
func (s *LocationStore) ClearProduct(ctx context.Context, id int64) (*domain.Location, error) {
	s.mu.Lock()
	sl, ok := s.slots[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	sl.productID = 0
	sl.location.UpdatedAt = time.Now()
	s.slots[id] = sl
	s.mu.Unlock()

	return s.resolve(ctx, sl), nil
}

// held reports whether sl points at a product that still exists.
func (s *LocationStore) held(sl slot) bool {
	return sl.productID != 0 && s.products.exists(sl.productID)
}

// findByProduct must be called with s.mu held.
func (s *LocationStore) findByProduct(productID int64) (slot, bool) {
	if productID == 0 {
		return slot{}, false
	}
	for _, sl := range s.slots {
		if sl.productID == productID && s.held(sl) {
			return sl, true
		}
	}
	return slot{}, false
}

// resolve builds the domain value, attaching the current product data.
func (s *LocationStore) resolve(ctx context.Context, sl slot) *domain.Location {
	loc := sl.location
	loc.Product = nil
	if sl.productID != 0 {
		if product, err := s.products.Get(ctx, sl.productID); err == nil {
			loc.Assign(*product)
		}
	}
	return &loc
}
