package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
)

// Ensure ProductStore implements the interface.
var _ driven.ProductStore = (*ProductStore)(nil)

// ProductStore is an in-memory implementation of driven.ProductStore.
type ProductStore struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

// NewProductStore creates a new in-memory product store.
func NewProductStore() *ProductStore {
	return &ProductStore{
		products: make(map[int64]domain.Product),
		nextID:   1,
	}
}

// Get retrieves a product by ID.
func (s *ProductStore) Get(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &product, nil
}

// List returns one page of products ordered by name.
func (s *ProductStore) List(_ context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	s.mu.RLock()
	result := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		result = append(result, product)
	}
	s.mu.RUnlock()

	return paginate(result, req,
		func(p domain.Product) string { return p.Name },
		func(p domain.Product) int64 { return p.ID },
	), nil
}

// Create stores a new product and assigns its ID.
func (s *ProductStore) Create(_ context.Context, product domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	product.ID = s.nextID
	product.CreatedAt = now
	product.UpdatedAt = now
	s.nextID++

	s.products[product.ID] = product
	return &product, nil
}

// Update overwrites the name and price of an existing product.
func (s *ProductStore) Update(_ context.Context, id int64, product domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	existing.Apply(product)
	existing.UpdatedAt = time.Now()

	s.products[id] = existing
	return &existing, nil
}

// Delete removes a product.
func (s *ProductStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
	return nil
}

// exists reports whether id is stored. Used by LocationStore to drop
// assignments to deleted products.
func (s *ProductStore) exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.products[id]
	return ok
}
