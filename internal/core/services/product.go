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

// Ensure ProductService implements the interface.
var _ driving.ProductService = (*ProductService)(nil)

// ProductService manages products.
type ProductService struct {
	store     driven.ProductStore
	validator ProductValidator
}

// NewProductService creates a new product service.
func NewProductService(store driven.ProductStore) *ProductService {
	return &ProductService{store: store}
}

// FindAll returns one page of products.
func (s *ProductService) FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	if s.store == nil {
		return domain.Page[domain.Product]{}, domain.ErrNotImplemented
	}
	page, err := s.store.List(ctx, req.Normalise())
	if err != nil {
		return domain.Page[domain.Product]{}, err
	}
	if page.IsEmpty() {
		return page, domain.NewNotFound(domain.ProductsNotFound)
	}
	return page, nil
}

// FindByID retrieves a product.
func (s *ProductService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	product, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, productNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Create validates and stores a new product.
func (s *ProductService) Create(ctx context.Context, req driving.ProductRequest) (*domain.Product, error) {
	product, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	created, err := s.store.Create(ctx, product)
	if err != nil {
		logger.Warn("create product %q: %v", product.Name, err)
		return nil, domain.NewCreationError(domain.ErrorCreatingProduct, err)
	}
	logger.Debug("created product %d (%s)", created.ID, created.Name)
	return created, nil
}

// Update validates the request and overwrites an existing product.
func (s *ProductService) Update(ctx context.Context, id int64, req driving.ProductRequest) (*domain.Product, error) {
	product, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Apply(product)

	updated, err := s.store.Update(ctx, id, *existing)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, productNotFound(id)
	}
	return updated, err
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.Debug("deleted product %d", id)
	return nil
}

func productNotFound(id int64) error {
	return domain.NewNotFound(domain.ProductNotFound + strconv.FormatInt(id, 10))
}
