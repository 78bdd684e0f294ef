package mcp

import (
	"context"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

// mockProductService is a mock implementation of driving.ProductService.
type mockProductService struct {
	page    domain.Page[domain.Product]
	product *domain.Product
	err     error
	lastReq driving.ProductRequest
}

func (m *mockProductService) FindAll(_ context.Context, _ domain.PageRequest) (domain.Page[domain.Product], error) {
	return m.page, m.err
}

func (m *mockProductService) FindByID(_ context.Context, _ int64) (*domain.Product, error) {
	return m.product, m.err
}

func (m *mockProductService) Create(_ context.Context, req driving.ProductRequest) (*domain.Product, error) {
	m.lastReq = req
	return m.product, m.err
}

func (m *mockProductService) Update(_ context.Context, _ int64, req driving.ProductRequest) (*domain.Product, error) {
	m.lastReq = req
	return m.product, m.err
}

func (m *mockProductService) Delete(_ context.Context, _ int64) error {
	return m.err
}

// mockLocationService is a mock implementation of driving.LocationService.
type mockLocationService struct {
	pages    []domain.Page[domain.Location]
	location *domain.Location
	err      error
	calls    int
}

func (m *mockLocationService) FindAll(_ context.Context, req domain.PageRequest) (domain.Page[domain.Location], error) {
	m.calls++
	if m.err != nil {
		return domain.Page[domain.Location]{}, m.err
	}
	if req.Page >= len(m.pages) {
		return domain.Page[domain.Location]{}, domain.NewNotFound(domain.LocationsNotFound)
	}
	return m.pages[req.Page], nil
}

func (m *mockLocationService) FindByID(_ context.Context, _ int64) (*domain.Location, error) {
	return m.location, m.err
}

func (m *mockLocationService) FindByProductID(_ context.Context, _ int64) (*domain.Location, error) {
	return m.location, m.err
}

func (m *mockLocationService) SubscribeProduct(_ context.Context, _, _ int64) (*domain.Location, error) {
	return m.location, m.err
}

func (m *mockLocationService) UnsubscribeProduct(_ context.Context, _ int64) (*domain.Location, error) {
	return m.location, m.err
}
