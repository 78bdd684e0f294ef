package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

// ProductValidator checks product requests before they reach the store.
type ProductValidator struct{}

// Validate checks nome then preco and stops at the first failure.
// On success it returns the product the request describes.
func (ProductValidator) Validate(req driving.ProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.NewRequiredParameter(domain.FieldName)
	}

	raw := strings.TrimSpace(req.Price)
	if raw == "" {
		return domain.Product{}, domain.NewRequiredParameter(domain.FieldPrice)
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.Product{}, domain.NewInvalidParameter(domain.FieldPrice, "not a decimal number")
	}
	if price.IsNegative() {
		return domain.Product{}, domain.NewInvalidParameter(domain.FieldPrice, "must not be negative")
	}

	return domain.Product{Name: name, Price: price}, nil
}
