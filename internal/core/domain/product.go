package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item with a name and a price.
type Product struct {
	// ID is assigned by the store on creation.
	ID int64

	// Name is the non-blank display name.
	Name string

	// Price is a non-negative decimal amount.
	Price decimal.Decimal

	// CreatedAt is when the product was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the product was last written.
	UpdatedAt time.Time
}

// Apply overwrites the mutable fields with those of other, keeping identity.
func (p *Product) Apply(other Product) {
	p.Name = other.Name
	p.Price = other.Price
}
