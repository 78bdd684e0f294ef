package domain

import "time"

// Location is a physical slot (warehouse aisle/shelf) that can hold
// at most one Product at a time.
type Location struct {
	// ID is the unique identifier for the location.
	ID int64

	// Name is the human-readable slot label (e.g. "A-01").
	Name string

	// Aisle identifies the aisle the slot belongs to.
	Aisle string

	// Shelf identifies the shelf within the aisle.
	Shelf string

	// Product is the product currently held; nil when the slot is empty.
	Product *Product

	// UpdatedAt is when the assignment last changed.
	UpdatedAt time.Time
}

// HoldsProduct reports whether the slot is occupied.
func (l *Location) HoldsProduct() bool {
	return l.Product != nil
}

// ProductID returns the id of the held product, or 0 when empty.
func (l *Location) ProductID() int64 {
	if l.Product == nil {
		return 0
	}
	return l.Product.ID
}

// Assign places product in the slot.
func (l *Location) Assign(product Product) {
	l.Product = &product
}

// Clear empties the slot.
func (l *Location) Clear() {
	l.Product = nil
}
