package domain

import (
	"math"
	"strings"
)

// Pagination defaults.
const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Direction is the sort direction of a listing.
type Direction string

// Available sort directions.
const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// ParseDirection maps user input to a Direction, defaulting to ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(DirectionDesc)) {
		return DirectionDesc
	}
	return DirectionAsc
}

// PageRequest selects a window of a listing.
type PageRequest struct {
	// Page is the zero-based page number.
	Page int

	// Size is the number of items per page.
	Size int

	// Direction orders items by name.
	Direction Direction
}

// Normalise clamps the request into a valid range and fills defaults.
func (r PageRequest) Normalise() PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	if r.Direction != DirectionDesc {
		r.Direction = DirectionAsc
	}
	return r
}

// Offset returns the number of items to skip. Offsets that do not fit in
// an int saturate at math.MaxInt, which lies past the end of any listing.
func (r PageRequest) Offset() int {
	if r.Page <= 0 || r.Size <= 0 {
		return 0
	}
	if r.Page > math.MaxInt/r.Size {
		return math.MaxInt
	}
	return r.Page * r.Size
}

// Page is one window of a listing.
type Page[T any] struct {
	// Items holds the entries of this page.
	Items []T

	// Number is the zero-based page number.
	Number int

	// Size is the requested page size.
	Size int

	// TotalElements is the size of the whole listing.
	TotalElements int64
}

// NewPage builds a Page for the given request.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	return Page[T]{
		Items:         items,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
	}
}

// IsEmpty reports whether the page has no items.
func (p Page[T]) IsEmpty() bool {
	return len(p.Items) == 0
}

// TotalPages returns the number of pages in the whole listing.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 0
}
