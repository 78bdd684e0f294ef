package memory

import (
	"sort"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// paginate sorts items by key, honouring the request direction, and
// returns the requested window. Ties are broken by id so pages are stable.
func paginate[T any](items []T, req domain.PageRequest, key func(T) string, id func(T) int64) domain.Page[T] {
	req = req.Normalise()

	sort.SliceStable(items, func(i, j int) bool {
		ki, kj := key(items[i]), key(items[j])
		if ki == kj {
			return id(items[i]) < id(items[j])
		}
		if req.Direction == domain.DirectionDesc {
			return ki > kj
		}
		return ki < kj
	})

	total := int64(len(items))
	start := req.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := len(items)
	if req.Size < end-start {
		end = start + req.Size
	}

	window := make([]T, end-start)
	copy(window, items[start:end])
	return domain.NewPage(window, req, total)
}
