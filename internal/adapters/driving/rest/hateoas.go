package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// Link is a single hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// Links maps relation names to links.
type Links map[string]Link

// Relation names.
const (
	relSelf     = "self"
	relFirst    = "first"
	relPrev     = "prev"
	relNext     = "next"
	relLast     = "last"
	relProduct  = "product"
	relLocation = "location"
)

// productModel is the wire form of a product.
type productModel struct {
	ID    int64       `json:"id"`
	Name  string      `json:"nome"`
	Price json.Number `json:"preco"`
	Links Links       `json:"_links,omitempty"`
}

// locationModel is the wire form of a location.
type locationModel struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Aisle   string        `json:"aisle"`
	Shelf   string        `json:"shelf"`
	Product *productModel `json:"product"`
	Links   Links         `json:"_links,omitempty"`
}

// pageMetadata describes the window a paged response covers.
type pageMetadata struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

// pagedModel is a page of items with navigation links.
type pagedModel[T any] struct {
	Embedded map[string][]T `json:"_embedded"`
	Links    Links          `json:"_links"`
	Page     pageMetadata   `json:"page"`
}

// linker builds absolute links for the host a request came in on.
type linker struct {
	base string
}

func newLinker(r *http.Request) linker {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return linker{base: scheme + "://" + r.Host}
}

func (l linker) href(format string, args ...any) Link {
	return Link{Href: l.base + fmt.Sprintf(format, args...)}
}

func (l linker) product(p domain.Product) productModel {
	return productModel{
		ID:    p.ID,
		Name:  p.Name,
		Price: json.Number(p.Price.String()),
		Links: Links{
			relSelf: l.href("/api/v1/produto/%d", p.ID),
		},
	}
}

// location renders loc with self pointing at selfPath, the route that
// produced it.
func (l linker) location(loc domain.Location, selfPath string) locationModel {
	m := locationModel{
		ID:    loc.ID,
		Name:  loc.Name,
		Aisle: loc.Aisle,
		Shelf: loc.Shelf,
		Links: Links{
			relSelf: l.href("%s", selfPath),
		},
	}
	if loc.Product != nil {
		product := l.product(*loc.Product)
		m.Product = &product
		m.Links[relProduct] = product.Links[relSelf]
	}
	if selfPath != locationPath(loc.ID) {
		m.Links[relLocation] = l.href("%s", locationPath(loc.ID))
	}
	return m
}

func locationPath(id int64) string {
	return "/api/v1/location/" + strconv.FormatInt(id, 10)
}

// pagedResponse wraps items with first/prev/next/last links for path.
func pagedResponse[T any, M any](l linker, path, rel string, p domain.Page[T], direction domain.Direction, render func(T) M) pagedModel[M] {
	items := make([]M, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, render(item))
	}

	at := func(n int) Link {
		q := url.Values{}
		q.Set("page", strconv.Itoa(n))
		q.Set("size", strconv.Itoa(p.Size))
		q.Set("direction", string(direction))
		return l.href("%s?%s", path, q.Encode())
	}

	links := Links{relSelf: at(p.Number)}
	if total := p.TotalPages(); total > 0 {
		links[relFirst] = at(0)
		links[relLast] = at(total - 1)
	}
	if p.HasPrevious() {
		links[relPrev] = at(p.Number - 1)
	}
	if p.HasNext() {
		links[relNext] = at(p.Number + 1)
	}

	return pagedModel[M]{
		Embedded: map[string][]M{rel: items},
		Links:    links,
		Page: pageMetadata{
			Size:          p.Size,
			TotalElements: p.TotalElements,
			TotalPages:    p.TotalPages(),
			Number:        p.Number,
		},
	}
}
