package rest

import (
	"net/http"
	"strconv"

	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

// productPayload is the request body for create and update.
type productPayload struct {
	Name  string     `json:"nome"`
	Price flexString `json:"preco"`
}

func (p productPayload) request() driving.ProductRequest {
	return driving.ProductRequest{Name: p.Name, Price: string(p.Price)}
}

func (a *App) listProducts(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	products, err := a.products.FindAll(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	l := newLinker(r)
	writeJSON(w, http.StatusOK, pagedResponse(l, "/api/v1/produto", "products", products, req.Direction, l.product))
}

func (a *App) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	product, err := a.products.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newLinker(r).product(*product))
}

func (a *App) createProduct(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}
	product, err := a.products.Create(r.Context(), payload.request())
	if err != nil {
		writeError(w, r, err)
		return
	}
	model := newLinker(r).product(*product)
	w.Header().Set("Location", "/api/v1/produto/"+strconv.FormatInt(product.ID, 10))
	writeJSON(w, http.StatusOK, model)
}

func (a *App) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var payload productPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}
	product, err := a.products.Update(r.Context(), id, payload.request())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newLinker(r).product(*product))
}

func (a *App) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.products.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
