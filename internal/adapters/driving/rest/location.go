package rest

import (
	"fmt"
	"net/http"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

func (a *App) listLocations(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	locations, err := a.locations.FindAll(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	l := newLinker(r)
	render := func(loc domain.Location) locationModel {
		return l.location(loc, locationPath(loc.ID))
	}
	writeJSON(w, http.StatusOK, pagedResponse(l, "/api/v1/location", "locations", locations, req.Direction, render))
}

func (a *App) getLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	location, err := a.locations.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newLinker(r).location(*location, locationPath(id)))
}

func (a *App) getLocationByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	location, err := a.locations.FindByProductID(r.Context(), productID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	self := fmt.Sprintf("/api/v1/location/product/%d", productID)
	writeJSON(w, http.StatusOK, newLinker(r).location(*location, self))
}

func (a *App) subscribeProduct(w http.ResponseWriter, r *http.Request) {
	locationID, err := pathID(r, "locationId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	location, err := a.locations.SubscribeProduct(r.Context(), locationID, productID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	self := fmt.Sprintf("/api/v1/location/%d/product/%d", locationID, productID)
	writeJSON(w, http.StatusOK, newLinker(r).location(*location, self))
}

func (a *App) unsubscribeProduct(w http.ResponseWriter, r *http.Request) {
	locationID, err := pathID(r, "locationId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	location, err := a.locations.UnsubscribeProduct(r.Context(), locationID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	self := fmt.Sprintf("/api/v1/location/%d/product", locationID)
	writeJSON(w, http.StatusOK, newLinker(r).location(*location, self))
}
