package mcp

import (
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Products manages the catalogue.
	Products driving.ProductService

	// Locations manages shelf slots and product placement.
	Locations driving.LocationService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Products == nil {
		return ErrMissingProductService
	}
	if p.Locations == nil {
		return ErrMissingLocationService
	}
	return nil
}
