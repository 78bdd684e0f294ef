// Package mcp provides an MCP (Model Context Protocol) server adapter for MapMarket.
// It lets AI assistants browse the catalogue and place products in locations.
package mcp

import "errors"

// ErrMissingProductService is returned when the product service is not provided.
var ErrMissingProductService = errors.New("mcp: product service is required")

// ErrMissingLocationService is returned when the location service is not provided.
var ErrMissingLocationService = errors.New("mcp: location service is required")
