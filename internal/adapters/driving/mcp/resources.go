package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for MapMarket resources.
	uriScheme = "mapmarket://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the shelf layout.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "locations",
		Name:        "locations",
		Description: "All shelf locations and the product each one holds",
		MIMEType:    "application/json",
	}, s.handleLocationsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "locations/{locationId}",
		Name:        "location",
		Description: "A single shelf location",
		MIMEType:    "application/json",
	}, s.handleLocationResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "products/{productId}",
		Name:        "product",
		Description: "A single product",
		MIMEType:    "application/json",
	}, s.handleProductResource)
}

// handleLocationsResource returns every location, walking all pages.
func (s *Server) handleLocationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var all []LocationOutput
	pageReq := domain.PageRequest{Size: domain.MaxPageSize}
	for {
		page, err := s.ports.Locations.FindAll(ctx, pageReq)
		if errors.Is(err, domain.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing locations: %w", err)
		}
		for i := range page.Items {
			all = append(all, locationOutput(page.Items[i]))
		}
		if !page.HasNext() {
			break
		}
		pageReq.Page++
	}
	if all == nil {
		all = []LocationOutput{}
	}
	return jsonResource(req.Params.URI, all)
}

// handleLocationResource returns one location.
func (s *Server) handleLocationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractID(req.Params.URI, "locations/")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	location, err := s.ports.Locations.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting location: %w", err)
	}
	return jsonResource(req.Params.URI, locationOutput(*location))
}

// handleProductResource returns one product.
func (s *Server) handleProductResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractID(req.Params.URI, "products/")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	product, err := s.ports.Products.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return jsonResource(req.Params.URI, productOutput(*product))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractID extracts the id from a URI like mapmarket://products/{id}.
func extractID(uri, collection string) (int64, bool) {
	prefix := uriScheme + collection
	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
