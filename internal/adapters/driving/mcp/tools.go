package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

// PageInput selects a window of a listing.
type PageInput struct {
	Page      int    `json:"page,omitempty" jsonschema:"zero-based page number"`
	Size      int    `json:"size,omitempty" jsonschema:"items per page (default 12, max 100)"`
	Direction string `json:"direction,omitempty" jsonschema:"sort direction by name: asc or desc"`
}

func (p PageInput) request() domain.PageRequest {
	return domain.PageRequest{
		Page:      p.Page,
		Size:      p.Size,
		Direction: domain.ParseDirection(p.Direction),
	}.Normalise()
}

// ProductIDInput identifies a product.
type ProductIDInput struct {
	ID int64 `json:"id" jsonschema:"product id"`
}

// ProductInput is the input schema for create_product.
type ProductInput struct {
	Name  string `json:"nome" jsonschema:"product name"`
	Price string `json:"preco" jsonschema:"non-negative decimal price, e.g. 14.20"`
}

// UpdateProductInput is the input schema for update_product.
type UpdateProductInput struct {
	ID    int64  `json:"id" jsonschema:"product id"`
	Name  string `json:"nome" jsonschema:"new product name"`
	Price string `json:"preco" jsonschema:"new non-negative decimal price"`
}

// LocationIDInput identifies a location.
type LocationIDInput struct {
	LocationID int64 `json:"location_id" jsonschema:"location id"`
}

// PlacementInput pairs a location with a product.
type PlacementInput struct {
	LocationID int64 `json:"location_id" jsonschema:"location id"`
	ProductID  int64 `json:"product_id" jsonschema:"product id"`
}

// ProductOutput is the output form of a product.
type ProductOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Price string `json:"preco"`
}

// LocationOutput is the output form of a location.
type LocationOutput struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Aisle   string         `json:"aisle"`
	Shelf   string         `json:"shelf"`
	Product *ProductOutput `json:"product,omitempty"`
}

// PageOutput describes the window a listing covers.
type PageOutput struct {
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"total_pages"`
	TotalElements int64 `json:"total_elements"`
}

// ProductListOutput is the output schema for list_products.
type ProductListOutput struct {
	Products []ProductOutput `json:"products"`
	Page     PageOutput      `json:"page"`
}

// LocationListOutput is the output schema for list_locations.
type LocationListOutput struct {
	Locations []LocationOutput `json:"locations"`
	Page      PageOutput       `json:"page"`
}

// DeleteOutput confirms a deletion.
type DeleteOutput struct {
	Deleted bool  `json:"deleted"`
	ID      int64 `json:"id"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_products",
		Description: "List products ordered by name",
	}, s.handleListProducts)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_product",
		Description: "Get a product by id",
	}, s.handleGetProduct)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_product",
		Description: "Create a product with a name and a price",
	}, s.handleCreateProduct)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_product",
		Description: "Replace the name and price of a product",
	}, s.handleUpdateProduct)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_product",
		Description: "Delete a product, freeing any location holding it",
	}, s.handleDeleteProduct)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_locations",
		Description: "List shelf locations and what they hold",
	}, s.handleListLocations)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_product_location",
		Description: "Find the location holding a product",
	}, s.handleFindProductLocation)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "subscribe_product",
		Description: "Place a product in an empty location. A product can only be in one location.",
	}, s.handleSubscribeProduct)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "unsubscribe_product",
		Description: "Remove the product from a location",
	}, s.handleUnsubscribeProduct)
}

func (s *Server) handleListProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, ProductListOutput, error) {
	page, err := s.ports.Products.FindAll(ctx, input.request())
	if err != nil {
		return nil, ProductListOutput{}, err
	}

	output := ProductListOutput{
		Products: make([]ProductOutput, len(page.Items)),
		Page:     pageOutput(page.Number, page.Size, page.TotalPages(), page.TotalElements),
	}
	for i := range page.Items {
		output.Products[i] = productOutput(page.Items[i])
	}
	return nil, output, nil
}

func (s *Server) handleGetProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductIDInput,
) (*mcp.CallToolResult, ProductOutput, error) {
	product, err := s.ports.Products.FindByID(ctx, input.ID)
	if err != nil {
		return nil, ProductOutput{}, err
	}
	return nil, productOutput(*product), nil
}

func (s *Server) handleCreateProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductInput,
) (*mcp.CallToolResult, ProductOutput, error) {
	product, err := s.ports.Products.Create(ctx, driving.ProductRequest{Name: input.Name, Price: input.Price})
	if err != nil {
		return nil, ProductOutput{}, err
	}
	return nil, productOutput(*product), nil
}

func (s *Server) handleUpdateProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateProductInput,
) (*mcp.CallToolResult, ProductOutput, error) {
	product, err := s.ports.Products.Update(ctx, input.ID, driving.ProductRequest{Name: input.Name, Price: input.Price})
	if err != nil {
		return nil, ProductOutput{}, err
	}
	return nil, productOutput(*product), nil
}

func (s *Server) handleDeleteProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductIDInput,
) (*mcp.CallToolResult, DeleteOutput, error) {
	if err := s.ports.Products.Delete(ctx, input.ID); err != nil {
		return nil, DeleteOutput{}, err
	}
	return nil, DeleteOutput{Deleted: true, ID: input.ID}, nil
}

func (s *Server) handleListLocations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, LocationListOutput, error) {
	page, err := s.ports.Locations.FindAll(ctx, input.request())
	if err != nil {
		return nil, LocationListOutput{}, err
	}

	output := LocationListOutput{
		Locations: make([]LocationOutput, len(page.Items)),
		Page:      pageOutput(page.Number, page.Size, page.TotalPages(), page.TotalElements),
	}
	for i := range page.Items {
		output.Locations[i] = locationOutput(page.Items[i])
	}
	return nil, output, nil
}

func (s *Server) handleFindProductLocation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProductIDInput,
) (*mcp.CallToolResult, LocationOutput, error) {
	location, err := s.ports.Locations.FindByProductID(ctx, input.ID)
	if err != nil {
		return nil, LocationOutput{}, err
	}
	return nil, locationOutput(*location), nil
}

func (s *Server) handleSubscribeProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PlacementInput,
) (*mcp.CallToolResult, LocationOutput, error) {
	location, err := s.ports.Locations.SubscribeProduct(ctx, input.LocationID, input.ProductID)
	if err != nil {
		return nil, LocationOutput{}, err
	}
	return nil, locationOutput(*location), nil
}

func (s *Server) handleUnsubscribeProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LocationIDInput,
) (*mcp.CallToolResult, LocationOutput, error) {
	location, err := s.ports.Locations.UnsubscribeProduct(ctx, input.LocationID)
	if err != nil {
		return nil, LocationOutput{}, err
	}
	return nil, locationOutput(*location), nil
}

func productOutput(p domain.Product) ProductOutput {
	return ProductOutput{ID: p.ID, Name: p.Name, Price: p.Price.String()}
}

func locationOutput(l domain.Location) LocationOutput {
	out := LocationOutput{ID: l.ID, Name: l.Name, Aisle: l.Aisle, Shelf: l.Shelf}
	if l.Product != nil {
		p := productOutput(*l.Product)
		out.Product = &p
	}
	return out
}

func pageOutput(number, size, totalPages int, total int64) PageOutput {
	return PageOutput{Number: number, Size: size, TotalPages: totalPages, TotalElements: total}
}
