// Package domain defines the core business entities for MapMarket.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Product: A sellable item with a name and a decimal price
//   - Location: A physical slot that may hold at most one Product
//   - Page / PageRequest: Pagination of list results
//   - User / Token: Accounts and issued access tokens
//   - AppSettings: Runtime configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import the Go
// standard library and value-type libraries (shopspring/decimal).
// All other packages depend on domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal
//   - Cannot Import: Any internal/ package, any infrastructure dependency
package domain
