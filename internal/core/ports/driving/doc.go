// Package driving defines the interfaces that external actors use to call INTO core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The REST API, CLI and MCP server depend on these interfaces, and core
// services implement them.
//
// # Required Interfaces
//
//   - ProductService: Product CRUD
//   - LocationService: Location queries and product subscription
//   - AuthService: Sign-in, token refresh and request authentication
//   - SettingsService: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
