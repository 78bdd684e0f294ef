// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ProductStore: Product persistence
//   - LocationStore: Location persistence and product assignment
//   - UserStore: Account persistence for sign-in
//   - TokenIssuer: Signs and verifies access/refresh tokens
//   - PasswordHasher: Hashes and compares passwords
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
