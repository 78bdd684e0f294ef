// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - ProductStore: Product persistence
//   - LocationStore: Locations and their held product
//   - UserStore: API accounts
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// The locations table is seeded with the default shelf layout.
//
// # Pairing Invariant
//
// locations.product_id is UNIQUE and references products(id) with
// ON DELETE SET NULL, so the database itself rejects a product placed twice
// and frees a location when its product is deleted.
//
// # Data Location
//
// By default, the database is stored at ~/.mapmarket/data/mapmarket.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
