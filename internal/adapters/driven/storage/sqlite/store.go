package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driven"
)

// dbFile is the database file name within the data directory.
const dbFile = "mapmarket.db"

// Store is a unified SQLite-based storage that provides access to
// all store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.mapmarket/data/mapmarket.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".mapmarket", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)

	// WAL for concurrent readers; foreign_keys is per connection so it
	// goes in the DSN rather than a one-off PRAGMA.
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite admits one writer; a single connection keeps writers queued
	// in Go instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ProductStore returns a ProductStore interface backed by this store.
func (s *Store) ProductStore() driven.ProductStore {
	return &productStore{store: s}
}

// LocationStore returns a LocationStore interface backed by this store.
func (s *Store) LocationStore() driven.LocationStore {
	return &locationStore{store: s}
}

// UserStore returns a UserStore interface backed by this store.
func (s *Store) UserStore() driven.UserStore {
	return &userStore{store: s}
}

// migrate runs all pending migrations. Each migration and its version row
// are committed together.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_products.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Product Store ====================

// productStore implements driven.ProductStore.
type productStore struct {
	store *Store
}

var _ driven.ProductStore = (*productStore)(nil)

// Get retrieves a product by ID.
func (s *productStore) Get(ctx context.Context, id int64) (*domain.Product, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, price, created_at, updated_at
		FROM products WHERE id = ?
	`, id)
	return scanProduct(row)
}

// List returns one page of products ordered by name.
func (s *productStore) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	req = req.Normalise()

	var total int64
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("counting products: %w", err)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, price, created_at, updated_at
		FROM products
		ORDER BY name `+orderKeyword(req.Direction)+`, id ASC
		LIMIT ? OFFSET ?
	`, req.Size, req.Offset())
	if err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, req.Size)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return domain.Page[domain.Product]{}, err
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("iterating products: %w", err)
	}

	return domain.NewPage(products, req, total), nil
}

// Create stores a new product.
func (s *productStore) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := s.store.db.ExecContext(ctx, `
		INSERT INTO products (name, price, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, product.Name, product.Price.String(), product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting product: %w", translate(err))
	}

	product.ID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading product id: %w", err)
	}
	return &product, nil
}

// Update overwrites the name and price of an existing product.
func (s *productStore) Update(ctx context.Context, id int64, product domain.Product) (*domain.Product, error) {
	result, err := s.store.db.ExecContext(ctx, `
		UPDATE products SET name = ?, price = ?, updated_at = ?
		WHERE id = ?
	`, product.Name, product.Price.String(), time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", translate(err))
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes a product. The foreign key empties any location holding it.
func (s *productStore) Delete(ctx context.Context, id int64) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}

// ==================== Location Store ====================

// locationStore implements driven.LocationStore.
type locationStore struct {
	store *Store
}

var _ driven.LocationStore = (*locationStore)(nil)

// locationColumns selects a location joined with its product, if any.
const locationColumns = `
	SELECT l.id, l.name, l.aisle, l.shelf, l.updated_at,
		p.id, p.name, p.price, p.created_at, p.updated_at
	FROM locations l
	LEFT JOIN products p ON p.id = l.product_id
`

// Get retrieves a location by ID.
func (s *locationStore) Get(ctx context.Context, id int64) (*domain.Location, error) {
	row := s.store.db.QueryRowContext(ctx, locationColumns+" WHERE l.id = ?", id)
	return scanLocation(row)
}

// List returns one page of locations ordered by name.
func (s *locationStore) List(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Location], error) {
	req = req.Normalise()

	var total int64
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM locations").Scan(&total); err != nil {
		return domain.Page[domain.Location]{}, fmt.Errorf("counting locations: %w", err)
	}

	rows, err := s.store.db.QueryContext(ctx,
		locationColumns+" ORDER BY l.name "+orderKeyword(req.Direction)+", l.id ASC LIMIT ? OFFSET ?",
		req.Size, req.Offset())
	if err != nil {
		return domain.Page[domain.Location]{}, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, req.Size)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return domain.Page[domain.Location]{}, err
		}
		locations = append(locations, *location)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Location]{}, fmt.Errorf("iterating locations: %w", err)
	}

	return domain.NewPage(locations, req, total), nil
}

// GetByProductID retrieves the location holding a product.
func (s *locationStore) GetByProductID(ctx context.Context, productID int64) (*domain.Location, error) {
	row := s.store.db.QueryRowContext(ctx, locationColumns+" WHERE l.product_id = ?", productID)
	return scanLocation(row)
}

// Exists reports whether a location exists.
func (s *locationStore) Exists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "SELECT EXISTS(SELECT 1 FROM locations WHERE id = ?)", id)
}

// ProductAssigned reports whether any location holds the product.
func (s *locationStore) ProductAssigned(ctx context.Context, productID int64) (bool, error) {
	return s.exists(ctx, "SELECT EXISTS(SELECT 1 FROM locations WHERE product_id = ?)", productID)
}

// Occupied reports whether the location holds a product.
func (s *locationStore) Occupied(ctx context.Context, locationID int64) (bool, error) {
	return s.exists(ctx, "SELECT EXISTS(SELECT 1 FROM locations WHERE id = ? AND product_id IS NOT NULL)", locationID)
}

func (s *locationStore) exists(ctx context.Context, query string, arg int64) (bool, error) {
	var found bool
	if err := s.store.db.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		return false, fmt.Errorf("checking location: %w", err)
	}
	return found, nil
}

// AssignProduct stores location.Product as the held product. The UPDATE
// only matches an empty slot and the UNIQUE index on product_id rejects a
// product held elsewhere, so concurrent subscribes cannot both succeed.
func (s *locationStore) AssignProduct(ctx context.Context, location domain.Location) (*domain.Location, error) {
	if location.Product == nil {
		return nil, domain.ErrInvalidInput
	}

	result, err := s.store.db.ExecContext(ctx, `
		UPDATE locations SET product_id = ?, updated_at = ?
		WHERE id = ? AND product_id IS NULL
	`, location.Product.ID, time.Now().UTC(), location.ID)
	if err != nil {
		return nil, fmt.Errorf("assigning product: %w", translate(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("assigning product: %w", err)
	}
	if n == 0 {
		ok, err := s.Exists(ctx, location.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrAlreadyExists
	}

	return s.Get(ctx, location.ID)
}

// ClearProduct empties a location.
func (s *locationStore) ClearProduct(ctx context.Context, id int64) (*domain.Location, error) {
	result, err := s.store.db.ExecContext(ctx, `
		UPDATE locations SET product_id = NULL, updated_at = ?
		WHERE id = ?
	`, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("clearing location: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrNotFound
	}
	return s.Get(ctx, id)
}

// ==================== Helper Functions ====================

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*domain.Product, error) {
	var product domain.Product
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&product.ID, &product.Name, &product.Price, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning product: %w", err)
	}
	product.CreatedAt = createdAt.Time
	product.UpdatedAt = updatedAt.Time
	return &product, nil
}

func scanLocation(row scanner) (*domain.Location, error) {
	var location domain.Location
	var updatedAt sql.NullTime
	var productID sql.NullInt64
	var productName, productPrice sql.NullString
	var productCreated, productUpdated sql.NullTime

	if err := row.Scan(&location.ID, &location.Name, &location.Aisle, &location.Shelf, &updatedAt,
		&productID, &productName, &productPrice, &productCreated, &productUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning location: %w", err)
	}
	location.UpdatedAt = updatedAt.Time

	if productID.Valid {
		product := domain.Product{
			ID:        productID.Int64,
			Name:      productName.String,
			CreatedAt: productCreated.Time,
			UpdatedAt: productUpdated.Time,
		}
		if err := product.Price.Scan(productPrice.String); err != nil {
			return nil, fmt.Errorf("scanning product price: %w", err)
		}
		location.Assign(product)
	}

	return &location, nil
}

func orderKeyword(d domain.Direction) string {
	if d == domain.DirectionDesc {
		return "DESC"
	}
	return "ASC"
}

// translate maps constraint violations to domain errors.
func translate(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %v", domain.ErrAlreadyExists, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	default:
		return err
	}
}
