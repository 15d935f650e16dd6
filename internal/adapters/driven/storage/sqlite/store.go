package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/keeperworks/itemvault/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/keeperworks/itemvault/internal/core/domain"
	"github.com/keeperworks/itemvault/internal/core/ports/driven"
	"github.com/keeperworks/itemvault/internal/logger"
)

// Store owns the SQLite connection handle for the item database.
// The handle is a process-lifetime singleton shared by every caller;
// writes are serialized through a single mutex.
type Store struct {
	mu      sync.Mutex
	db      *sql.DB
	dataDir string
	path    string
}

// NewStore creates an un-opened store rooted at dataDir.
// If dataDir is empty, defaults to ~/.itemvault/data.
// Call Open before any operation.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".itemvault", "data")
	}

	return &Store{
		dataDir: dataDir,
		path:    filepath.Join(dataDir, "items.db"),
	}, nil
}

// Open establishes the connection and runs pending migrations.
// A second Open on an open store is a no-op.
func (s *Store) Open(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	if err := os.MkdirAll(s.dataDir, 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// WAL mode for better concurrency, busy timeout so a second
	// logically-concurrent write waits instead of failing.
	db, err := sql.Open("sqlite", s.path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if err := migrate(db, migrations.FS); err != nil {
		db.Close()
		return fmt.Errorf("running migrations: %w", err)
	}

	s.db = db
	logger.Debug("opened item database at %s", s.path)
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Reopen cycles the connection to force a clean state reload.
// Used after a wholesale import.
func (s *Store) Reopen(ctx context.Context) error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return s.Open(ctx)
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// IsOpen reports whether the connection is established.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db != nil
}

// Items returns an ItemStore interface backed by this store.
func (s *Store) Items() driven.ItemStore {
	return &itemStore{store: s}
}

// conn returns the open handle or domain.ErrNotInitialized.
// Missing initialization is a caller bug surfaced immediately, never
// fixed up by a hidden lazy open.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, domain.ErrNotInitialized
	}
	return s.db, nil
}

// migrate runs all pending .up.sql migrations in version order.
func migrate(db *sql.DB, fsys embed.FS) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

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
		// Extract version number (e.g., "001_items.up.sql" -> 1)
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

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Item Store ====================

// itemStore implements driven.ItemStore.
type itemStore struct {
	store *Store
}

var (
	_ driven.ItemStore = (*itemStore)(nil)
	_ driven.Reopener  = (*itemStore)(nil)
)

// Reopen cycles the owning store's connection.
func (s *itemStore) Reopen(ctx context.Context) error {
	return s.store.Reopen(ctx)
}

// Create inserts an item and returns the engine-assigned id.
// Performs no validation; the UI boundary owns that.
func (s *itemStore) Create(ctx context.Context, title, description, imageURL string) (int64, error) {
	db, err := s.store.conn()
	if err != nil {
		return 0, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := time.Now().UTC()
	result, err := db.ExecContext(ctx, `
		INSERT INTO items (title, description, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, title, nullString(description), nullString(imageURL), now, now)
	if err != nil {
		logger.Error("creating item: %v", err)
		return 0, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrAssignmentUnknown, err)
	}
	if id == 0 {
		// Zero is indistinguishable from a legitimate id on some
		// engines; surface the ambiguity instead of a sentinel.
		return 0, domain.ErrAssignmentUnknown
	}

	return id, nil
}

// List returns all items, most recent first.
// The id tiebreak keeps same-second creates in insertion order.
func (s *itemStore) List(ctx context.Context) ([]domain.Item, error) {
	db, err := s.store.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, title, description, image_url, created_at, updated_at
		FROM items
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		logger.Error("querying items: %v", err)
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItemRows(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// Get retrieves an item by id.
func (s *itemStore) Get(ctx context.Context, id int64) (*domain.Item, error) {
	db, err := s.store.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT id, title, description, image_url, created_at, updated_at
		FROM items WHERE id = ?
	`, id)

	return scanItem(row)
}

// Update replaces the mutable fields wholesale.
// Zero rows affected is success; no existence check is performed.
func (s *itemStore) Update(ctx context.Context, id int64, title, description, imageURL string) error {
	db, err := s.store.conn()
	if err != nil {
		return err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	_, err = db.ExecContext(ctx, `
		UPDATE items
		SET title = ?, description = ?, image_url = ?, updated_at = ?
		WHERE id = ?
	`, title, nullString(description), nullString(imageURL), time.Now().UTC(), id)
	if err != nil {
		logger.Error("updating item %d: %v", id, err)
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// Delete removes an item. Absent ids succeed silently.
func (s *itemStore) Delete(ctx context.Context, id int64) error {
	db, err := s.store.conn()
	if err != nil {
		return err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, err := db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		logger.Error("deleting item %d: %v", id, err)
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// Snapshot reads the full table for export.
func (s *itemStore) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewSnapshot(items, time.Now().UTC()), nil
}

// Restore replaces all stored data with the snapshot contents in one
// transaction. Ids are preserved; sqlite_sequence advances past the
// highest restored id so later creates never reuse one.
func (s *itemStore) Restore(ctx context.Context, snap *domain.Snapshot) error {
	db, err := s.store.conn()
	if err != nil {
		return err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (id, title, description, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range snap.Items {
		if _, err := stmt.ExecContext(ctx, row.ID, row.Title,
			nullString(row.Description), nullString(row.ImageURL),
			row.CreatedAt.UTC(), row.UpdatedAt.UTC()); err != nil {
			return fmt.Errorf("restoring item %d: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	logger.Info("restored %d items", len(snap.Items))
	return nil
}

// ==================== Helper Functions ====================

// nullString maps empty strings to NULL for optional columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// scanItem scans a single item row.
func scanItem(row *sql.Row) (*domain.Item, error) {
	var item domain.Item
	var description, imageURL sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&item.ID, &item.Title, &description, &imageURL,
		&createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	item.Description = description.String
	item.ImageURL = imageURL.String
	if createdAt.Valid {
		item.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		item.UpdatedAt = updatedAt.Time
	}

	return &item, nil
}

// scanItemRows scans an item from *sql.Rows.
func scanItemRows(rows *sql.Rows) (*domain.Item, error) {
	var item domain.Item
	var description, imageURL sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := rows.Scan(&item.ID, &item.Title, &description, &imageURL,
		&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	item.Description = description.String
	item.ImageURL = imageURL.String
	if createdAt.Valid {
		item.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		item.UpdatedAt = updatedAt.Time
	}

	return &item, nil
}
