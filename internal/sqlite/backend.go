package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

// dbFileName is the SQLite query cache inside DataDir. It is recreated from
// teachers.jsonl on every Attach.
const dbFileName = "faculty.db"

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite as the query engine
// and a JSONL file as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	teachers *teachersTable

	syncStrategy string   // effective sync strategy: immediate or on_close
	pending      []string // operations whose JSONL write is deferred until Detach
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Teachers returns the Table holding Teacher records.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Teachers() (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.teachers, nil
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, builds a fresh SQLite schema and
// loads teachers.jsonl into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	config.DataDir = dataDir

	// The database is a cache of teachers.jsonl; start from an empty file.
	dbPath := filepath.Join(dataDir, dbFileName)
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale database: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps every statement on the same database handle.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}

	if err := ensureTeachersJSONL(dataDir); err != nil {
		db.Close()
		return err
	}

	loaded, err := loadTeachersJSONL(db, dataDir)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.syncStrategy = config.EffectiveSyncStrategy()
	b.pending = nil
	b.teachers = &teachersTable{backend: b}
	b.attached = true

	slog.Debug("store attached",
		"data_dir", dataDir,
		"sync_strategy", b.syncStrategy,
		"teachers", loaded)
	return nil
}

// Detach releases all resources held by the backend. Deferred writes are
// flushed before the database is closed. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if err := b.flushPendingLocked(); err != nil {
		return fmt.Errorf("flush pending writes: %w", err)
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.teachers = nil
	slog.Debug("store detached", "data_dir", b.config.DataDir)
	return nil
}

// flushPendingLocked rewrites teachers.jsonl once if any write was
// deferred. The caller must hold b.mu for writing.
func (b *Backend) flushPendingLocked() error {
	if len(b.pending) == 0 {
		return nil
	}
	if err := persistAllJSONL(b.db, b.config.DataDir); err != nil {
		return fmt.Errorf("flush %d deferred writes: %w", len(b.pending), err)
	}
	slog.Debug("flushed deferred writes", "count", len(b.pending))
	b.pending = nil
	return nil
}
