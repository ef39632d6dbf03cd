// Package localdb is the embedded persistence backend. It keeps the whole
// database as an in-memory SQLite image and persists it by serializing the
// image to a base64-encoded snapshot file after every mutation. The process
// owns its data file; no external database server is involved.
package localdb

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/logger"
)

func init() {
	sql.Register("sqlite3_localdb", &sqlite3.SQLiteDriver{})
}

// FileSlot stores one opaque payload under a fixed file path, base64-encoded.
type FileSlot struct {
	path string
}

// NewFileSlot creates a slot backed by the given file path.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Load reads and decodes the stored payload. A missing file yields (nil, nil).
func (s *FileSlot) Load() ([]byte, error) {
	encoded, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file: %w", err)
	}
	return data, nil
}

// Store encodes and writes the payload, creating parent directories as needed.
func (s *FileSlot) Store(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	if err := os.WriteFile(s.path, []byte(encoded), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}

// DB is an embedded database handle. A single connection backs the in-memory
// image so the serialized snapshot always sees every committed write.
type DB struct {
	mu   sync.Mutex
	conn *sql.DB
	slot *FileSlot
}

// Open creates the in-memory database, restoring the previous image from the
// snapshot slot when one exists and bootstrapping schema plus seed data
// otherwise.
func Open(ctx context.Context, slot *FileSlot) (*DB, error) {
	conn, err := sql.Open("sqlite3_localdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded database: %w", err)
	}
	// The in-memory image lives on exactly one connection. A second
	// connection would see a different empty database.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{conn: conn, slot: slot}

	snapshot, err := slot.Load()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if snapshot != nil {
		if err := db.restore(ctx, snapshot); err != nil {
			conn.Close()
			return nil, err
		}
		logger.Info().Int("bytes", len(snapshot)).Msg("Embedded database restored from snapshot")
		return db, nil
	}

	if err := db.bootstrap(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	logger.Info().Msg("Embedded database bootstrapped with schema and seed data")
	return db, nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Save serializes the current in-memory image into the snapshot slot. Every
// mutating store operation calls Save before returning.
func (db *DB) Save(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	var image []byte
	if err := db.raw(ctx, func(sc *sqlite3.SQLiteConn) error {
		b, err := sc.Serialize("")
		if err != nil {
			return fmt.Errorf("failed to serialize database image: %w", err)
		}
		image = b
		return nil
	}); err != nil {
		return err
	}
	return db.slot.Store(image)
}

func (db *DB) restore(ctx context.Context, snapshot []byte) error {
	return db.raw(ctx, func(sc *sqlite3.SQLiteConn) error {
		if err := sc.Deserialize(snapshot, ""); err != nil {
			return fmt.Errorf("failed to restore database image: %w", err)
		}
		return nil
	})
}

func (db *DB) raw(ctx context.Context, fn func(*sqlite3.SQLiteConn) error) error {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire database connection: %w", err)
	}
	defer conn.Close()

	return conn.Raw(func(driverConn interface{}) error {
		sc, ok := driverConn.(*sqlite3.SQLiteConn)
		if !ok {
			return errors.New("unexpected driver connection type")
		}
		return fn(sc)
	})
}

// Provider hands out a lazily opened shared DB. Initialization runs at most
// once; a failure is remembered and returned to every caller.
type Provider struct {
	once sync.Once
	slot *FileSlot
	db   *DB
	err  error
}

// NewProvider creates a provider around the given snapshot slot.
func NewProvider(slot *FileSlot) *Provider {
	return &Provider{slot: slot}
}

// Get returns the shared DB, opening it on first use.
func (p *Provider) Get(ctx context.Context) (*DB, error) {
	p.once.Do(func() {
		p.db, p.err = Open(ctx, p.slot)
		if p.err != nil {
			logger.Error().Err(p.err).Msg("Embedded database initialization failed")
			p.err = fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, p.err)
		}
	})
	return p.db, p.err
}
