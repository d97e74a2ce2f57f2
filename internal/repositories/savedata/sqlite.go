package savedata

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-savedata/internal/entities/accessory"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/pkg/clock"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS unit_save_blocks (
	unit_id    TEXT PRIMARY KEY,
	block      BLOB NOT NULL,
	version    INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteConfig contains configuration for the SQLite save block repository
type SQLiteConfig struct {
	// Path is a database file path or ":memory:"
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// SQLiteRepository stores save blocks in a single SQLite table
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// Ensure SQLiteRepository implements Repository
var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database and creates the table if needed
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dsn := strings.TrimSpace(cfg.Path)
	if dsn != ":memory:" {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	// one connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite database")
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create save block table")
	}

	return &SQLiteRepository{db: db, clock: cfg.Clock}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get retrieves the save block for a unit
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UnitID == "" {
		return nil, errors.InvalidArgument(errUnitIDEmpty)
	}

	var (
		block     []byte
		version   int64
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT block, version, updated_at FROM unit_save_blocks WHERE unit_id = ?`,
		input.UnitID,
	).Scan(&block, &version, &updatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("save block for unit %s not found", input.UnitID).
			WithMeta("unit_id", input.UnitID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get save block for unit %s", input.UnitID)
	}

	return &GetOutput{Save: &SaveBlock{
		UnitID:    input.UnitID,
		Block:     block,
		Version:   accessory.SchemaVersion(version),
		UpdatedAt: time.UnixMilli(updatedAt).UTC(),
	}}, nil
}

// Put creates or replaces the save block for a unit
func (r *SQLiteRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	save := &SaveBlock{
		UnitID:    input.UnitID,
		Block:     append([]byte(nil), input.Block...),
		Version:   input.Version,
		UpdatedAt: r.clock.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO unit_save_blocks (unit_id, block, version, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(unit_id) DO UPDATE SET
		   block = excluded.block,
		   version = excluded.version,
		   updated_at = excluded.updated_at`,
		save.UnitID,
		save.Block,
		int64(save.Version),
		save.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store save block for unit %s", input.UnitID)
	}

	return &PutOutput{Save: save}, nil
}

// Delete removes the save block for a unit
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.UnitID == "" {
		return nil, errors.InvalidArgument(errUnitIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM unit_save_blocks WHERE unit_id = ?`, input.UnitID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save block for unit %s", input.UnitID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete save block for unit %s", input.UnitID)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("save block for unit %s not found", input.UnitID)
	}

	return &DeleteOutput{}, nil
}
