// Package database keeps the mood log, journal and finished breathing
// sessions for the lifetime of one program run. The store is SQLite opened
// in memory, so nothing survives the process.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/umeed/internal/config"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// MemoryDSN is an in-memory SQLite database private to its connection.
const MemoryDSN = ":memory:"

// Database wraps the SQL handle with domain methods.
type Database struct {
	DB     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Option customises a Database.
type Option func(*Database)

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Database) { d.logger = l }
}

// WithClock overrides the time source used for dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Database) { d.now = now }
}

// Open creates the in-memory store and its schema.
func Open(ctx context.Context, opts ...Option) (*Database, error) {
	sqlDB, err := sql.Open("sqlite3", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every connection to :memory: is its own database; keep exactly one.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	d := &Database{DB: sqlDB, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the handle and with it all stored data.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) today() string {
	return d.now().Format(config.DateLayout)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS mood_entries (
		date TEXT PRIMARY KEY,
		mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 10),
		stress INTEGER NOT NULL CHECK (stress BETWEEN 1 AND 10),
		energy INTEGER NOT NULL CHECK (energy BETWEEN 1 AND 10),
		notes TEXT,
		updated_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		content TEXT NOT NULL,
		mood TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS breathing_sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		preset_id TEXT NOT NULL,
		cycles INTEGER NOT NULL,
		seconds INTEGER NOT NULL,
		finished_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('counselor', 'mentor')),
		provider_id TEXT NOT NULL,
		provider_name TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		session_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'upcoming',
		concerns TEXT,
		created_at DATETIME NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_journal_created ON journal_entries(created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_slot ON appointments(provider_id, date, time);`,
}

func (d *Database) migrate(ctx context.Context) error {
	for _, q := range schema {
		if _, err := d.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// WithTx runs fn in a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.logger.Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
