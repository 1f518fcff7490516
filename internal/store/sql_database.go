package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Schmolo/nhplus-umsetzung/internal/config"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// DB wraps the raw database handle together with the driver name and the
// squirrel statement builder configured for that driver's placeholder style
// ($1 for PostgreSQL, ? for SQLite).
type DB struct {
	*sql.DB
	driver string
	sb     sq.StatementBuilderType
	logger *logger.Logger
}

// NewConnect opens a connection to the configured database backend, pings it,
// and returns the wrapped handle.
//
// Supported drivers are "pgx" (PostgreSQL via the pgx stdlib adapter) and
// "sqlite3" (embedded SQLite, the backend the original desktop application
// ran on).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	var placeholder sq.PlaceholderFormat = sq.Question
	if cfg.Driver == "pgx" {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:     conn,
		driver: cfg.Driver,
		sb:     sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger: log,
	}, nil
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder returns the statement builder preconfigured with the driver's
// placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.sb
}

// isUniqueViolation reports whether err is a unique-constraint violation on
// either supported backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
