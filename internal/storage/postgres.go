// Package storage owns the long-lived database handle used by the migration
// tool: it applies the embedded goose migrations and seeds operators.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/boffice/internal/common"
	"github.com/dmitrijs2005/boffice/internal/config"
	"github.com/dmitrijs2005/boffice/internal/cryptox"
	"github.com/dmitrijs2005/boffice/internal/dbx"
	"github.com/dmitrijs2005/boffice/internal/logging"
	"github.com/dmitrijs2005/boffice/internal/migrations"
	"github.com/dmitrijs2005/boffice/internal/operators"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresManager wraps a *sql.DB and vends PostgreSQL-backed repositories.
type PostgresManager struct {
	db     *sql.DB
	logger logging.Logger
}

// NewPostgresManager opens (lazily) a pgx-backed handle for dsn.
func NewPostgresManager(dsn string, logger logging.Logger) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return NewPostgresManagerWithDB(db, logger), nil
}

// NewPostgresManagerWithDB wraps an already opened handle.
func NewPostgresManagerWithDB(db *sql.DB, logger logging.Logger) *PostgresManager {
	return &PostgresManager{db: db, logger: logger}
}

// Conn returns the underlying handle.
func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

// Operators returns an operators.Repository bound to the provided DBTX.
func (m *PostgresManager) Operators(db dbx.DBTX) operators.Repository {
	return operators.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and applies the
// pending ones.
func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	m.logger.Info(ctx, "migrations applied")
	return nil
}

// SeedOperator creates the operator described by seed, or updates it when the
// username already exists, inside a single transaction.
func (m *PostgresManager) SeedOperator(ctx context.Context, seed *config.SeedConfig) (*operators.Operator, error) {
	if seed.Username == "" {
		return nil, common.ErrorEmptyUsername
	}
	if seed.Password == "" {
		return nil, common.ErrorEmptyPassword
	}

	password := []byte(seed.Password)
	defer common.WipeByteArray(password)

	op := &operators.Operator{
		Username:     seed.Username,
		FirstName:    seed.FirstName,
		LastName:     seed.LastName,
		Email:        seed.Email,
		PasswordHash: cryptox.HashPassword(password),
	}

	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		op, err = m.Operators(tx).Upsert(ctx, op)
		return err
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info(ctx, "operator seeded", "username", op.Username, "id", op.ID)
	return op, nil
}

// Close closes the underlying handle.
func (m *PostgresManager) Close() error {
	return m.db.Close()
}
