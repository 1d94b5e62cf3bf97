package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"planner/internal/logger"
	"planner/internal/repository"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Config struct {
	ConnString      string
	MaxConns        int32
	MinConns        int32
	MaxConnIdleTime time.Duration
}

type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg Config) (*Storage, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	if cfg.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	logger.Info("Repository: connected to PostgreSQL")
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
	logger.Info("Repository: closed all PostgreSQL connections")
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Migrate applies the embedded migrations through golang-migrate.
func (s *Storage) Migrate() error {
	m, db, err := s.migrator()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("Repository: migrations applied")
	return nil
}

// Down rolls every migration back. Used by tests and operator tooling.
func (s *Storage) Down() error {
	m, db, err := s.migrator()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback migrations: %w", err)
	}
	logger.Info("Repository: migrations rolled back")
	return nil
}

func (s *Storage) migrator() (*migrate.Migrate, *sql.DB, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("load embedded migrations: %w", err)
	}

	db := stdlib.OpenDBFromPool(s.pool)
	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "planner", driver)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrator: %w", err)
	}
	return m, db, nil
}

// translateError maps driver errors onto the repository taxonomy.
// SQLSTATE 23505 is unique_violation, 23503 foreign_key_violation.
func translateError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, repository.ErrUniqueViolation)
		case "23503":
			return fmt.Errorf("%s: %w", op, repository.ErrForeignKeyViolation)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// updateBuilder accumulates SET clauses for partial updates. Values are
// always bound; only column names and a literal NULL ever reach the
// query text.
type updateBuilder struct {
	sets []string
	args []any
}

func (b *updateBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) setNull(column string) {
	b.sets = append(b.sets, column+" = NULL")
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

// bind appends a trailing argument (typically the WHERE id) and returns
// its placeholder number.
func (b *updateBuilder) bind(value any) int {
	b.args = append(b.args, value)
	return len(b.args)
}

func (b *updateBuilder) clause() string {
	return strings.Join(b.sets, ", ")
}

// predicates accumulates WHERE conditions with bound parameters.
type predicates struct {
	conds []string
	args  []any
}

func (p *predicates) add(column, op string, value any) {
	p.args = append(p.args, value)
	p.conds = append(p.conds, fmt.Sprintf("%s %s $%d", column, op, len(p.args)))
}

func (p *predicates) between(column string, low, high any) {
	p.args = append(p.args, low, high)
	p.conds = append(p.conds, fmt.Sprintf("%s BETWEEN $%d AND $%d", column, len(p.args)-1, len(p.args)))
}

func (p *predicates) clause() string {
	return strings.Join(p.conds, " AND ")
}
