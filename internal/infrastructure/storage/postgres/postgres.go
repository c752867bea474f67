package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"accountkeeper/internal/infrastructure/migration"
	"accountkeeper/internal/infrastructure/storage"
)

// pool is the subset of *pgxpool.Pool the storage uses.
type pool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

type Storage struct {
	pool pool
	log  *slog.Logger
}

// New подключается к PostgreSQL и применяет миграции из migrationsPath.
func New(ctx context.Context, databaseURI, migrationsPath string, log *slog.Logger) (*Storage, error) {
	p, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mg := migration.NewMigration(migrationsPath, databaseURI, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		p.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return newStorage(p, log), nil
}

func newStorage(p pool, log *slog.Logger) *Storage {
	return &Storage{
		pool: p,
		log:  log.With("component", "postgres_storage"),
	}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM blobs WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		s.log.Error("failed to get blob", "key", key, "error", err)
		return nil, fmt.Errorf("get blob: %w", err)
	}
	return value, nil
}

func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		s.log.Error("failed to put blob", "key", key, "error", err)
		return fmt.Errorf("put blob: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
