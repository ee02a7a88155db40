package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB es el subconjunto de *pgxpool.Pool que usan los repositorios.
// Permite testear SQL y mapeos con fakes sin levantar Postgres.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Postgres: unique_violation = 23505
const uniqueViolation = "23505"

// IsUniqueViolation detecta conflictos por índice unique.
func IsUniqueViolation(err error) bool {
	var postgresError *pgconn.PgError
	return errors.As(err, &postgresError) && postgresError.Code == uniqueViolation
}

type poolPinger interface {
	Ping(ctx context.Context) error
	Close()
}

var (
	newPool  = pgxpool.New
	pingPool = func(ctx context.Context, pool poolPinger) error {
		return pool.Ping(ctx)
	}
	closePool = func(pool poolPinger) {
		pool.Close()
	}
)

// NewPool crea un pool de conexiones a PostgreSQL.
// Se usa un timeout corto para evitar que el arranque quede colgado si la DB no responde.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := newPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	// Validación temprana: asegura que la app no arranca "a medias".
	if err := pingPool(ctx, pool); err != nil {
		closePool(pool)
		return nil, err
	}

	return pool, nil
}
