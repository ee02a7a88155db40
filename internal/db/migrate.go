package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Direction indica qué hacer con las migraciones.
type Direction string

const (
	Up     Direction = "up"
	Down   Direction = "down"
	Status Direction = "status"
)

var openSQL = func(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDBFromPool(pool)
}

// Migrate corre las migraciones embebidas contra el pool usando goose.
// goose trabaja sobre database/sql, así que se abre un *sql.DB sobre el mismo pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, direction Direction, out io.Writer) error {
	database := openSQL(pool)
	defer database.Close()

	return run(ctx, database, direction, out)
}

func run(ctx context.Context, database *sql.DB, direction Direction, out io.Writer) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if out != nil {
		goose.SetLogger(&writerLogger{out: out})
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	var err error
	switch direction {
	case Up:
		err = goose.UpContext(ctx, database, migrationsDir)
	case Down:
		err = goose.DownContext(ctx, database, migrationsDir)
	case Status:
		err = goose.StatusContext(ctx, database, migrationsDir)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", direction, err)
	}
	return nil
}

// writerLogger adapta goose.Logger a un io.Writer (stdout del CLI).
type writerLogger struct {
	out io.Writer
}

func (logger *writerLogger) Fatalf(format string, v ...any) {
	fmt.Fprintf(logger.out, format+"\n", v...)
}

func (logger *writerLogger) Printf(format string, v ...any) {
	fmt.Fprintf(logger.out, format, v...)
}
