package vocabulary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Lelo88/listas-api/internal/db/dbtest"
)

func TestNewRepository_UnknownKind(t *testing.T) {
	require.Panics(t, func() {
		NewRepository(&dbtest.FakeDB{}, Kind("users; DROP TABLE lists"))
	})
}

func TestRepository_List(t *testing.T) {
	for _, kind := range []Kind{Categories, Suggestions} {
		t.Run(string(kind), func(t *testing.T) {
			database := &dbtest.FakeDB{}
			repository := NewRepository(database, kind)

			createdAt := time.Now()
			database.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				return &dbtest.FakeRows{Rows: [][]any{
					{"e-1", "Bebidas", createdAt},
					{"e-2", "Limpeza", createdAt},
				}}, nil
			}

			entries, err := repository.List(context.Background(), "user-1")

			require.NoError(t, err)
			require.Len(t, entries, 2)
			require.Equal(t, "Bebidas", entries[0].Name)

			query := dbtest.NormalizeSQL(database.LastQuery)
			require.Contains(t, query, "FROM "+string(kind))
			require.Contains(t, query, "ORDER BY name ASC")
			require.Equal(t, []any{"user-1"}, database.LastArgs)
		})
	}

	t.Run("empty vocabulary", func(t *testing.T) {
		database := &dbtest.FakeDB{}
		repository := NewRepository(database, Categories)

		database.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &dbtest.FakeRows{}, nil
		}

		entries, err := repository.List(context.Background(), "user-1")

		require.NoError(t, err)
		require.NotNil(t, entries)
		require.Empty(t, entries)
	})

	t.Run("query error", func(t *testing.T) {
		database := &dbtest.FakeDB{}
		repository := NewRepository(database, Categories)

		dbErr := errors.New("db down")
		database.QueryFn = func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return nil, dbErr
		}

		_, err := repository.List(context.Background(), "user-1")

		require.ErrorIs(t, err, dbErr)
	})
}

func TestRepository_Insert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		database := &dbtest.FakeDB{}
		repository := NewRepository(database, Suggestions)

		database.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &dbtest.FakeRow{Values: []any{"e-1", "Café", time.Now()}}
		}

		entry, err := repository.Insert(context.Background(), "user-1", "Café")

		require.NoError(t, err)
		require.Equal(t, "Café", entry.Name)
		require.Contains(t, database.LastQuery, "INSERT INTO suggestions")
		require.Equal(t, []any{"user-1", "Café"}, database.LastArgs)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		database := &dbtest.FakeDB{}
		repository := NewRepository(database, Categories)

		database.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &dbtest.FakeRow{Err: &pgconn.PgError{Code: "23505"}}
		}

		_, err := repository.Insert(context.Background(), "user-1", "Bebidas")

		require.ErrorIs(t, err, ErrorDuplicateName)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		database := &dbtest.FakeDB{}
		repository := NewRepository(database, Categories)

		dbErr := &pgconn.PgError{Code: "23503"}
		database.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &dbtest.FakeRow{Err: dbErr}
		}

		_, err := repository.Insert(context.Background(), "user-1", "Bebidas")

		require.ErrorIs(t, err, dbErr)
		require.NotErrorIs(t, err, ErrorDuplicateName)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("deletes by name", func(t *testing.T) {
		database := &dbtest.FakeDB{}
		repository := NewRepository(database, Categories)

		database.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &dbtest.FakeRow{Values: []any{"e-1"}}
		}

		err := repository.Delete(context.Background(), "user-1", "Bebidas")

		require.NoError(t, err)
		require.Contains(t, dbtest.NormalizeSQL(database.LastQuery), "DELETE FROM categories WHERE user_id = $1 AND name = $2")
		require.Equal(t, []any{"user-1", "Bebidas"}, database.LastArgs)
	})

	t.Run("not found", func(t *testing.T) {
		database := &dbtest.FakeDB{}
		repository := NewRepository(database, Categories)

		database.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &dbtest.FakeRow{Err: pgx.ErrNoRows}
		}

		err := repository.Delete(context.Background(), "user-1", "Nada")

		require.ErrorIs(t, err, ErrorNotFound)
	})
}
