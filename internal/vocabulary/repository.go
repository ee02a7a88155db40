package vocabulary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Lelo88/listas-api/internal/db"
)

// Repository accede a la tabla de un vocabulario (categories o suggestions).
type Repository struct {
	database db.DB
	kind     Kind
}

// NewRepository crea un repositorio para kind. Panics si kind no es conocido.
func NewRepository(database db.DB, kind Kind) *Repository {
	if !kind.valid() {
		panic(fmt.Sprintf("vocabulary: unknown kind %q", kind))
	}
	return &Repository{database: database, kind: kind}
}

// List devuelve las entradas del usuario ordenadas por nombre.
func (repository *Repository) List(ctx context.Context, userID string) ([]Entry, error) {
	query := fmt.Sprintf(`
		SELECT id, name, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY name ASC;
	`, repository.kind)

	rows, err := repository.database.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Insert crea una entrada. Un nombre repetido para el mismo usuario es ErrorDuplicateName.
func (repository *Repository) Insert(ctx context.Context, userID, name string) (Entry, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at;
	`, repository.kind)

	var entry Entry
	err := repository.database.QueryRow(ctx, query, userID, name).Scan(&entry.ID, &entry.Name, &entry.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return Entry{}, ErrorDuplicateName
		}
		return Entry{}, err
	}
	return entry, nil
}

// Delete borra por nombre, que es como la UI identifica las entradas.
func (repository *Repository) Delete(ctx context.Context, userID, name string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = $1 AND name = $2
		RETURNING id;
	`, repository.kind)

	var deletedID string
	if err := repository.database.QueryRow(ctx, query, userID, name).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrorNotFound
		}
		return err
	}
	return nil
}
