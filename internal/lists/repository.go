package lists

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Lelo88/listas-api/internal/db"
	"github.com/Lelo88/listas-api/internal/shopping"
)

// Repository accede a la tabla lists.
// Contiene SQL y mapeo DB → modelo. Todo query filtra por user_id.
type Repository struct {
	database db.DB
}

// NewRepository crea un repositorio de listas.
func NewRepository(database db.DB) *Repository {
	return &Repository{database: database}
}

const listColumns = `id, name, position, created_at`

// topPosition calcula una posición por encima de todas las listas del usuario ($2).
const topPosition = `(SELECT COALESCE(MIN(position), 0) - 1 FROM lists WHERE user_id = $2)`

func scanList(scanner interface{ Scan(...any) error }) (shopping.List, error) {
	var list shopping.List
	if err := scanner.Scan(&list.ID, &list.Name, &list.Position, &list.CreatedAt); err != nil {
		return shopping.List{}, err
	}
	return list, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrorNotFound
	}
	return err
}

// List devuelve las listas del usuario, sin items, en el orden elegido.
// A igual posición gana la más nueva.
func (repository *Repository) List(ctx context.Context, userID string) ([]shopping.List, error) {
	const query = `
		SELECT ` + listColumns + `
		FROM lists
		WHERE user_id = $1
		ORDER BY position ASC, created_at DESC, id ASC;
	`

	rows, err := repository.database.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := []shopping.List{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lists, nil
}

// Insert crea una lista vacía arriba de todas.
func (repository *Repository) Insert(ctx context.Context, userID, name string) (shopping.List, error) {
	const query = `
		INSERT INTO lists (name, user_id, position)
		VALUES ($1, $2, ` + topPosition + `)
		RETURNING ` + listColumns + `;
	`

	return scanList(repository.database.QueryRow(ctx, query, name, userID))
}

// Rename cambia el nombre de una lista del usuario.
func (repository *Repository) Rename(ctx context.Context, userID, id, name string) (shopping.List, error) {
	const query = `
		UPDATE lists
		SET name = $1
		WHERE user_id = $2 AND id = $3
		RETURNING ` + listColumns + `;
	`

	list, err := scanList(repository.database.QueryRow(ctx, query, name, userID, id))
	if err != nil {
		return shopping.List{}, notFound(err)
	}
	return list, nil
}

// Delete elimina la lista; sus items se borran por ON DELETE CASCADE.
func (repository *Repository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM lists WHERE id = $1 AND user_id = $2;`

	tag, err := repository.database.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

// Duplicate copia la lista y todos sus items en una sola transacción.
// Los items conservan created_at para mantener el orden de la original.
func (repository *Repository) Duplicate(ctx context.Context, userID, id string) (shopping.List, error) {
	const insertList = `
		INSERT INTO lists (name, user_id, position)
		SELECT l.name || $3, l.user_id, ` + topPosition + `
		FROM lists l
		WHERE l.id = $1 AND l.user_id = $2
		RETURNING ` + listColumns + `;
	`
	const copyItems = `
		INSERT INTO items (list_id, name, quantity, price, completed, category, created_at)
		SELECT $1, name, quantity, price, completed, category, created_at
		FROM items
		WHERE list_id = $2;
	`

	var created shopping.List
	err := pgx.BeginFunc(ctx, repository.database, func(tx pgx.Tx) error {
		list, err := scanList(tx.QueryRow(ctx, insertList, id, userID, copySuffix))
		if err != nil {
			return notFound(err)
		}

		if _, err := tx.Exec(ctx, copyItems, list.ID, id); err != nil {
			return err
		}

		created = list
		return nil
	})
	if err != nil {
		return shopping.List{}, err
	}
	return created, nil
}

// Clear vuelve todos los items de la lista a quantity=1, price=0, pendiente.
// Devuelve cuántos items se tocaron.
func (repository *Repository) Clear(ctx context.Context, userID, id string) (int, error) {
	const query = `
		WITH target AS (
			SELECT id FROM lists WHERE id = $1 AND user_id = $2
		), cleared AS (
			UPDATE items
			SET quantity = 1, price = 0, completed = false
			WHERE list_id IN (SELECT id FROM target)
			RETURNING 1
		)
		SELECT EXISTS (SELECT 1 FROM target), (SELECT COUNT(*) FROM cleared);
	`

	var exists bool
	var cleared int
	if err := repository.database.QueryRow(ctx, query, id, userID).Scan(&exists, &cleared); err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrorNotFound
	}
	return cleared, nil
}

// SaveOrder persiste el orden completo en un solo UPDATE: la posición es el índice (1-based).
func (repository *Repository) SaveOrder(ctx context.Context, userID string, ids []string) error {
	const query = `
		UPDATE lists
		SET position = o.ord
		FROM unnest($1::text[]) WITH ORDINALITY AS o(id, ord)
		WHERE lists.id = o.id::uuid AND lists.user_id = $2;
	`

	_, err := repository.database.Exec(ctx, query, ids, userID)
	return err
}
