package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Lelo88/listas-api/internal/db"
)

// Repository accede a la tabla items.
// Contiene SQL y mapeo DB → modelo. Todo query filtra por dueño de la lista.
type Repository struct {
	database db.DB
}

// NewRepository crea un repositorio de items.
func NewRepository(database db.DB) *Repository {
	return &Repository{database: database}
}

const itemColumns = `i.id, i.list_id, i.name, i.quantity, i.price::text, i.completed, i.category, i.created_at`

// ownedBy restringe items a listas del usuario. El placeholder lo arma cada query.
const ownedBy = `i.list_id IN (SELECT id FROM lists WHERE user_id = %s)`

func scanItem(scanner interface{ Scan(...any) error }) (Item, error) {
	var item Item
	var price string
	err := scanner.Scan(&item.ID, &item.ListID, &item.Name, &item.Quantity, &price, &item.Completed, &item.Category, &item.CreatedAt)
	if err != nil {
		return Item{}, err
	}

	item.Price, err = decimal.NewFromString(price)
	if err != nil {
		return Item{}, fmt.Errorf("parse price %q: %w", price, err)
	}
	return item, nil
}

// ListExists indica si la lista existe y pertenece al usuario.
func (repository *Repository) ListExists(ctx context.Context, userID, listID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM lists WHERE id = $1 AND user_id = $2);`

	var exists bool
	if err := repository.database.QueryRow(ctx, query, listID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByList devuelve los items de una lista en orden de creación.
func (repository *Repository) ListByList(ctx context.Context, userID, listID string) ([]Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		WHERE i.list_id = $1 AND ` + fmt.Sprintf(ownedBy, "$2") + `
		ORDER BY i.created_at ASC, i.id ASC;
	`

	rows, err := repository.database.Query(ctx, query, listID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Insert crea un item con quantity=1, price=0, completed=false.
// El INSERT ... SELECT garantiza que la lista sea del usuario: si no, no hay filas.
func (repository *Repository) Insert(ctx context.Context, userID, listID string, input CreateItemInput) (Item, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO items (name, category, list_id, quantity, price, completed)
			SELECT $1, $2, l.id, 1, 0, false
			FROM lists l
			WHERE l.id = $3 AND l.user_id = $4
			RETURNING *
		)
		SELECT i.id, i.list_id, i.name, i.quantity, i.price::text, i.completed, i.category, i.created_at
		FROM inserted i;
	`

	item, err := scanItem(repository.database.QueryRow(ctx, query, input.Name, input.Category, listID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrorNotFound
		}
		return Item{}, err
	}
	return item, nil
}

// Update actualiza parcialmente quantity, price y/o completed.
func (repository *Repository) Update(ctx context.Context, userID, id string, changes ItemChanges) (Item, error) {
	if changes.empty() {
		return Item{}, ErrorInvalidInput
	}

	sets := make([]string, 0, 3)
	args := make([]any, 0, 5)

	if changes.Quantity != nil {
		args = append(args, *changes.Quantity)
		sets = append(sets, fmt.Sprintf("quantity = $%d", len(args)))
	}
	if changes.Price != nil {
		args = append(args, changes.Price.String())
		sets = append(sets, fmt.Sprintf("price = $%d::numeric", len(args)))
	}
	if changes.Completed != nil {
		args = append(args, *changes.Completed)
		sets = append(sets, fmt.Sprintf("completed = $%d", len(args)))
	}

	args = append(args, userID)
	userPlaceholder := fmt.Sprintf("$%d", len(args))
	args = append(args, id)
	idPlaceholder := fmt.Sprintf("$%d", len(args))

	query := `
		UPDATE items i
		SET ` + strings.Join(sets, ", ") + `
		WHERE i.id = ` + idPlaceholder + ` AND ` + fmt.Sprintf(ownedBy, userPlaceholder) + `
		RETURNING ` + itemColumns + `;
	`

	item, err := scanItem(repository.database.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrorNotFound
		}
		return Item{}, err
	}
	return item, nil
}

// Toggle invierte completed en la DB, sin leer antes el valor actual.
func (repository *Repository) Toggle(ctx context.Context, userID, id string) (Item, error) {
	query := `
		UPDATE items i
		SET completed = NOT i.completed
		WHERE i.id = $1 AND ` + fmt.Sprintf(ownedBy, "$2") + `
		RETURNING ` + itemColumns + `;
	`

	item, err := scanItem(repository.database.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrorNotFound
		}
		return Item{}, err
	}
	return item, nil
}

// Delete elimina un item por ID.
func (repository *Repository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM items i
		WHERE i.id = $1 AND ` + fmt.Sprintf(ownedBy, "$2") + `
		RETURNING i.id;
	`

	var deletedID string
	if err := repository.database.QueryRow(ctx, query, id, userID).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrorNotFound
		}
		return err
	}
	return nil
}
