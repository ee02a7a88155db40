package lists

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Lelo88/listas-api/internal/money"
	"github.com/Lelo88/listas-api/internal/shopping"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	ErrorInvalidInput = errors.New("invalid input")
	ErrorNotFound     = errors.New("list not found")
)

// itemLoaders limita cuántas listas se leen en paralelo.
const itemLoaders = 4

// RepositoryAPI define lo que el service necesita de la tabla lists.
type RepositoryAPI interface {
	List(ctx context.Context, userID string) ([]shopping.List, error)
	Insert(ctx context.Context, userID, name string) (shopping.List, error)
	Rename(ctx context.Context, userID, id, name string) (shopping.List, error)
	Delete(ctx context.Context, userID, id string) error
	Duplicate(ctx context.Context, userID, id string) (shopping.List, error)
	Clear(ctx context.Context, userID, id string) (int, error)
	SaveOrder(ctx context.Context, userID string, ids []string) error
}

// ItemReader lee los items de una lista. Lo implementa items.Repository.
type ItemReader interface {
	ListByList(ctx context.Context, userID, listID string) ([]shopping.Item, error)
}

// Service contiene reglas de negocio de listas.
type Service struct {
	repository RepositoryAPI
	items      ItemReader
}

// NewService crea un service de listas.
func NewService(repository RepositoryAPI, items ItemReader) *Service {
	return &Service{repository: repository, items: items}
}

// List devuelve las listas del usuario con sus items y totales.
func (service *Service) List(ctx context.Context, userID string) ([]List, error) {
	lists, err := service.repository.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(itemLoaders)

	for i := range lists {
		i := i
		group.Go(func() error {
			listItems, err := service.items.ListByList(groupCtx, userID, lists[i].ID)
			if err != nil {
				return err
			}
			// Cada goroutine escribe solo su índice.
			lists[i].Items = listItems
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make([]List, 0, len(lists))
	for _, list := range lists {
		if list.Items == nil {
			list.Items = []shopping.Item{}
		}
		total := shopping.TotalForList(list.ID, lists)
		out = append(out, List{
			List:         list,
			Total:        total,
			TotalDisplay: money.Format(total),
		})
	}
	return out, nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrorInvalidInput
	}
	return name, nil
}

// Create crea una lista vacía arriba de todas.
func (service *Service) Create(ctx context.Context, userID string, input NameInput) (List, error) {
	name, err := cleanName(input.Name)
	if err != nil {
		return List{}, err
	}

	list, err := service.repository.Insert(ctx, userID, name)
	if err != nil {
		return List{}, err
	}
	return empty(list), nil
}

// Rename cambia el nombre de una lista.
func (service *Service) Rename(ctx context.Context, userID, id string, input NameInput) (List, error) {
	name, err := cleanName(input.Name)
	if err != nil {
		return List{}, err
	}

	list, err := service.repository.Rename(ctx, userID, id, name)
	if err != nil {
		return List{}, err
	}
	return service.withItems(ctx, userID, list)
}

// Delete elimina una lista con todos sus items.
func (service *Service) Delete(ctx context.Context, userID, id string) error {
	return service.repository.Delete(ctx, userID, id)
}

// Duplicate crea "<nombre> (Cópia)" con copia de todos los items.
func (service *Service) Duplicate(ctx context.Context, userID, id string) (List, error) {
	list, err := service.repository.Duplicate(ctx, userID, id)
	if err != nil {
		return List{}, err
	}
	return service.withItems(ctx, userID, list)
}

// Clear reinicia cantidades, precios y estado de todos los items.
func (service *Service) Clear(ctx context.Context, userID, id string) (ClearResult, error) {
	cleared, err := service.repository.Clear(ctx, userID, id)
	if err != nil {
		return ClearResult{}, err
	}
	return ClearResult{ListID: id, Cleared: cleared}, nil
}

// Reorder mueve la lista active a la posición de over y persiste el orden completo.
// Los índices se resuelven por ID sobre el orden actual, no sobre lo que vio el cliente.
func (service *Service) Reorder(ctx context.Context, userID string, input ReorderInput) ([]shopping.List, error) {
	if strings.TrimSpace(input.ActiveID) == "" || strings.TrimSpace(input.OverID) == "" {
		return nil, ErrorInvalidInput
	}

	current, err := service.repository.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	reordered, ok := shopping.MoveByID(current, func(list shopping.List) string { return list.ID }, input.ActiveID, input.OverID)
	if !ok {
		return nil, ErrorNotFound
	}

	ids := make([]string, len(reordered))
	for i := range reordered {
		ids[i] = reordered[i].ID
		reordered[i].Position = i + 1
		reordered[i].Items = []shopping.Item{}
	}

	if err := service.repository.SaveOrder(ctx, userID, ids); err != nil {
		return nil, err
	}
	return reordered, nil
}

// withItems completa una lista recién escrita con sus items y total.
func (service *Service) withItems(ctx context.Context, userID string, list shopping.List) (List, error) {
	listItems, err := service.items.ListByList(ctx, userID, list.ID)
	if err != nil {
		return List{}, err
	}
	list.Items = listItems

	total := shopping.ComputeTotal(listItems)
	return List{List: list, Total: total, TotalDisplay: money.Format(total)}, nil
}

func empty(list shopping.List) List {
	list.Items = []shopping.Item{}
	return List{List: list, Total: decimal.Zero, TotalDisplay: money.Format(decimal.Zero)}
}
