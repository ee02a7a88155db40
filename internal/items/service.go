package items

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/Lelo88/listas-api/internal/money"
	"github.com/Lelo88/listas-api/internal/shopping"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	ErrorInvalidInput = errors.New("invalid input")
	ErrorNotFound     = errors.New("item not found")
	ErrorListNotFound = errors.New("list not found")
)

// RepositoryAPI define lo que el service necesita de la persistencia.
type RepositoryAPI interface {
	ListExists(ctx context.Context, userID, listID string) (bool, error)
	ListByList(ctx context.Context, userID, listID string) ([]Item, error)
	Insert(ctx context.Context, userID, listID string, input CreateItemInput) (Item, error)
	Update(ctx context.Context, userID, id string, changes ItemChanges) (Item, error)
	Toggle(ctx context.Context, userID, id string) (Item, error)
	Delete(ctx context.Context, userID, id string) error
}

// Service contiene reglas de negocio de items.
type Service struct {
	repository RepositoryAPI
}

// NewService crea un service de items.
func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// View arma la vista de una lista: agrupa por categoría, filtra si se pidió una
// y calcula el total de lo completado. El total siempre es de la lista entera.
func (service *Service) View(ctx context.Context, userID, listID, category string) (View, error) {
	exists, err := service.repository.ListExists(ctx, userID, listID)
	if err != nil {
		return View{}, err
	}
	if !exists {
		return View{}, ErrorListNotFound
	}

	items, err := service.repository.ListByList(ctx, userID, listID)
	if err != nil {
		return View{}, err
	}

	groups := shopping.GroupByCategory(items)
	total := shopping.ComputeTotal(items)

	view := View{
		ListID:       listID,
		Groups:       groups,
		Categories:   groups.Categories(),
		Total:        total,
		TotalDisplay: money.Format(total),
	}

	// Chip "Todas" = sin categoría.
	if category = strings.TrimSpace(category); category != "" {
		view.Category = category
		view.Groups = shopping.FilterToCategory(groups, category)
	}

	return view, nil
}

// Create valida reglas y agrega el item a la lista.
func (service *Service) Create(ctx context.Context, userID, listID string, input CreateItemInput) (Item, error) {
	// Normalización mínima.
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)

	// La UI deshabilita "agregar" con nombre o grupo vacío; acá lo reforzamos.
	if input.Name == "" || input.Category == "" {
		return Item{}, ErrorInvalidInput
	}

	item, err := service.repository.Insert(ctx, userID, listID, input)
	if err != nil {
		if errors.Is(err, ErrorNotFound) {
			return Item{}, ErrorListNotFound
		}
		return Item{}, err
	}
	return item, nil
}

// Update valida y aplica un cambio parcial de cantidad, precio o estado.
// No valida UUID, eso es responsabilidad del handler (capa HTTP).
func (service *Service) Update(ctx context.Context, userID, id string, input UpdateItemInput) (Item, error) {
	// Debe venir al menos un campo.
	if input.Quantity == nil && input.Price == nil && input.Completed == nil {
		return Item{}, ErrorInvalidInput
	}

	changes := ItemChanges{
		Quantity:  input.Quantity,
		Completed: input.Completed,
	}

	// La cantidad nunca baja de 1 (los botones +/- tienen ese piso) y entra en un integer de Postgres.
	if input.Quantity != nil && (*input.Quantity < 1 || *input.Quantity > math.MaxInt32) {
		return Item{}, ErrorInvalidInput
	}

	if input.Price != nil {
		price, err := money.Parse(*input.Price)
		if err != nil {
			return Item{}, ErrorInvalidInput
		}
		changes.Price = &price
	}

	return service.repository.Update(ctx, userID, id, changes)
}

// Toggle marca o desmarca el item como comprado.
func (service *Service) Toggle(ctx context.Context, userID, id string) (Item, error) {
	return service.repository.Toggle(ctx, userID, id)
}

// Delete elimina un item por ID.
func (service *Service) Delete(ctx context.Context, userID, id string) error {
	return service.repository.Delete(ctx, userID, id)
}
