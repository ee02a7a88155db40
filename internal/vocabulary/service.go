package vocabulary

import (
	"context"
	"errors"
	"strings"

	"github.com/Lelo88/listas-api/internal/shopping"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	ErrorInvalidInput  = errors.New("invalid input")
	ErrorNotFound      = errors.New("entry not found")
	ErrorDuplicateName = errors.New("duplicate name")
)

// RepositoryAPI define lo que el service necesita de la persistencia.
type RepositoryAPI interface {
	List(ctx context.Context, userID string) ([]Entry, error)
	Insert(ctx context.Context, userID, name string) (Entry, error)
	Delete(ctx context.Context, userID, name string) error
}

// Service contiene reglas de un vocabulario.
type Service struct {
	repository RepositoryAPI
}

// NewService crea un service de vocabulario.
func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// List devuelve todas las entradas del usuario.
func (service *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	return service.repository.List(ctx, userID)
}

// Create agrega una entrada con el nombre recortado.
func (service *Service) Create(ctx context.Context, userID string, input CreateEntryInput) (Entry, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Entry{}, ErrorInvalidInput
	}
	return service.repository.Insert(ctx, userID, name)
}

// Delete borra una entrada por nombre.
func (service *Service) Delete(ctx context.Context, userID, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrorInvalidInput
	}
	return service.repository.Delete(ctx, userID, name)
}

// Search devuelve los nombres que contienen query, sin distinguir mayúsculas ni acentos.
// Una query vacía no devuelve nada.
func (service *Service) Search(ctx context.Context, userID, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}

	entries, err := service.repository.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return shopping.FilterSuggestions(query, names), nil
}
