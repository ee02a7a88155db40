package items

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Lelo88/listas-api/internal/auth"
	"github.com/Lelo88/listas-api/internal/httpx"
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar DB.
type ServiceAPI interface {
	View(ctx context.Context, userID, listID, category string) (View, error)
	Create(ctx context.Context, userID, listID string, in CreateItemInput) (Item, error)
	Update(ctx context.Context, userID, id string, in UpdateItemInput) (Item, error)
	Toggle(ctx context.Context, userID, id string) (Item, error)
	Delete(ctx context.Context, userID, id string) error
}

// Handler HTTP para items.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de items.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// pathID lee {id} y valida que sea UUID porque en DB es uuid.
func pathID(writer http.ResponseWriter, request *http.Request) (string, bool) {
	id := chi.URLParam(request, "id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_id", "id must be a valid UUID")
		return "", false
	}
	return id, true
}

// fail traduce errores de dominio. Lo inesperado se loguea y sale como 500.
func fail(writer http.ResponseWriter, request *http.Request, operation string, err error) {
	switch {
	case errors.Is(err, ErrorInvalidInput):
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_input", "invalid input data")
	case errors.Is(err, ErrorListNotFound):
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", "list not found")
	case errors.Is(err, ErrorNotFound):
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", "item not found")
	default:
		slog.ErrorContext(request.Context(), "item operation failed",
			"operation", operation,
			"error", err,
			"request_id", httpx.RequestIDFrom(request),
		)
		// No filtramos detalles internos.
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}

// View maneja GET /lists/{id}/items?category=.
func (handler *Handler) View(writer http.ResponseWriter, request *http.Request) {
	listID, ok := pathID(writer, request)
	if !ok {
		return
	}

	category := request.URL.Query().Get("category")
	view, err := handler.service.View(request.Context(), auth.UserID(request.Context()), listID, category)
	if err != nil {
		fail(writer, request, "view", err)
		return
	}

	httpx.OK(writer, request, http.StatusOK, view)
}

// Create maneja POST /lists/{id}/items.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	listID, ok := pathID(writer, request)
	if !ok {
		return
	}

	var input CreateItemInput
	if err := httpx.DecodeJSON(request, &input); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	item, err := handler.service.Create(request.Context(), auth.UserID(request.Context()), listID, input)
	if err != nil {
		fail(writer, request, "create", err)
		return
	}

	httpx.OK(writer, request, http.StatusCreated, item)
}

// Patch maneja PATCH /items/{id}.
func (handler *Handler) Patch(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}

	var input UpdateItemInput
	if err := httpx.DecodeJSON(request, &input); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	item, err := handler.service.Update(request.Context(), auth.UserID(request.Context()), id, input)
	if err != nil {
		fail(writer, request, "update", err)
		return
	}

	httpx.OK(writer, request, http.StatusOK, item)
}

// Toggle maneja POST /items/{id}/toggle.
func (handler *Handler) Toggle(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}

	item, err := handler.service.Toggle(request.Context(), auth.UserID(request.Context()), id)
	if err != nil {
		fail(writer, request, "toggle", err)
		return
	}

	httpx.OK(writer, request, http.StatusOK, item)
}

// Delete maneja DELETE /items/{id}.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}

	if err := handler.service.Delete(request.Context(), auth.UserID(request.Context()), id); err != nil {
		fail(writer, request, "delete", err)
		return
	}

	// 204 No Content: respuesta vacía.
	writer.WriteHeader(http.StatusNoContent)
}
