package lists

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Lelo88/listas-api/internal/auth"
	"github.com/Lelo88/listas-api/internal/httpx"
	"github.com/Lelo88/listas-api/internal/shopping"
)

// ServiceAPI define lo que el handler necesita.
type ServiceAPI interface {
	List(ctx context.Context, userID string) ([]List, error)
	Create(ctx context.Context, userID string, input NameInput) (List, error)
	Rename(ctx context.Context, userID, id string, input NameInput) (List, error)
	Delete(ctx context.Context, userID, id string) error
	Duplicate(ctx context.Context, userID, id string) (List, error)
	Clear(ctx context.Context, userID, id string) (ClearResult, error)
	Reorder(ctx context.Context, userID string, input ReorderInput) ([]shopping.List, error)
}

// Handler HTTP para listas.
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de listas.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func pathID(writer http.ResponseWriter, request *http.Request) (string, bool) {
	id := chi.URLParam(request, "id")
	if !validID(id) {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_id", "id must be a valid UUID")
		return "", false
	}
	return id, true
}

func fail(writer http.ResponseWriter, request *http.Request, operation string, err error) {
	switch {
	case errors.Is(err, ErrorInvalidInput):
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_input", "list name is required")
	case errors.Is(err, ErrorNotFound):
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", "list not found")
	default:
		slog.ErrorContext(request.Context(), "list operation failed",
			"operation", operation,
			"error", err,
			"request_id", httpx.RequestIDFrom(request),
		)
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}

// List maneja GET /lists.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	lists, err := handler.service.List(request.Context(), auth.UserID(request.Context()))
	if err != nil {
		fail(writer, request, "list", err)
		return
	}
	httpx.OK(writer, request, http.StatusOK, lists)
}

// Create maneja POST /lists.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input NameInput
	if err := httpx.DecodeJSON(request, &input); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	list, err := handler.service.Create(request.Context(), auth.UserID(request.Context()), input)
	if err != nil {
		fail(writer, request, "create", err)
		return
	}
	httpx.OK(writer, request, http.StatusCreated, list)
}

// Rename maneja PATCH /lists/{id}.
func (handler *Handler) Rename(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}

	var input NameInput
	if err := httpx.DecodeJSON(request, &input); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	list, err := handler.service.Rename(request.Context(), auth.UserID(request.Context()), id, input)
	if err != nil {
		fail(writer, request, "rename", err)
		return
	}
	httpx.OK(writer, request, http.StatusOK, list)
}

// Delete maneja DELETE /lists/{id}.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}

	if err := handler.service.Delete(request.Context(), auth.UserID(request.Context()), id); err != nil {
		fail(writer, request, "delete", err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

// Duplicate maneja POST /lists/{id}/duplicate.
func (handler *Handler) Duplicate(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}

	list, err := handler.service.Duplicate(request.Context(), auth.UserID(request.Context()), id)
	if err != nil {
		fail(writer, request, "duplicate", err)
		return
	}
	httpx.OK(writer, request, http.StatusCreated, list)
}

// Clear maneja POST /lists/{id}/clear.
func (handler *Handler) Clear(writer http.ResponseWriter, request *http.Request) {
	id, ok := pathID(writer, request)
	if !ok {
		return
	}

	result, err := handler.service.Clear(request.Context(), auth.UserID(request.Context()), id)
	if err != nil {
		fail(writer, request, "clear", err)
		return
	}
	httpx.OK(writer, request, http.StatusOK, result)
}

// Reorder maneja PUT /lists/order.
func (handler *Handler) Reorder(writer http.ResponseWriter, request *http.Request) {
	var input ReorderInput
	if err := httpx.DecodeJSON(request, &input); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}
	if !validID(input.ActiveID) || !validID(input.OverID) {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_id", "active_id and over_id must be valid UUIDs")
		return
	}

	order, err := handler.service.Reorder(request.Context(), auth.UserID(request.Context()), input)
	if err != nil {
		fail(writer, request, "reorder", err)
		return
	}
	httpx.OK(writer, request, http.StatusOK, order)
}
