package vocabulary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Lelo88/listas-api/internal/auth"
	"github.com/Lelo88/listas-api/internal/httpx"
)

// ServiceAPI define lo que el handler necesita.
type ServiceAPI interface {
	List(ctx context.Context, userID string) ([]Entry, error)
	Create(ctx context.Context, userID string, input CreateEntryInput) (Entry, error)
	Delete(ctx context.Context, userID, name string) error
	Search(ctx context.Context, userID, query string) ([]string, error)
}

// Handler HTTP para un vocabulario.
type Handler struct {
	service ServiceAPI
	kind    Kind
}

// NewHandler crea un handler para kind.
func NewHandler(service ServiceAPI, kind Kind) *Handler {
	return &Handler{service: service, kind: kind}
}

func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, operation string, err error) {
	switch {
	case errors.Is(err, ErrorInvalidInput):
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_input", handler.kind.singular()+" name is required")
	case errors.Is(err, ErrorDuplicateName):
		httpx.Fail(writer, request, http.StatusConflict, "conflict", handler.kind.singular()+" already exists")
	case errors.Is(err, ErrorNotFound):
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", handler.kind.singular()+" not found")
	default:
		slog.ErrorContext(request.Context(), "vocabulary operation failed",
			"kind", string(handler.kind),
			"operation", operation,
			"error", err,
			"request_id", httpx.RequestIDFrom(request),
		)
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}

// List maneja GET /{kind}.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.List(request.Context(), auth.UserID(request.Context()))
	if err != nil {
		handler.fail(writer, request, "list", err)
		return
	}
	httpx.OK(writer, request, http.StatusOK, entries)
}

// Create maneja POST /{kind}.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input CreateEntryInput
	if err := httpx.DecodeJSON(request, &input); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	entry, err := handler.service.Create(request.Context(), auth.UserID(request.Context()), input)
	if err != nil {
		handler.fail(writer, request, "create", err)
		return
	}
	httpx.OK(writer, request, http.StatusCreated, entry)
}

// Delete maneja DELETE /{kind}/{name}.
// Si el path trae caracteres escapados (ej. "%2F"), chi entrega el nombre sin decodificar.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	name := chi.URLParam(request, "name")
	if request.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			httpx.Fail(writer, request, http.StatusBadRequest, "invalid_input", "invalid name")
			return
		}
		name = unescaped
	}

	if err := handler.service.Delete(request.Context(), auth.UserID(request.Context()), name); err != nil {
		handler.fail(writer, request, "delete", err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

// Search maneja GET /suggestions/search?q=.
func (handler *Handler) Search(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	matches, err := handler.service.Search(request.Context(), auth.UserID(request.Context()), query)
	if err != nil {
		handler.fail(writer, request, "search", err)
		return
	}
	httpx.OK(writer, request, http.StatusOK, matches)
}
