package vocabulary_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Lelo88/listas-api/internal/auth"
	"github.com/Lelo88/listas-api/internal/httpx"
	"github.com/Lelo88/listas-api/internal/vocabulary"
)

type stubService struct {
	err error

	calls      []string
	userID     string
	deleteName string
	query      string
}

func (service *stubService) List(ctx context.Context, userID string) ([]vocabulary.Entry, error) {
	service.calls = append(service.calls, "list")
	service.userID = userID
	if service.err != nil {
		return nil, service.err
	}
	return []vocabulary.Entry{{ID: "e-1", Name: "Bebidas"}}, nil
}

func (service *stubService) Create(ctx context.Context, userID string, input vocabulary.CreateEntryInput) (vocabulary.Entry, error) {
	service.calls = append(service.calls, "create")
	service.userID = userID
	if service.err != nil {
		return vocabulary.Entry{}, service.err
	}
	return vocabulary.Entry{ID: "e-2", Name: input.Name}, nil
}

func (service *stubService) Delete(ctx context.Context, userID, name string) error {
	service.calls = append(service.calls, "delete")
	service.userID = userID
	service.deleteName = name
	return service.err
}

func (service *stubService) Search(ctx context.Context, userID, query string) ([]string, error) {
	service.calls = append(service.calls, "search")
	service.userID = userID
	service.query = query
	if service.err != nil {
		return nil, service.err
	}
	return []string{"Café"}, nil
}

func newRouter(service *stubService, kind vocabulary.Kind) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithSession(r.Context(), auth.Session{UserID: "user-1"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	vocabulary.RegisterRoutes(router, vocabulary.NewHandler(service, kind))
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name       string
		kind       vocabulary.Kind
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{name: "list categories", kind: vocabulary.Categories, method: http.MethodGet, target: "/categories", wantStatus: http.StatusOK},
		{name: "create category", kind: vocabulary.Categories, method: http.MethodPost, target: "/categories", body: `{"name":"Bebidas"}`, wantStatus: http.StatusCreated},
		{name: "delete category", kind: vocabulary.Categories, method: http.MethodDelete, target: "/categories/Bebidas", wantStatus: http.StatusNoContent},
		{name: "categories have no search", kind: vocabulary.Categories, method: http.MethodGet, target: "/categories/search?q=a", wantStatus: http.StatusMethodNotAllowed},
		{name: "list suggestions", kind: vocabulary.Suggestions, method: http.MethodGet, target: "/suggestions", wantStatus: http.StatusOK},
		{name: "search suggestions", kind: vocabulary.Suggestions, method: http.MethodGet, target: "/suggestions/search?q=cafe", wantStatus: http.StatusOK},
		{name: "other kind is not mounted", kind: vocabulary.Suggestions, method: http.MethodGet, target: "/categories", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newRouter(&stubService{}, tt.kind), tt.method, tt.target, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Delete_DecodesName(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "accented", target: "/categories/Caf%C3%A9", want: "Café"},
		{name: "space", target: "/categories/Frutas%20e%20verduras", want: "Frutas e verduras"},
		{name: "escaped slash", target: "/categories/Higiene%2FBeleza", want: "Higiene/Beleza"},
		{name: "percent sign", target: "/categories/100%25", want: "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubService{}

			rec := serve(newRouter(service, vocabulary.Categories), http.MethodDelete, tt.target, "")

			require.Equal(t, http.StatusNoContent, rec.Code)
			require.Equal(t, tt.want, service.deleteName)
			require.Equal(t, "user-1", service.userID)
		})
	}
}

func TestHandler_Search(t *testing.T) {
	service := &stubService{}

	rec := serve(newRouter(service, vocabulary.Suggestions), http.MethodGet, "/suggestions/search?q=caf%C3%A9", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "café", service.query)
	require.Equal(t, []any{"Café"}, decodeResponse(t, rec).Data)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		kind        vocabulary.Kind
		method      string
		target      string
		body        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "duplicate category", kind: vocabulary.Categories, method: http.MethodPost, target: "/categories",
			body: `{"name":"Bebidas"}`, err: vocabulary.ErrorDuplicateName,
			wantStatus: http.StatusConflict, wantCode: "conflict", wantMessage: "category already exists",
		},
		{
			name: "duplicate suggestion", kind: vocabulary.Suggestions, method: http.MethodPost, target: "/suggestions",
			body: `{"name":"Café"}`, err: vocabulary.ErrorDuplicateName,
			wantStatus: http.StatusConflict, wantCode: "conflict", wantMessage: "suggestion already exists",
		},
		{
			name: "blank name", kind: vocabulary.Categories, method: http.MethodPost, target: "/categories",
			body: `{"name":""}`, err: vocabulary.ErrorInvalidInput,
			wantStatus: http.StatusBadRequest, wantCode: "invalid_input", wantMessage: "category name is required",
		},
		{
			name: "invalid json", kind: vocabulary.Categories, method: http.MethodPost, target: "/categories",
			body: `[`, wantStatus: http.StatusBadRequest, wantCode: "invalid_json", wantMessage: "invalid JSON body",
		},
		{
			name: "missing entry", kind: vocabulary.Suggestions, method: http.MethodDelete, target: "/suggestions/Nada",
			err: vocabulary.ErrorNotFound, wantStatus: http.StatusNotFound, wantCode: "not_found", wantMessage: "suggestion not found",
		},
		{
			name: "unexpected", kind: vocabulary.Categories, method: http.MethodGet, target: "/categories",
			err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error", wantMessage: "unexpected error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newRouter(&stubService{err: tt.err}, tt.kind), tt.method, tt.target, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			response := decodeResponse(t, rec)
			require.NotNil(t, response.Error)
			require.Equal(t, tt.wantCode, response.Error.Code)
			require.Equal(t, tt.wantMessage, response.Error.Message)
		})
	}
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) httpx.Response {
	t.Helper()

	var response httpx.Response
	require.NoError(t, json.NewDecoder(bytes.NewReader(recorder.Body.Bytes())).Decode(&response))
	return response
}
