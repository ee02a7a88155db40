package items

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubService struct{}

func (service *stubService) View(ctx context.Context, userID, listID, category string) (View, error) {
	return View{ListID: listID}, nil
}

func (service *stubService) Create(ctx context.Context, userID, listID string, in CreateItemInput) (Item, error) {
	return Item{ID: "id", ListID: listID, Name: in.Name, Category: in.Category, Quantity: 1}, nil
}

func (service *stubService) Update(ctx context.Context, userID, id string, in UpdateItemInput) (Item, error) {
	return Item{ID: id}, nil
}

func (service *stubService) Toggle(ctx context.Context, userID, id string) (Item, error) {
	return Item{ID: id, Completed: true}, nil
}

func (service *stubService) Delete(ctx context.Context, userID, id string) error {
	return nil
}

func TestRegisterRoutes(t *testing.T) {
	router := chi.NewRouter()
	RegisterRoutes(router, NewHandler(&stubService{}))

	const id = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "get list items",
			method:     http.MethodGet,
			path:       "/lists/" + id + "/items?category=Limpeza",
			wantStatus: http.StatusOK,
		},
		{
			name:       "post list item",
			method:     http.MethodPost,
			path:       "/lists/" + id + "/items",
			body:       `{"name":"Arroz","category":"Grãos"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "patch item",
			method:     http.MethodPatch,
			path:       "/items/" + id,
			body:       `{"quantity":2}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "toggle item",
			method:     http.MethodPost,
			path:       "/items/" + id + "/toggle",
			wantStatus: http.StatusOK,
		},
		{
			name:       "delete item",
			method:     http.MethodDelete,
			path:       "/items/" + id,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "invalid id reaches handler",
			method:     http.MethodDelete,
			path:       "/items/nope",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "get single item is not routed",
			method:     http.MethodGet,
			path:       "/items/" + id,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			require.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
