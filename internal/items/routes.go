package items

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra rutas de items en el router (ya autenticado).
// Las rutas bajo /lists/{id} usan el mismo nombre de parámetro que el paquete lists.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Get("/lists/{id}/items", handler.View)
	route.Post("/lists/{id}/items", handler.Create)

	route.Patch("/items/{id}", handler.Patch)
	route.Post("/items/{id}/toggle", handler.Toggle)
	route.Delete("/items/{id}", handler.Delete)
}
