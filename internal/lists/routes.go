package lists

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra rutas de listas en el router (ya autenticado).
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Get("/lists", handler.List)
	route.Post("/lists", handler.Create)
	route.Put("/lists/order", handler.Reorder)

	route.Patch("/lists/{id}", handler.Rename)
	route.Delete("/lists/{id}", handler.Delete)
	route.Post("/lists/{id}/duplicate", handler.Duplicate)
	route.Post("/lists/{id}/clear", handler.Clear)
}
