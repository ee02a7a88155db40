package vocabulary

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra /{kind} en el router (ya autenticado).
// La búsqueda solo existe para sugerencias.
func RegisterRoutes(route chi.Router, handler *Handler) {
	prefix := "/" + string(handler.kind)

	route.Get(prefix, handler.List)
	route.Post(prefix, handler.Create)
	route.Delete(prefix+"/{name}", handler.Delete)

	if handler.kind == Suggestions {
		route.Get(prefix+"/search", handler.Search)
	}
}
