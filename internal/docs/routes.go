package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de documentación. Son públicas: no pasan por auth.
// Van planas: un Route("/docs") también tomaría "/docs" y pisaría el redirect.
func RegisterRoutes(r chi.Router) {
	// /docs sin slash rompe las rutas relativas de swagger.html.
	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/", http.StatusMovedPermanently)
	})

	r.Get("/docs/", SwaggerUIHandler())
	r.Get("/docs/openapi.yaml", OpenAPIHandler())
	r.Get("/docs/openapi.json", OpenAPIJSONHandler())
}
