// Package docs sirve la documentación de la API: Swagger UI y el documento OpenAPI
// embebida, en YAML (fuente) y en JSON (derivado).
package docs

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml swagger.html
var files embed.FS

const (
	openAPIFile = "openapi.yaml"
	swaggerFile = "swagger.html"
)

// openAPIJSON convierte el documento una sola vez; el embed no cambia en runtime.
var openAPIJSON = sync.OnceValues(func() ([]byte, error) {
	source, err := files.ReadFile(openAPIFile)
	if err != nil {
		return nil, err
	}
	return yamlToJSON(source)
})

// yamlToJSON funciona porque el documento solo usa claves string (los status codes van entre comillas).
func yamlToJSON(source []byte) ([]byte, error) {
	var document map[string]any
	if err := yaml.Unmarshal(source, &document); err != nil {
		return nil, fmt.Errorf("parse openapi yaml: %w", err)
	}
	return json.Marshal(document)
}

func write(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// OpenAPIHandler devuelve el documento tal como está en el repo.
func OpenAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := files.ReadFile(openAPIFile)
		if err != nil {
			http.Error(w, "openapi not found", http.StatusInternalServerError)
			return
		}
		write(w, "application/yaml; charset=utf-8", b)
	}
}

// OpenAPIJSONHandler devuelve el mismo documento en JSON, para clientes que no leen YAML.
func OpenAPIJSONHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := openAPIJSON()
		if err != nil {
			http.Error(w, "openapi not available", http.StatusInternalServerError)
			return
		}
		write(w, "application/json; charset=utf-8", b)
	}
}

func SwaggerUIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := files.ReadFile(swaggerFile)
		if err != nil {
			http.Error(w, "swagger ui not found", http.StatusInternalServerError)
			return
		}
		write(w, "text/html; charset=utf-8", b)
	}
}
