package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDFrom devuelve el request id para incluirlo en respuestas y logs.
// Prioriza el que guardó middleware.RequestID en el contexto; si no hay,
// cae al header "X-Request-Id" que mandó el cliente.
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	if id := middleware.GetReqID(request.Context()); id != "" {
		return id
	}
	return request.Header.Get(middleware.RequestIDHeader)
}
