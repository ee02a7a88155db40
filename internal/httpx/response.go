package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes limita el tamaño de los payloads JSON que aceptamos.
const maxBodyBytes = 1 << 20

// Response es el sobre estándar que devuelve la API.
// El cliente móvil muestra Error.Message como toast, así que debe ser legible.
type Response struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  *Meta      `json:"meta,omitempty"`
}

// Meta contiene información adicional útil para debugging y trazabilidad.
type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	TimeUTC   string `json:"time_utc,omitempty"`
}

// ErrorBody describe un error de forma estructurada.
// No exponer detalles internos (SQL, stacktrace, etc.).
type ErrorBody struct {
	Code    string `json:"code,omitempty"`    // ej: "invalid_input", "not_found", "conflict"
	Message string `json:"message,omitempty"` // mensaje para humanos
}

// ErrorEmptyBody indica que el request llegó sin cuerpo.
var ErrorEmptyBody = errors.New("empty body")

// JSON escribe una respuesta JSON con headers correctos.
// Nota: en caso de error de encodeo, responde 500 de forma segura.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)

	if err := enc.Encode(resp); err != nil {
		// Último recurso: no se pudo serializar JSON.
		http.Error(w, `{"error":{"code":"internal","message":"internal server error"}}`, http.StatusInternalServerError)
	}
}

func newMeta(r *http.Request) *Meta {
	return &Meta{
		RequestID: RequestIDFrom(r),
		TimeUTC:   time.Now().UTC().Format(time.RFC3339),
	}
}

// OK devuelve una respuesta exitosa con data.
func OK(w http.ResponseWriter, r *http.Request, status int, data any) {
	JSON(w, status, Response{
		Data: data,
		Meta: newMeta(r),
	})
}

// Fail devuelve un error estructurado.
func Fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	JSON(w, status, Response{
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
		Meta: newMeta(r),
	})
}

// DecodeJSON lee el body del request en target.
// Rechaza bodies vacíos y más de un documento JSON.
func DecodeJSON(r *http.Request, target any) error {
	if r.Body == nil {
		return ErrorEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrorEmptyBody
		}
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
