// Package vocabulary guarda los vocabularios del usuario: categorías para agrupar
// items y sugerencias de nombres para autocompletar.
package vocabulary

import "github.com/Lelo88/listas-api/internal/shopping"

// Kind identifica un vocabulario. Su valor es el nombre de la tabla.
type Kind string

const (
	Categories  Kind = "categories"
	Suggestions Kind = "suggestions"
)

// singular se usa en mensajes de error ("category already exists").
func (kind Kind) singular() string {
	switch kind {
	case Categories:
		return "category"
	case Suggestions:
		return "suggestion"
	default:
		return "entry"
	}
}

// valid evita armar SQL con una tabla que no existe.
func (kind Kind) valid() bool {
	return kind == Categories || kind == Suggestions
}

// Entry es un valor del vocabulario.
type Entry = shopping.Entry

// CreateEntryInput es el payload de alta.
type CreateEntryInput struct {
	Name string `json:"name"`
}
