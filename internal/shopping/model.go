// Package shopping contiene el núcleo de dominio de las listas de compras:
// agrupación por categoría, totales, reordenamiento y filtro de sugerencias.
// Todas las funciones son puras y operan sobre colecciones ya leídas de la DB.
package shopping

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item es una entrada comprable dentro de una lista.
// Price se modela con decimal para no perder precisión de centavos.
type Item struct {
	ID        string          `json:"id"`
	ListID    string          `json:"list_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Completed bool            `json:"completed"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

// Subtotal devuelve quantity * price sin validar nada.
func (item Item) Subtotal() decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// List es una lista de compras con sus items.
// Position define el orden elegido por el usuario (drag and drop).
type List struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	Items     []Item    `json:"items"`
}

// Entry es un valor de vocabulario del usuario (categoría o sugerencia).
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
