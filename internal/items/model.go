package items

import (
	"github.com/shopspring/decimal"

	"github.com/Lelo88/listas-api/internal/shopping"
)

// Item es el item de dominio; el paquete solo agrega persistencia y HTTP.
type Item = shopping.Item

// CreateItemInput representa el payload para agregar un item a una lista.
// Cantidad, precio y estado arrancan siempre en 1, 0 y pendiente.
type CreateItemInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// UpdateItemInput representa un PATCH parcial.
// Nota: Price es string por precisión y para aceptar "12,50" además de "12.50".
type UpdateItemInput struct {
	Quantity  *int    `json:"quantity,omitempty"`
	Price     *string `json:"price,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// ItemChanges es UpdateItemInput ya validado, listo para el repositorio.
type ItemChanges struct {
	Quantity  *int
	Price     *decimal.Decimal
	Completed *bool
}

func (changes ItemChanges) empty() bool {
	return changes.Quantity == nil && changes.Price == nil && changes.Completed == nil
}

// View es lo que ve el usuario al abrir una lista: los grupos (filtrados o no),
// todas las categorías para los chips y el total de lo ya comprado.
type View struct {
	ListID       string          `json:"list_id"`
	Category     string          `json:"category,omitempty"`
	Groups       shopping.Groups `json:"groups"`
	Categories   []string        `json:"categories"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}
