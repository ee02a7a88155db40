// Package lists expone las listas de compras del usuario: alta, renombrado,
// borrado, duplicado, limpieza y orden manual.
package lists

import (
	"github.com/shopspring/decimal"

	"github.com/Lelo88/listas-api/internal/shopping"
)

// copySuffix se agrega al nombre de una lista duplicada.
const copySuffix = " (Cópia)"

// List es una lista con sus items y el total de lo ya comprado.
type List struct {
	shopping.List
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

// NameInput es el payload de alta y renombrado.
type NameInput struct {
	Name string `json:"name"`
}

// ReorderInput describe un drag and drop: active es la lista arrastrada,
// over la lista sobre la que se soltó.
type ReorderInput struct {
	ActiveID string `json:"active_id"`
	OverID   string `json:"over_id"`
}

// ClearResult informa cuántos items volvieron a su estado inicial.
type ClearResult struct {
	ListID  string `json:"list_id"`
	Cleared int    `json:"cleared"`
}
