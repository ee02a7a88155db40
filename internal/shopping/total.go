package shopping

import "github.com/shopspring/decimal"

// ComputeTotal suma quantity * price de los items completados.
// No valida: los items pendientes no aportan nada, aunque tengan datos sucios.
func ComputeTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if !item.Completed {
			continue
		}
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalForList busca la lista por id y devuelve su total.
// Una lista inexistente no es un error: devuelve cero (ej: durante la carga inicial).
func TotalForList(listID string, lists []List) decimal.Decimal {
	for _, list := range lists {
		if list.ID == listID {
			return ComputeTotal(list.Items)
		}
	}
	return decimal.Zero
}
