package shopping

// Group agrupa los items de una misma categoría.
type Group struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Groups es el resultado ordenado de agrupar items.
// Se usa un slice (y no un map) para conservar el orden de aparición.
type Groups []Group

// GroupByCategory agrupa items por su etiqueta de categoría.
// Las categorías aparecen en el orden en que se vieron por primera vez
// y los items conservan el orden de entrada dentro de cada grupo.
func GroupByCategory(items []Item) Groups {
	groups := Groups{}
	index := make(map[string]int)

	for _, item := range items {
		position, ok := index[item.Category]
		if !ok {
			position = len(groups)
			index[item.Category] = position
			groups = append(groups, Group{Category: item.Category})
		}
		groups[position].Items = append(groups[position].Items, item)
	}

	return groups
}

// FilterToCategory deja solo el grupo pedido.
// Si la categoría no existe devuelve un Groups vacío, nunca un error.
func FilterToCategory(groups Groups, category string) Groups {
	for _, group := range groups {
		if group.Category == category {
			return Groups{group}
		}
	}
	return Groups{}
}

// Categories devuelve las categorías en orden.
func (groups Groups) Categories() []string {
	categories := make([]string, 0, len(groups))
	for _, group := range groups {
		categories = append(categories, group.Category)
	}
	return categories
}

// Flatten vuelve a unir los grupos en una sola colección.
func (groups Groups) Flatten() []Item {
	var items []Item
	for _, group := range groups {
		items = append(items, group.Items...)
	}
	return items
}
