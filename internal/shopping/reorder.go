package shopping

// Move saca el elemento en from y lo reinserta en to, corriendo los intermedios.
// Devuelve un slice nuevo; el de entrada no se modifica.
// Si algún índice está fuera de rango devuelve una copia sin cambios.
func Move[T any](sequence []T, from, to int) []T {
	out := make([]T, len(sequence))
	copy(out, sequence)

	if from == to || from < 0 || to < 0 || from >= len(out) || to >= len(out) {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// MoveByID resuelve las posiciones por id al momento del drop y aplica Move.
// Los índices no se cachean: entre el gesto y el drop la lista pudo cambiar.
// Devuelve false si alguno de los ids ya no está en la secuencia.
func MoveByID[T any](sequence []T, id func(T) string, activeID, overID string) ([]T, bool) {
	from, to := -1, -1
	for i, element := range sequence {
		elementID := id(element)
		if elementID == activeID {
			from = i
		}
		if elementID == overID {
			to = i
		}
	}

	if from < 0 || to < 0 {
		return Move(sequence, 0, 0), false
	}
	return Move(sequence, from, to), true
}
