package shopping

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize pasa a minúsculas (case folding) y quita las marcas diacríticas,
// así "Café" y "cafe" quedan iguales.
func Normalize(value string) string {
	folded := cases.Fold().String(value)

	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, folded)
	if err != nil {
		return folded
	}
	return stripped
}

// FilterSuggestions devuelve las entradas del vocabulario que contienen la consulta.
// Match por substring contiguo sobre las formas normalizadas, sin ranking.
// Una consulta vacía no devuelve nada para no inundar el autocompletado.
func FilterSuggestions(query string, vocabulary []string) []string {
	matches := []string{}
	if strings.TrimSpace(query) == "" {
		return matches
	}

	normalizedQuery := Normalize(query)
	for _, candidate := range vocabulary {
		if strings.Contains(Normalize(candidate), normalizedQuery) {
			matches = append(matches, candidate)
		}
	}
	return matches
}
