package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrorInvalidAmount indica un monto que no se puede interpretar o es negativo.
var ErrorInvalidAmount = errors.New("invalid amount")

const (
	symbol           = "R$"
	thousandsSep     = "."
	decimalSep       = ","
	displayPrecision = 2
)

// MaxAmount es el mayor precio que entra en la columna numeric(10,2).
var MaxAmount = decimal.RequireFromString("99999999.99")

// Format devuelve el monto en reales con formato pt-BR, ej: "R$ 1.234,56".
// Redondea half-up a dos decimales. El cero se muestra como "R$ 0,00".
func Format(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(displayPrecision)

	integerPart, fractionPart, _ := strings.Cut(fixed, ".")

	var builder strings.Builder
	if negative && !amount.Round(displayPrecision).IsZero() {
		builder.WriteString("-")
	}
	builder.WriteString(symbol)
	builder.WriteString(" ")
	builder.WriteString(groupThousands(integerPart))
	builder.WriteString(decimalSep)
	builder.WriteString(fractionPart)
	return builder.String()
}

// groupThousands inserta el separador de miles cada tres dígitos desde la derecha.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	var builder strings.Builder
	if head > 0 {
		builder.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if builder.Len() > 0 {
			builder.WriteString(thousandsSep)
		}
		builder.WriteString(digits[i : i+3])
	}
	return builder.String()
}

// Parse interpreta un precio ingresado por el usuario.
// Acepta punto o coma como separador decimal ("12.34", "12,34").
// No acepta negativos, exponentes ni montos mayores a MaxAmount; el cero sí es
// válido (precio inicial de un item).
func Parse(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.ContainsAny(value, "eE") {
		return decimal.Zero, ErrorInvalidAmount
	}
	if strings.Count(value, ",") > 1 || (strings.Contains(value, ",") && strings.Contains(value, ".")) {
		return decimal.Zero, ErrorInvalidAmount
	}
	value = strings.Replace(value, decimalSep, ".", 1)

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, ErrorInvalidAmount
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrorInvalidAmount
	}

	amount = amount.Round(displayPrecision)
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrorInvalidAmount
	}
	return amount, nil
}
