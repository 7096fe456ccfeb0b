package inventory

import "github.com/shopspring/decimal"

// LineTotal devuelve quantity * unit; se usa para TotalPrice de entradas y TotalValue de bajas.
func LineTotal(quantity int, unit decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Mul(unit)
}
