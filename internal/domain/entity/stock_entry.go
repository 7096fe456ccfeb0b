package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry es una entrada del libro de stock: una cantidad de un ítem en una ubicación.
// Quantity se reduce en el mismo registro cuando una baja lo consume; nunca queda negativa.
// DisposeID sólo se llena cuando la entrada se creó como parte de una baja
// (no marca las entradas consumidas por ella).
type StockEntry struct {
	ID         int64
	ItemID     int64
	LocationID int64
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // Quantity * UnitPrice al crear; no se recalcula al consumir
	Remarks    string
	DisposeID  *int64
	CreatedBy  *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsDepletable indica si la entrada participa en el consumo por bajas.
func (s *StockEntry) IsDepletable() bool {
	return s.DisposeID == nil && s.Quantity > 0
}
