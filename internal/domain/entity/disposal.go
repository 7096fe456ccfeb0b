package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Disposal registro de baja de una cantidad de un ítem.
type Disposal struct {
	ID                int64
	ItemID            int64
	LocationID        int64
	Quantity          int
	UnitDisposalValue decimal.Decimal
	TotalValue        decimal.Decimal
	Reason            string
	DisposalDate      time.Time
	CreatedBy         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RecomputeTotal recalcula TotalValue = Quantity * UnitDisposalValue.
func (d *Disposal) RecomputeTotal() {
	d.TotalValue = decimal.NewFromInt(int64(d.Quantity)).Mul(d.UnitDisposalValue)
}
