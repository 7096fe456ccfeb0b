package inventory

// Availability vista derivada del stock de un ítem.
// AvailableStock = max(0, TotalStock - UsedInComponents); nunca se almacena.
type Availability struct {
	ItemID           int64
	TotalStock       int
	UsedInComponents int
	AvailableStock   int
}

// NewAvailability calcula la disponibilidad a partir del stock positivo y lo comprometido en PCs.
func NewAvailability(itemID int64, totalStock, usedInComponents int) Availability {
	return Availability{
		ItemID:           itemID,
		TotalStock:       totalStock,
		UsedInComponents: usedInComponents,
		AvailableStock:   max(0, totalStock-usedInComponents),
	}
}

// Covers indica si quantity cabe en el stock disponible.
func (a Availability) Covers(quantity int) bool {
	return quantity <= a.AvailableStock
}
