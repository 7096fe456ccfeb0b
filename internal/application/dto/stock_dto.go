package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest body para POST /api/stocks.
type CreateStockRequest struct {
	ItemID     int64           `json:"item_id"`
	LocationID int64           `json:"location_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Remarks    string          `json:"remarks"`
	DisposeID  *int64          `json:"dispose_id,omitempty"`
}

// UpdateStockRequest body para PUT /api/stocks/:id (corrección administrativa).
type UpdateStockRequest struct {
	LocationID int64           `json:"location_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Remarks    string          `json:"remarks"`
}

// StockResponse salida de una entrada del libro de stock.
type StockResponse struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"item_id"`
	LocationID int64           `json:"location_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Remarks    string          `json:"remarks"`
	DisposeID  *int64          `json:"dispose_id,omitempty"`
	CreatedBy  *int64          `json:"created_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StockListResponse lista paginada de entradas.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// AvailabilityResponse disponibilidad derivada de un ítem.
type AvailabilityResponse struct {
	ItemID           int64 `json:"item_id"`
	TotalStock       int   `json:"total_stock"`
	UsedInComponents int   `json:"used_in_components"`
	AvailableStock   int   `json:"available_stock"`
}
