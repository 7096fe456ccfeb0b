package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidateDisposalRequest body para POST /api/disposals/validate.
type ValidateDisposalRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// ValidateDisposalResponse resultado de la validación previa.
type ValidateDisposalResponse struct {
	Valid            bool   `json:"valid"`
	Message          string `json:"message,omitempty"`
	TotalStock       int    `json:"total_stock"`
	UsedInComponents int    `json:"used_in_components"`
	AvailableStock   int    `json:"available_stock"`
}

// CreateDisposalRequest body para POST /api/disposals.
type CreateDisposalRequest struct {
	ItemID        int64           `json:"item_id"`
	LocationID    int64           `json:"location_id"`
	Quantity      int             `json:"quantity"`
	DisposalValue decimal.Decimal `json:"disposal_value"`
	Reason        string          `json:"reason"`
	DisposalDate  *time.Time      `json:"disposal_date,omitempty"`
}

// UpdateDisposalRequest body para PUT /api/disposals/:id; los campos ausentes no cambian.
type UpdateDisposalRequest struct {
	LocationID    *int64           `json:"location_id"`
	Quantity      *int             `json:"quantity"`
	DisposalValue *decimal.Decimal `json:"disposal_value"`
	Reason        *string          `json:"reason"`
}

// DisposalResponse salida de una baja. Warning avisa cuando el libro de stock no se reajustó.
type DisposalResponse struct {
	ID            int64           `json:"id"`
	ItemID        int64           `json:"item_id"`
	LocationID    int64           `json:"location_id"`
	Quantity      int             `json:"quantity"`
	DisposalValue decimal.Decimal `json:"disposal_value"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Reason        string          `json:"reason"`
	DisposalDate  time.Time       `json:"disposal_date"`
	CreatedBy     int64           `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Warning       string          `json:"warning,omitempty"`
}

// DisposalListResponse lista paginada de bajas.
type DisposalListResponse struct {
	Items []DisposalResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// DisposalWithStockResponse baja con las entradas de stock creadas con su dispose_id.
type DisposalWithStockResponse struct {
	Disposal DisposalResponse `json:"disposal"`
	Stocks   []StockResponse  `json:"stocks"`
}

// StockWithDisposalResponse entrada de stock con la baja asociada (si la hay).
type StockWithDisposalResponse struct {
	Stock    StockResponse     `json:"stock"`
	Disposal *DisposalResponse `json:"disposal,omitempty"`
}
