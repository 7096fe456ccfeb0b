package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PCRequest body para crear/actualizar un PC.
type PCRequest struct {
	Name           string `json:"name"`
	SerialNumber   string `json:"serial_number"`
	RoomLocationID *int64 `json:"room_location_id"`
	Status         string `json:"status"`
	Specifications string `json:"specifications"`
	Remarks        string `json:"remarks"`
}

// PCResponse salida de un PC.
type PCResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	SerialNumber   string    `json:"serial_number"`
	RoomLocationID *int64    `json:"room_location_id,omitempty"`
	Status         string    `json:"status"`
	Specifications string    `json:"specifications"`
	Remarks        string    `json:"remarks"`
	CreatedBy      *int64    `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PCListResponse lista paginada de PCs.
type PCListResponse struct {
	Items []PCResponse `json:"items"`
	Page  PageResponse `json:"page"`
}

// CreatePCComponentRequest body para POST /api/pc-components.
type CreatePCComponentRequest struct {
	PCID      int64           `json:"pc_id"`
	ItemID    int64           `json:"item_id"`
	StockID   *int64          `json:"stock_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Status    string          `json:"status"`
	Remarks   string          `json:"remarks"`
}

// UpdatePCComponentRequest body para PUT /api/pc-components/:id; los campos ausentes no cambian.
type UpdatePCComponentRequest struct {
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Status    *string          `json:"status"`
	Remarks   *string          `json:"remarks"`
}

// PCComponentResponse salida de un componente.
type PCComponentResponse struct {
	ID        int64           `json:"id"`
	PCID      int64           `json:"pc_id"`
	ItemID    int64           `json:"item_id"`
	StockID   *int64          `json:"stock_id,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Status    string          `json:"status"`
	Remarks   string          `json:"remarks"`
	CreatedBy *int64          `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PCComponentListResponse lista paginada de componentes.
type PCComponentListResponse struct {
	Items []PCComponentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// SpecificationFieldResponse campo de especificación para el formulario de PC.
type SpecificationFieldResponse struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}
