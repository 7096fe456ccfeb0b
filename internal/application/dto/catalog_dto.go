package dto

import "time"

// NamedRequest entrada para crear/actualizar marcas y categorías.
type NamedRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemRequest entrada para crear/actualizar un ítem.
type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int64  `json:"category_id"`
	BrandID     int64  `json:"brand_id"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  int64     `json:"category_id"`
	BrandID     int64     `json:"brand_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// StorageLocationRequest entrada para crear/actualizar una ubicación de stock.
type StorageLocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// StorageLocationResponse salida de una ubicación de stock.
type StorageLocationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomLocationRequest entrada para crear/actualizar una sala.
type RoomLocationRequest struct {
	RoomNumber  string `json:"room_number"`
	Building    string `json:"building"`
	Floor       string `json:"floor"`
	Description string `json:"description"`
}

// RoomLocationResponse salida de una sala.
type RoomLocationResponse struct {
	ID          int64     `json:"id"`
	RoomNumber  string    `json:"room_number"`
	Building    string    `json:"building"`
	Floor       string    `json:"floor"`
	Description string    `json:"description"`
	CreatedBy   *int64    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
