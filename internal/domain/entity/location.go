package entity

import "time"

// StorageLocation bodega o depósito donde se guardan las entradas de stock.
type StorageLocation struct {
	ID          int64
	Name        string
	Description string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoomLocation sala donde está instalado un PC.
type RoomLocation struct {
	ID          int64
	RoomNumber  string
	Building    string
	Floor       string
	Description string
	CreatedBy   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
