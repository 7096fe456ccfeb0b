package entity

import "time"

// Brand marca de un ítem.
type Brand struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category categoría de un ítem.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item producto inventariable (se da de alta en stock, se da de baja o se instala en PCs).
// Se elimina en cascada con su Category o Brand.
type Item struct {
	ID          int64
	Name        string
	Description string
	CategoryID  int64
	BrandID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
