package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un componente de PC.
const (
	ComponentWorking     = "Working"
	ComponentMissing     = "Missing"
	ComponentNotWorking  = "Not Working"
	ComponentMaintenance = "Maintenance"
)

// IsValidComponentStatus indica si status es un estado de componente conocido.
func IsValidComponentStatus(status string) bool {
	switch status {
	case ComponentWorking, ComponentMissing, ComponentNotWorking, ComponentMaintenance:
		return true
	}
	return false
}

// PC equipo armado con componentes tomados del stock.
type PC struct {
	ID             int64
	Name           string
	SerialNumber   string
	RoomLocationID *int64
	Status         string
	Specifications string
	Remarks        string
	CreatedBy      *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PCComponent asignación de una cantidad de un ítem (desde una entrada de stock) a un PC.
// Es una reserva blanda: no modifica la cantidad de la entrada de origen.
type PCComponent struct {
	ID        int64
	PCID      int64
	ItemID    int64
	StockID   *int64
	Quantity  int
	UnitPrice decimal.Decimal
	Status    string
	Remarks   string
	CreatedBy *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tipos de campo de especificación.
const (
	SpecFieldText     = "text"
	SpecFieldTextarea = "textarea"
	SpecFieldNumber   = "number"
	SpecFieldSelect   = "select"
)

// SpecificationField campo de especificación que el formulario de PC pide para los ítems de una categoría.
type SpecificationField struct {
	ID         int64
	CategoryID int64
	Name       string
	Label      string
	Type       string
	Required   bool
	Options    []string
	FieldOrder int
}

// DefaultSpecificationFields se usa cuando la categoría no define campos propios.
func DefaultSpecificationFields() []SpecificationField {
	return []SpecificationField{{Name: "specifications", Label: "Especificaciones", Type: SpecFieldTextarea}}
}
