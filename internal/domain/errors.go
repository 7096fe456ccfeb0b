package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUnavailable        = errors.New("almacenamiento no disponible")
	// ErrLedgerNotReconciled marca operaciones sobre bajas que no reajustan el libro de stock.
	ErrLedgerNotReconciled = errors.New("el libro de stock no se reajustó con este cambio")
)

// Invalid envuelve ErrInvalidInput con el detalle del campo.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// InsufficientStockError detalla cuánto se pidió y cuánto había disponible.
type InsufficientStockError struct {
	ItemID    int64
	Requested int
	Available int
	Message   string
}

func (e *InsufficientStockError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("stock insuficiente para el ítem %d: solicitado %d, disponible %d", e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
