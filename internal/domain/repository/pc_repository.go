package repository

import (
	"context"

	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// PCRepository define el puerto de persistencia para PCs.
type PCRepository interface {
	Create(ctx context.Context, pc *entity.PC) error
	GetByID(ctx context.Context, id int64) (*entity.PC, error)
	GetBySerialNumber(ctx context.Context, serial string) (*entity.PC, error)
	Update(ctx context.Context, pc *entity.PC) error
	List(ctx context.Context, limit, offset int) ([]*entity.PC, error)
	Delete(ctx context.Context, id int64) error
}

// PCComponentRepository define el puerto de persistencia para componentes de PC.
type PCComponentRepository interface {
	Create(ctx context.Context, component *entity.PCComponent) error
	GetByID(ctx context.Context, id int64) (*entity.PCComponent, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.PCComponent, error)
	Update(ctx context.Context, component *entity.PCComponent) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.PCComponent, error)
	ListByPC(ctx context.Context, pcID int64) ([]*entity.PCComponent, error)
	ListByItem(ctx context.Context, itemID int64) ([]*entity.PCComponent, error)
	// SumQuantityByItem suma quantity de todos los componentes del ítem, sin importar su estado.
	SumQuantityByItem(ctx context.Context, itemID int64) (int, error)
}

// SpecificationFieldRepository define el puerto de lectura de campos de especificación por categoría.
type SpecificationFieldRepository interface {
	// ListByCategory devuelve los campos ordenados por field_order.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.SpecificationField, error)
}
