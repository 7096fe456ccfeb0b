package repository

import (
	"context"

	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// StockEntryRepository define el puerto del libro de stock.
// Los métodos *ForUpdate bloquean filas (SELECT ... FOR UPDATE) y sólo tienen sentido dentro de una transacción.
type StockEntryRepository interface {
	Create(ctx context.Context, entry *entity.StockEntry) error
	GetByID(ctx context.Context, id int64) (*entity.StockEntry, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.StockEntry, error)
	// ListDepletableForUpdate devuelve las entradas del ítem sin dispose_id, más antiguas primero (created_at, id).
	ListDepletableForUpdate(ctx context.Context, itemID int64) ([]*entity.StockEntry, error)
	ListByItem(ctx context.Context, itemID int64) ([]*entity.StockEntry, error)
	ListByDisposal(ctx context.Context, disposalID int64) ([]*entity.StockEntry, error)
	List(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Update(ctx context.Context, entry *entity.StockEntry) error
	Delete(ctx context.Context, id int64) error
	// SumPositiveByItem suma quantity de todas las entradas del ítem con quantity > 0.
	SumPositiveByItem(ctx context.Context, itemID int64) (int, error)
}
