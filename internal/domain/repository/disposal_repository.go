package repository

import (
	"context"

	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// DisposalRepository define el puerto de persistencia para bajas.
type DisposalRepository interface {
	Create(ctx context.Context, disposal *entity.Disposal) error
	GetByID(ctx context.Context, id int64) (*entity.Disposal, error)
	Update(ctx context.Context, disposal *entity.Disposal) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Disposal, error)
	ListByItem(ctx context.Context, itemID int64) ([]*entity.Disposal, error)
}
