package repository

import (
	"context"

	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// StorageLocationRepository define el puerto de persistencia para ubicaciones de stock.
type StorageLocationRepository interface {
	Create(ctx context.Context, loc *entity.StorageLocation) error
	GetByID(ctx context.Context, id int64) (*entity.StorageLocation, error)
	Update(ctx context.Context, loc *entity.StorageLocation) error
	List(ctx context.Context) ([]*entity.StorageLocation, error)
	Delete(ctx context.Context, id int64) error
}

// RoomLocationRepository define el puerto de persistencia para salas de PCs.
type RoomLocationRepository interface {
	Create(ctx context.Context, room *entity.RoomLocation) error
	GetByID(ctx context.Context, id int64) (*entity.RoomLocation, error)
	Update(ctx context.Context, room *entity.RoomLocation) error
	List(ctx context.Context) ([]*entity.RoomLocation, error)
	Delete(ctx context.Context, id int64) error
}
