package repository

import (
	"context"

	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	List(ctx context.Context, limit, offset int) ([]*entity.Account, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}
