package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// ItemUseCase CRUD de ítems; la categoría y la marca deben existir.
type ItemUseCase struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(items repository.ItemRepository, categories repository.CategoryRepository, brands repository.BrandRepository) *ItemUseCase {
	return &ItemUseCase{items: items, categories: categories, brands: brands}
}

// Create crea un ítem.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*dto.ItemResponse, error) {
	name, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.Item{
		Name:        name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update reemplaza los datos del ítem.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	name, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = name
	item.Description = in.Description
	item.CategoryID = in.CategoryID
	item.BrandID = in.BrandID
	item.UpdatedAt = time.Now()
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista ítems con paginación.
func (uc *ItemUseCase) List(ctx context.Context, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.items.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete elimina un ítem (y en cascada su stock, bajas y componentes).
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.items.Delete(ctx, id)
}

func (uc *ItemUseCase) validate(ctx context.Context, in dto.ItemRequest) (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", domain.Invalid("name es requerido")
	}
	if in.CategoryID <= 0 || in.BrandID <= 0 {
		return "", domain.Invalid("category_id y brand_id son requeridos")
	}
	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return "", err
	}
	if cat == nil {
		return "", fmt.Errorf("categoría %d: %w", in.CategoryID, domain.ErrNotFound)
	}
	brand, err := uc.brands.GetByID(ctx, in.BrandID)
	if err != nil {
		return "", err
	}
	if brand == nil {
		return "", fmt.Errorf("marca %d: %w", in.BrandID, domain.ErrNotFound)
	}
	return name, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CategoryID:  it.CategoryID,
		BrandID:     it.BrandID,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
