package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// CatalogUseCase CRUD de marcas, categorías, ubicaciones de stock y salas.
type CatalogUseCase struct {
	brands     repository.BrandRepository
	categories repository.CategoryRepository
	locations  repository.StorageLocationRepository
	rooms      repository.RoomLocationRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	brands repository.BrandRepository,
	categories repository.CategoryRepository,
	locations repository.StorageLocationRepository,
	rooms repository.RoomLocationRepository,
) *CatalogUseCase {
	return &CatalogUseCase{brands: brands, categories: categories, locations: locations, rooms: rooms}
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.Invalid("name es requerido")
	}
	return name, nil
}

// ── Marcas ──────────────────────────────────────────────────────────────────

// CreateBrand crea una marca.
func (uc *CatalogUseCase) CreateBrand(ctx context.Context, in dto.NamedRequest) (*dto.BrandResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	b := &entity.Brand{Name: name, Description: in.Description, CreatedAt: now, UpdatedAt: now}
	if err := uc.brands.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// GetBrand obtiene una marca.
func (uc *CatalogUseCase) GetBrand(ctx context.Context, id int64) (*dto.BrandResponse, error) {
	b, err := uc.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBrandResponse(b), nil
}

// UpdateBrand reemplaza nombre y descripción.
func (uc *CatalogUseCase) UpdateBrand(ctx context.Context, id int64, in dto.NamedRequest) (*dto.BrandResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	b, err := uc.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	b.Name, b.Description, b.UpdatedAt = name, in.Description, time.Now()
	if err := uc.brands.Update(ctx, b); err != nil {
		return nil, err
	}
	return toBrandResponse(b), nil
}

// ListBrands lista marcas por nombre.
func (uc *CatalogUseCase) ListBrands(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := uc.brands.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBrandResponse(b))
	}
	return out, nil
}

// DeleteBrand elimina una marca (y en cascada sus ítems).
func (uc *CatalogUseCase) DeleteBrand(ctx context.Context, id int64) error {
	if _, err := uc.GetBrand(ctx, id); err != nil {
		return err
	}
	return uc.brands.Delete(ctx, id)
}

// ── Categorías ──────────────────────────────────────────────────────────────

// CreateCategory crea una categoría.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in dto.NamedRequest) (*dto.CategoryResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Category{Name: name, Description: in.Description, CreatedAt: now, UpdatedAt: now}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetCategory obtiene una categoría.
func (uc *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(c), nil
}

// UpdateCategory reemplaza nombre y descripción.
func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, in dto.NamedRequest) (*dto.CategoryResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name, c.Description, c.UpdatedAt = name, in.Description, time.Now()
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// ListCategories lista categorías por nombre.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// DeleteCategory elimina una categoría (y en cascada sus ítems).
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := uc.GetCategory(ctx, id); err != nil {
		return err
	}
	return uc.categories.Delete(ctx, id)
}

// ── Ubicaciones de stock ────────────────────────────────────────────────────

// CreateLocation crea una ubicación de stock.
func (uc *CatalogUseCase) CreateLocation(ctx context.Context, in dto.StorageLocationRequest) (*dto.StorageLocationResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	l := &entity.StorageLocation{Name: name, Description: in.Description, Address: in.Address, CreatedAt: now, UpdatedAt: now}
	if err := uc.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// GetLocation obtiene una ubicación de stock.
func (uc *CatalogUseCase) GetLocation(ctx context.Context, id int64) (*dto.StorageLocationResponse, error) {
	l, err := uc.locations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return toLocationResponse(l), nil
}

// UpdateLocation reemplaza los datos de la ubicación.
func (uc *CatalogUseCase) UpdateLocation(ctx context.Context, id int64, in dto.StorageLocationRequest) (*dto.StorageLocationResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	l, err := uc.locations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	l.Name, l.Description, l.Address, l.UpdatedAt = name, in.Description, in.Address, time.Now()
	if err := uc.locations.Update(ctx, l); err != nil {
		return nil, err
	}
	return toLocationResponse(l), nil
}

// ListLocations lista ubicaciones de stock.
func (uc *CatalogUseCase) ListLocations(ctx context.Context) ([]dto.StorageLocationResponse, error) {
	list, err := uc.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StorageLocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

// DeleteLocation elimina una ubicación de stock.
func (uc *CatalogUseCase) DeleteLocation(ctx context.Context, id int64) error {
	if _, err := uc.GetLocation(ctx, id); err != nil {
		return err
	}
	return uc.locations.Delete(ctx, id)
}

// ── Salas ───────────────────────────────────────────────────────────────────

// CreateRoom crea una sala.
func (uc *CatalogUseCase) CreateRoom(ctx context.Context, createdBy int64, in dto.RoomLocationRequest) (*dto.RoomLocationResponse, error) {
	number := strings.TrimSpace(in.RoomNumber)
	if number == "" {
		return nil, domain.Invalid("room_number es requerido")
	}
	now := time.Now()
	r := &entity.RoomLocation{
		RoomNumber:  number,
		Building:    in.Building,
		Floor:       in.Floor,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if createdBy > 0 {
		r.CreatedBy = &createdBy
	}
	if err := uc.rooms.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRoomResponse(r), nil
}

// GetRoom obtiene una sala.
func (uc *CatalogUseCase) GetRoom(ctx context.Context, id int64) (*dto.RoomLocationResponse, error) {
	r, err := uc.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toRoomResponse(r), nil
}

// UpdateRoom reemplaza los datos de la sala.
func (uc *CatalogUseCase) UpdateRoom(ctx context.Context, id int64, in dto.RoomLocationRequest) (*dto.RoomLocationResponse, error) {
	number := strings.TrimSpace(in.RoomNumber)
	if number == "" {
		return nil, domain.Invalid("room_number es requerido")
	}
	r, err := uc.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	r.RoomNumber, r.Building, r.Floor, r.Description = number, in.Building, in.Floor, in.Description
	r.UpdatedAt = time.Now()
	if err := uc.rooms.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRoomResponse(r), nil
}

// ListRooms lista salas.
func (uc *CatalogUseCase) ListRooms(ctx context.Context) ([]dto.RoomLocationResponse, error) {
	list, err := uc.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoomLocationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRoomResponse(r))
	}
	return out, nil
}

// DeleteRoom elimina una sala; los PCs que la usaban quedan sin sala.
func (uc *CatalogUseCase) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := uc.GetRoom(ctx, id); err != nil {
		return err
	}
	return uc.rooms.Delete(ctx, id)
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{ID: b.ID, Name: b.Name, Description: b.Description, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toLocationResponse(l *entity.StorageLocation) *dto.StorageLocationResponse {
	return &dto.StorageLocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Address:     l.Address,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toRoomResponse(r *entity.RoomLocation) *dto.RoomLocationResponse {
	return &dto.RoomLocationResponse{
		ID:          r.ID,
		RoomNumber:  r.RoomNumber,
		Building:    r.Building,
		Floor:       r.Floor,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
