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

// PCStatusActive estado por defecto de un PC nuevo.
const PCStatusActive = "Active"

// PCUseCase CRUD de PCs. El número de serie es único y la sala, si se indica, debe existir.
type PCUseCase struct {
	pcs        repository.PCRepository
	rooms      repository.RoomLocationRepository
	categories repository.CategoryRepository
	specs      repository.SpecificationFieldRepository
}

// NewPCUseCase construye el caso de uso.
func NewPCUseCase(
	pcs repository.PCRepository,
	rooms repository.RoomLocationRepository,
	categories repository.CategoryRepository,
	specs repository.SpecificationFieldRepository,
) *PCUseCase {
	return &PCUseCase{pcs: pcs, rooms: rooms, categories: categories, specs: specs}
}

// Create registra un PC.
func (uc *PCUseCase) Create(ctx context.Context, createdBy int64, in dto.PCRequest) (*dto.PCResponse, error) {
	if err := uc.validate(ctx, 0, in); err != nil {
		return nil, err
	}
	now := time.Now()
	pc := &entity.PC{
		Name:           strings.TrimSpace(in.Name),
		SerialNumber:   strings.TrimSpace(in.SerialNumber),
		RoomLocationID: in.RoomLocationID,
		Status:         in.Status,
		Specifications: in.Specifications,
		Remarks:        in.Remarks,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if pc.Status == "" {
		pc.Status = PCStatusActive
	}
	if createdBy > 0 {
		pc.CreatedBy = &createdBy
	}
	if err := uc.pcs.Create(ctx, pc); err != nil {
		return nil, err
	}
	return toPCResponse(pc), nil
}

// GetByID obtiene un PC.
func (uc *PCUseCase) GetByID(ctx context.Context, id int64) (*dto.PCResponse, error) {
	pc, err := uc.pcs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, domain.ErrNotFound
	}
	return toPCResponse(pc), nil
}

// Update reemplaza los datos del PC.
func (uc *PCUseCase) Update(ctx context.Context, id int64, in dto.PCRequest) (*dto.PCResponse, error) {
	pc, err := uc.pcs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validate(ctx, id, in); err != nil {
		return nil, err
	}
	pc.Name = strings.TrimSpace(in.Name)
	pc.SerialNumber = strings.TrimSpace(in.SerialNumber)
	pc.RoomLocationID = in.RoomLocationID
	if in.Status != "" {
		pc.Status = in.Status
	}
	pc.Specifications = in.Specifications
	pc.Remarks = in.Remarks
	pc.UpdatedAt = time.Now()
	if err := uc.pcs.Update(ctx, pc); err != nil {
		return nil, err
	}
	return toPCResponse(pc), nil
}

// List lista PCs con paginación.
func (uc *PCUseCase) List(ctx context.Context, limit, offset int) (*dto.PCListResponse, error) {
	list, err := uc.pcs.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PCResponse, 0, len(list))
	for _, pc := range list {
		items = append(items, *toPCResponse(pc))
	}
	return &dto.PCListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete elimina un PC y en cascada sus componentes (sin devolverlos al stock).
func (uc *PCUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.pcs.Delete(ctx, id)
}

// SpecificationFields devuelve los campos de especificación de la categoría,
// o el campo libre por defecto si no tiene ninguno definido.
func (uc *PCUseCase) SpecificationFields(ctx context.Context, categoryID int64) ([]dto.SpecificationFieldResponse, error) {
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %d: %w", categoryID, domain.ErrNotFound)
	}
	fields, err := uc.specs.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		defaults := entity.DefaultSpecificationFields()
		out := make([]dto.SpecificationFieldResponse, 0, len(defaults))
		for i := range defaults {
			out = append(out, toSpecificationFieldResponse(&defaults[i]))
		}
		return out, nil
	}
	out := make([]dto.SpecificationFieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, toSpecificationFieldResponse(f))
	}
	return out, nil
}

func toSpecificationFieldResponse(f *entity.SpecificationField) dto.SpecificationFieldResponse {
	return dto.SpecificationFieldResponse{
		Name:     f.Name,
		Label:    f.Label,
		Type:     f.Type,
		Required: f.Required,
		Options:  f.Options,
	}
}

func (uc *PCUseCase) validate(ctx context.Context, selfID int64, in dto.PCRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("name es requerido")
	}
	serial := strings.TrimSpace(in.SerialNumber)
	if serial != "" {
		other, err := uc.pcs.GetBySerialNumber(ctx, serial)
		if err != nil {
			return err
		}
		if other != nil && other.ID != selfID {
			return fmt.Errorf("número de serie %q: %w", serial, domain.ErrDuplicate)
		}
	}
	if in.RoomLocationID != nil {
		room, err := uc.rooms.GetByID(ctx, *in.RoomLocationID)
		if err != nil {
			return err
		}
		if room == nil {
			return fmt.Errorf("sala %d: %w", *in.RoomLocationID, domain.ErrNotFound)
		}
	}
	return nil
}

func toPCResponse(pc *entity.PC) *dto.PCResponse {
	return &dto.PCResponse{
		ID:             pc.ID,
		Name:           pc.Name,
		SerialNumber:   pc.SerialNumber,
		RoomLocationID: pc.RoomLocationID,
		Status:         pc.Status,
		Specifications: pc.Specifications,
		Remarks:        pc.Remarks,
		CreatedBy:      pc.CreatedBy,
		CreatedAt:      pc.CreatedAt,
		UpdatedAt:      pc.UpdatedAt,
	}
}
