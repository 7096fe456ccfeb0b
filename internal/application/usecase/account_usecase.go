package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// AccountUseCase administración de cuentas (alta, listado, perfil, rol, activación y baja).
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso con el puerto de persistencia.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create da de alta una cuenta activa con el rol indicado (Viewer por defecto).
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	email, err := auth.NormalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleViewer
	}
	if !entity.IsValidRole(role) {
		return nil, domain.Invalid("rol %q no válido", role)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	a := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         role,
		Status:       entity.AccountActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return auth.ToAccountResponse(a), nil
}

// Delete elimina la cuenta; nadie puede eliminarse a sí mismo.
func (uc *AccountUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return domain.Invalid("no puede eliminar su propia cuenta")
	}
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List lista cuentas con paginación y total.
func (uc *AccountUseCase) List(ctx context.Context, limit, offset int) (*dto.AccountListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *auth.ToAccountResponse(a))
	}
	return &dto.AccountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// GetByID obtiene una cuenta.
func (uc *AccountUseCase) GetByID(ctx context.Context, id int64) (*dto.AccountResponse, error) {
	a, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return auth.ToAccountResponse(a), nil
}

// Update cambia nombre y, si el actor es SuperAdmin, el rol.
// Un SuperAdmin no puede cambiar su propio rol.
func (uc *AccountUseCase) Update(ctx context.Context, actorID int64, actorRole string, id int64, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if actorID != id && actorRole != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	a, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		a.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		a.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Role != nil && *in.Role != a.Role {
		if actorRole != entity.RoleSuperAdmin || actorID == id {
			return nil, domain.ErrForbidden
		}
		if !entity.IsValidRole(*in.Role) {
			return nil, domain.Invalid("rol %q no válido", *in.Role)
		}
		a.Role = *in.Role
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return auth.ToAccountResponse(a), nil
}

// Activate habilita el login de la cuenta.
func (uc *AccountUseCase) Activate(ctx context.Context, id int64) (*dto.AccountResponse, error) {
	return uc.setStatus(ctx, id, entity.AccountActive)
}

// Deactivate bloquea el login de la cuenta; nadie puede desactivarse a sí mismo.
func (uc *AccountUseCase) Deactivate(ctx context.Context, actorID, id int64) (*dto.AccountResponse, error) {
	if actorID == id {
		return nil, domain.Invalid("no puede desactivar su propia cuenta")
	}
	return uc.setStatus(ctx, id, entity.AccountInactive)
}

func (uc *AccountUseCase) setStatus(ctx context.Context, id int64, status string) (*dto.AccountResponse, error) {
	a, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return auth.ToAccountResponse(a), nil
}

func (uc *AccountUseCase) get(ctx context.Context, id int64) (*entity.Account, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("cuenta %d: %w", id, domain.ErrNotFound)
	}
	return a, nil
}
