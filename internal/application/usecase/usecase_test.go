package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// ── fakes mínimos ────────────────────────────────────────────────────────────

type fakePCRepo struct {
	byID map[int64]entity.PC
	next int64
}

func (r *fakePCRepo) Create(_ context.Context, pc *entity.PC) error {
	r.next++
	pc.ID = r.next
	r.byID[pc.ID] = *pc
	return nil
}

func (r *fakePCRepo) GetByID(_ context.Context, id int64) (*entity.PC, error) {
	pc, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &pc, nil
}

func (r *fakePCRepo) GetBySerialNumber(_ context.Context, serial string) (*entity.PC, error) {
	for _, pc := range r.byID {
		if pc.SerialNumber == serial {
			return &pc, nil
		}
	}
	return nil, nil
}

func (r *fakePCRepo) Update(_ context.Context, pc *entity.PC) error {
	r.byID[pc.ID] = *pc
	return nil
}

func (r *fakePCRepo) List(_ context.Context, _, _ int) ([]*entity.PC, error) {
	out := make([]*entity.PC, 0, len(r.byID))
	for _, pc := range r.byID {
		out = append(out, &pc)
	}
	return out, nil
}

func (r *fakePCRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

type fakeRoomRepo struct{ byID map[int64]entity.RoomLocation }

func (r *fakeRoomRepo) Create(_ context.Context, room *entity.RoomLocation) error {
	room.ID = int64(len(r.byID) + 1)
	r.byID[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id int64) (*entity.RoomLocation, error) {
	room, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *entity.RoomLocation) error {
	r.byID[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) List(_ context.Context) ([]*entity.RoomLocation, error) { return nil, nil }

func (r *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

type fakeCategoryRepo struct{ byID map[int64]entity.Category }

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	c.ID = int64(len(r.byID) + 1)
	r.byID[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.byID[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) { return nil, nil }

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

type fakeSpecRepo struct {
	byCategory map[int64][]*entity.SpecificationField
}

func (r *fakeSpecRepo) ListByCategory(_ context.Context, categoryID int64) ([]*entity.SpecificationField, error) {
	return r.byCategory[categoryID], nil
}

func newPCUseCase(rooms *fakeRoomRepo, specs *fakeSpecRepo) *usecase.PCUseCase {
	categories := &fakeCategoryRepo{byID: map[int64]entity.Category{
		1: {ID: 1, Name: "Memorias"},
		2: {ID: 2, Name: "Cables"},
	}}
	return usecase.NewPCUseCase(&fakePCRepo{byID: map[int64]entity.PC{}}, rooms, categories, specs)
}

type fakeAccountRepo struct{ byID map[int64]entity.Account }

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	a.ID = int64(len(r.byID) + 1)
	r.byID[a.ID] = *a
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *entity.Account) error {
	r.byID[a.ID] = *a
	return nil
}

func (r *fakeAccountRepo) List(_ context.Context, _, _ int) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, &a)
	}
	return out, nil
}

func (r *fakeAccountRepo) Count(_ context.Context) (int, error) { return len(r.byID), nil }

func (r *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

// ── PCs ──────────────────────────────────────────────────────────────────────

func TestPCUseCase_SerialUnicoYSalaExistente(t *testing.T) {
	rooms := &fakeRoomRepo{byID: map[int64]entity.RoomLocation{1: {ID: 1, RoomNumber: "101"}}}
	uc := newPCUseCase(rooms, &fakeSpecRepo{})
	ctx := context.Background()
	room := int64(1)

	pc, err := uc.Create(ctx, 7, dto.PCRequest{Name: "PC-01", SerialNumber: "SN-1", RoomLocationID: &room})
	require.NoError(t, err)
	assert.Equal(t, usecase.PCStatusActive, pc.Status)
	require.NotNil(t, pc.CreatedBy)
	assert.Equal(t, int64(7), *pc.CreatedBy)

	_, err = uc.Create(ctx, 7, dto.PCRequest{Name: "PC-02", SerialNumber: "SN-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	missing := int64(99)
	_, err = uc.Create(ctx, 7, dto.PCRequest{Name: "PC-03", RoomLocationID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := uc.Update(ctx, pc.ID, dto.PCRequest{Name: "PC-01b", SerialNumber: "SN-1"})
	require.NoError(t, err, "el propio PC puede conservar su serie")
	assert.Equal(t, "PC-01b", updated.Name)
}

func TestPCUseCase_CamposDeEspecificacion(t *testing.T) {
	specs := &fakeSpecRepo{byCategory: map[int64][]*entity.SpecificationField{
		1: {
			{CategoryID: 1, Name: "capacidad", Label: "Capacidad (GB)", Type: entity.SpecFieldNumber, Required: true},
			{CategoryID: 1, Name: "tipo", Label: "Tipo", Type: entity.SpecFieldSelect, Options: []string{"DDR4", "DDR5"}},
		},
	}}
	uc := newPCUseCase(&fakeRoomRepo{byID: map[int64]entity.RoomLocation{}}, specs)
	ctx := context.Background()

	fields, err := uc.SpecificationFields(ctx, 1)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "capacidad", fields[0].Name)
	assert.True(t, fields[0].Required)
	assert.Equal(t, []string{"DDR4", "DDR5"}, fields[1].Options)

	fields, err = uc.SpecificationFields(ctx, 2)
	require.NoError(t, err)
	require.Len(t, fields, 1, "sin campos definidos se usa el campo libre")
	assert.Equal(t, "specifications", fields[0].Name)
	assert.Equal(t, entity.SpecFieldTextarea, fields[0].Type)

	_, err = uc.SpecificationFields(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Cuentas ──────────────────────────────────────────────────────────────────

func TestAccountUseCase_CambioDeRol(t *testing.T) {
	repo := &fakeAccountRepo{byID: map[int64]entity.Account{
		1: {ID: 1, Role: entity.RoleSuperAdmin, Status: entity.AccountActive},
		2: {ID: 2, Role: entity.RoleViewer, Status: entity.AccountInactive},
	}}
	uc := usecase.NewAccountUseCase(repo)
	ctx := context.Background()
	admin := entity.RoleAdmin

	out, err := uc.Update(ctx, 1, entity.RoleSuperAdmin, 2, dto.UpdateAccountRequest{Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	viewer := entity.RoleViewer
	_, err = uc.Update(ctx, 2, entity.RoleAdmin, 2, dto.UpdateAccountRequest{Role: &viewer})
	assert.ErrorIs(t, err, domain.ErrForbidden, "sólo SuperAdmin cambia roles")

	_, err = uc.Update(ctx, 1, entity.RoleSuperAdmin, 1, dto.UpdateAccountRequest{Role: &viewer})
	assert.ErrorIs(t, err, domain.ErrForbidden, "no puede cambiar su propio rol")

	bogus := "Root"
	_, err = uc.Update(ctx, 1, entity.RoleSuperAdmin, 2, dto.UpdateAccountRequest{Role: &bogus})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAccountUseCase_ActivarDesactivar(t *testing.T) {
	repo := &fakeAccountRepo{byID: map[int64]entity.Account{
		1: {ID: 1, Role: entity.RoleSuperAdmin, Status: entity.AccountActive},
		2: {ID: 2, Role: entity.RoleViewer, Status: entity.AccountInactive},
	}}
	uc := usecase.NewAccountUseCase(repo)
	ctx := context.Background()

	out, err := uc.Activate(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountActive, out.Status)

	_, err = uc.Deactivate(ctx, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err = uc.Deactivate(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountInactive, out.Status)

	_, err = uc.Activate(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.Total)
}

func TestAccountUseCase_CrearYEliminar(t *testing.T) {
	repo := &fakeAccountRepo{byID: map[int64]entity.Account{
		1: {ID: 1, Email: "admin@activos.test", Role: entity.RoleSuperAdmin, Status: entity.AccountActive},
	}}
	uc := usecase.NewAccountUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateAccountRequest{
		Email: "  Tecnico@Activos.TEST ", Password: "clave-segura", FirstName: "Luis", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "tecnico@activos.test", out.Email)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, entity.AccountActive, out.Status, "el alta por SuperAdmin nace activa")
	assert.NotEmpty(t, repo.byID[out.ID].PasswordHash)

	viewer, err := uc.Create(ctx, dto.CreateAccountRequest{Email: "lectura@activos.test", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, viewer.Role)

	_, err = uc.Create(ctx, dto.CreateAccountRequest{Email: "tecnico@activos.test", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.Create(ctx, dto.CreateAccountRequest{Email: "otro@activos.test", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateAccountRequest{Email: "otro@activos.test", Password: "clave-segura", Role: "Root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateAccountRequest{Email: "no-es-email", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.ErrorIs(t, uc.Delete(ctx, 1, 1), domain.ErrInvalidInput, "no puede eliminarse a sí mismo")
	require.NoError(t, uc.Delete(ctx, 1, out.ID))
	_, err = uc.GetByID(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 1, out.ID), domain.ErrNotFound)
}
