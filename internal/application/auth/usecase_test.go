package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/auth"
	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/pkg/jwt"
)

type fakeAccountRepo struct {
	byID map[int64]*entity.Account
	next int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: map[int64]*entity.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.next++
	a.ID = r.next
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *entity.Account) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) List(_ context.Context, _, _ int) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAccountRepo) Count(_ context.Context) (int, error) { return len(r.byID), nil }

func (r *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

const testSecret = "secret-de-prueba"

func newUseCase() (*auth.AuthUseCase, *fakeAccountRepo) {
	repo := newFakeAccountRepo()
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "activos-api"}), repo
}

func TestRegister_PrimeraCuentaEsSuperAdmin(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	first, err := uc.Register(ctx, dto.RegisterRequest{Email: "Root@Example.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", first.Email)
	assert.Equal(t, entity.RoleSuperAdmin, first.Role)
	assert.Equal(t, entity.AccountActive, first.Status)

	second, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, second.Role)
	assert.Equal(t, entity.AccountInactive, second.Status)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "no-es-email", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@example.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@example.com", Password: "12345678"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "A@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_GeneraTokenConRol(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "root@example.com", Password: "12345678"})
	require.NoError(t, err)

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "root@example.com", Password: "12345678"})
	require.NoError(t, err)

	id, role, err := jwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Account.ID, id)
	assert.Equal(t, entity.RoleSuperAdmin, role)
}

func TestLogin_Rechazos(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, _ = uc.Register(ctx, dto.RegisterRequest{Email: "root@example.com", Password: "12345678"})
	_, _ = uc.Register(ctx, dto.RegisterRequest{Email: "viewer@example.com", Password: "12345678"})

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "root@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "viewer@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "cuenta inactiva")
}
