package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
	"github.com/jhoicas/activos-api/pkg/jwt"
)

// minPasswordLen longitud mínima de contraseña.
const minPasswordLen = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil propio.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta con password bcrypt.
// La primera cuenta del sistema nace SuperAdmin activa; las siguientes Viewer inactivas
// hasta que un SuperAdmin las active.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AccountResponse, error) {
	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	existing, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	count, err := uc.accountRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Role:         entity.RoleViewer,
		Status:       entity.AccountInactive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if count == 0 {
		account.Role = entity.RoleSuperAdmin
		account.Status = entity.AccountActive
	}
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return ToAccountResponse(account), nil
}

// Login verifica email/password, genera JWT y retorna token + cuenta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accountRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if account.Status != entity.AccountActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Account: *ToAccountResponse(account)}, nil
}

// Me devuelve la cuenta autenticada.
func (uc *AuthUseCase) Me(ctx context.Context, accountID int64) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return ToAccountResponse(account), nil
}

// NormalizeEmail pasa el email a minúsculas y valida su formato.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.Invalid("email no válido")
	}
	return email, nil
}

// HashPassword exige la longitud mínima y devuelve el hash bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", domain.Invalid("password debe tener al menos %d caracteres", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ToAccountResponse convierte una cuenta a su DTO (sin hash).
func ToAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
