package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// scanner lo cumplen pgx.Row y pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const accountColumns = `id, email, password_hash, first_name, last_name, role, status, created_at, updated_at`

// AccountRepo implementación de AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

func scanAccount(row scanner) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

// Create inserta una cuenta y asigna su ID.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO accounts (email, password_hash, first_name, last_name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.Email, a.PasswordHash, a.FirstName, a.LastName, a.Role, a.Status, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return wrapErr("create account", err)
	}
	return nil
}

// GetByID obtiene una cuenta; (nil, nil) si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	return notFoundAsNil(a, err, "get account")
}

// GetByEmail obtiene una cuenta por email (ya normalizado a minúsculas).
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
	return notFoundAsNil(a, err, "get account by email")
}

// Update actualiza nombre, rol y estado.
func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	query := `
		UPDATE accounts
		SET first_name = $2, last_name = $3, role = $4, status = $5, updated_at = $6
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update account", query, a.ID, a.FirstName, a.LastName, a.Role, a.Status, a.UpdatedAt)
}

// List lista cuentas por id.
func (r *AccountRepo) List(ctx context.Context, limit, offset int) ([]*entity.Account, error) {
	rows, err := r.q.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list accounts", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, a)
	}
	return list, wrapErr("list accounts", rows.Err())
}

// Count cuenta las cuentas registradas.
func (r *AccountRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, wrapErr("count accounts", err)
	}
	return n, nil
}

// Delete elimina la cuenta. Falla con ErrInvalidInput si tiene bajas registradas.
func (r *AccountRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete account", `DELETE FROM accounts WHERE id = $1`, id)
}
