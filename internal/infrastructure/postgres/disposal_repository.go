package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.DisposalRepository = (*DisposalRepo)(nil)

// DisposalRepo implementación de DisposalRepository sobre PostgreSQL.
type DisposalRepo struct {
	q Querier
}

// NewDisposalRepository construye el adaptador de bajas.
func NewDisposalRepository(q Querier) *DisposalRepo {
	return &DisposalRepo{q: q}
}

const disposalColumns = `id, item_id, location_id, quantity, disposal_value, total_value, reason, disposal_date, created_by, created_at, updated_at`

func scanDisposal(row scanner) (*entity.Disposal, error) {
	var d entity.Disposal
	err := row.Scan(
		&d.ID, &d.ItemID, &d.LocationID, &d.Quantity, &d.UnitDisposalValue, &d.TotalValue,
		&d.Reason, &d.DisposalDate, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	return &d, err
}

func (r *DisposalRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Disposal, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()
	var list []*entity.Disposal
	for rows.Next() {
		d, err := scanDisposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan disposal: %w", err)
		}
		list = append(list, d)
	}
	return list, wrapErr(op, rows.Err())
}

// Create inserta la baja y asigna su ID.
func (r *DisposalRepo) Create(ctx context.Context, d *entity.Disposal) error {
	query := `
		INSERT INTO disposals (item_id, location_id, quantity, disposal_value, total_value, reason, disposal_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		d.ItemID, d.LocationID, d.Quantity, d.UnitDisposalValue, d.TotalValue,
		d.Reason, d.DisposalDate, d.CreatedBy, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	return wrapErr("create disposal", err)
}

// GetByID obtiene una baja; (nil, nil) si no existe.
func (r *DisposalRepo) GetByID(ctx context.Context, id int64) (*entity.Disposal, error) {
	d, err := scanDisposal(r.q.QueryRow(ctx, `SELECT `+disposalColumns+` FROM disposals WHERE id = $1`, id))
	return notFoundAsNil(d, err, "get disposal")
}

// Update reemplaza ubicación, cantidad, valores y motivo.
func (r *DisposalRepo) Update(ctx context.Context, d *entity.Disposal) error {
	query := `
		UPDATE disposals
		SET location_id = $2, quantity = $3, disposal_value = $4, total_value = $5, reason = $6, updated_at = $7
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update disposal", query,
		d.ID, d.LocationID, d.Quantity, d.UnitDisposalValue, d.TotalValue, d.Reason, d.UpdatedAt)
}

// Delete elimina la baja; stocks.dispose_id queda NULL por la FK.
func (r *DisposalRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete disposal", `DELETE FROM disposals WHERE id = $1`, id)
}

// List lista bajas, más recientes primero.
func (r *DisposalRepo) List(ctx context.Context, limit, offset int) ([]*entity.Disposal, error) {
	return r.list(ctx, "list disposals",
		`SELECT `+disposalColumns+` FROM disposals ORDER BY disposal_date DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByItem lista las bajas de un ítem, más recientes primero.
func (r *DisposalRepo) ListByItem(ctx context.Context, itemID int64) ([]*entity.Disposal, error) {
	return r.list(ctx, "list disposals by item",
		`SELECT `+disposalColumns+` FROM disposals WHERE item_id = $1 ORDER BY disposal_date DESC, id DESC`, itemID)
}
