package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación del libro de stock sobre PostgreSQL (usable con pool o tx).
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

const stockColumns = `id, item_id, location_id, quantity, unit_price, total_price, remarks, dispose_id, created_by, created_at, updated_at`

func scanStockEntry(row scanner) (*entity.StockEntry, error) {
	var s entity.StockEntry
	err := row.Scan(
		&s.ID, &s.ItemID, &s.LocationID, &s.Quantity, &s.UnitPrice, &s.TotalPrice,
		&s.Remarks, &s.DisposeID, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	return &s, err
}

func (r *StockEntryRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.StockEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		s, err := scanStockEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, s)
	}
	return list, wrapErr(op, rows.Err())
}

// Create inserta la entrada y asigna su ID.
func (r *StockEntryRepo) Create(ctx context.Context, s *entity.StockEntry) error {
	query := `
		INSERT INTO stocks (item_id, location_id, quantity, unit_price, total_price, remarks, dispose_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.ItemID, s.LocationID, s.Quantity, s.UnitPrice, s.TotalPrice,
		s.Remarks, s.DisposeID, s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	return wrapErr("create stock entry", err)
}

// GetByID obtiene una entrada; (nil, nil) si no existe.
func (r *StockEntryRepo) GetByID(ctx context.Context, id int64) (*entity.StockEntry, error) {
	s, err := scanStockEntry(r.q.QueryRow(ctx, `SELECT `+stockColumns+` FROM stocks WHERE id = $1`, id))
	return notFoundAsNil(s, err, "get stock entry")
}

// GetForUpdate obtiene la entrada y bloquea la fila (SELECT FOR UPDATE).
func (r *StockEntryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.StockEntry, error) {
	s, err := scanStockEntry(r.q.QueryRow(ctx, `SELECT `+stockColumns+` FROM stocks WHERE id = $1 FOR UPDATE`, id))
	return notFoundAsNil(s, err, "get stock entry for update")
}

// ListDepletableForUpdate bloquea y devuelve las entradas del ítem sin dispose_id, más antiguas primero.
func (r *StockEntryRepo) ListDepletableForUpdate(ctx context.Context, itemID int64) ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + `
		FROM stocks
		WHERE item_id = $1 AND dispose_id IS NULL AND quantity > 0
		ORDER BY created_at, id
		FOR UPDATE`
	return r.list(ctx, "list depletable stock", query, itemID)
}

// ListByItem lista todas las entradas del ítem, más antiguas primero.
func (r *StockEntryRepo) ListByItem(ctx context.Context, itemID int64) ([]*entity.StockEntry, error) {
	return r.list(ctx, "list stock by item",
		`SELECT `+stockColumns+` FROM stocks WHERE item_id = $1 ORDER BY created_at, id`, itemID)
}

// ListByDisposal lista las entradas creadas con dispose_id = disposalID.
func (r *StockEntryRepo) ListByDisposal(ctx context.Context, disposalID int64) ([]*entity.StockEntry, error) {
	return r.list(ctx, "list stock by disposal",
		`SELECT `+stockColumns+` FROM stocks WHERE dispose_id = $1 ORDER BY created_at, id`, disposalID)
}

// List lista entradas, más recientes primero.
func (r *StockEntryRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error) {
	return r.list(ctx, "list stock",
		`SELECT `+stockColumns+` FROM stocks ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// UpdateQuantity fija la cantidad de la entrada; total_price no se toca.
func (r *StockEntryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return execAffecting(ctx, r.q, "update stock quantity",
		`UPDATE stocks SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
}

// Update reemplaza cantidad, ubicación, precios y observaciones.
func (r *StockEntryRepo) Update(ctx context.Context, s *entity.StockEntry) error {
	query := `
		UPDATE stocks
		SET location_id = $2, quantity = $3, unit_price = $4, total_price = $5, remarks = $6, updated_at = $7
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update stock entry", query,
		s.ID, s.LocationID, s.Quantity, s.UnitPrice, s.TotalPrice, s.Remarks, s.UpdatedAt)
}

// Delete elimina la entrada; pc_components.stock_id queda NULL por la FK.
func (r *StockEntryRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete stock entry", `DELETE FROM stocks WHERE id = $1`, id)
}

// SumPositiveByItem suma las cantidades positivas del ítem (incluye entradas con dispose_id).
func (r *StockEntryRepo) SumPositiveByItem(ctx context.Context, itemID int64) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM stocks WHERE item_id = $1 AND quantity > 0`, itemID,
	).Scan(&total)
	if err != nil {
		return 0, wrapErr("sum stock by item", err)
	}
	return total, nil
}
