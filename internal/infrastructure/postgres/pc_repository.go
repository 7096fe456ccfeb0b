package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var (
	_ repository.PCRepository          = (*PCRepo)(nil)
	_ repository.PCComponentRepository = (*PCComponentRepo)(nil)
)

// PCRepo implementación de PCRepository sobre PostgreSQL.
type PCRepo struct {
	q Querier
}

// NewPCRepository construye el adaptador de PCs.
func NewPCRepository(q Querier) *PCRepo {
	return &PCRepo{q: q}
}

// serial_number vacío se guarda como NULL para no chocar con el UNIQUE.
const pcColumns = `id, name, COALESCE(serial_number, ''), room_location_id, status, specifications, remarks, created_by, created_at, updated_at`

func scanPC(row scanner) (*entity.PC, error) {
	var pc entity.PC
	err := row.Scan(
		&pc.ID, &pc.Name, &pc.SerialNumber, &pc.RoomLocationID, &pc.Status,
		&pc.Specifications, &pc.Remarks, &pc.CreatedBy, &pc.CreatedAt, &pc.UpdatedAt,
	)
	return &pc, err
}

func (r *PCRepo) Create(ctx context.Context, pc *entity.PC) error {
	query := `
		INSERT INTO pcs (name, serial_number, room_location_id, status, specifications, remarks, created_by, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		pc.Name, pc.SerialNumber, pc.RoomLocationID, pc.Status, pc.Specifications,
		pc.Remarks, pc.CreatedBy, pc.CreatedAt, pc.UpdatedAt,
	).Scan(&pc.ID)
	return wrapErr("create pc", err)
}

func (r *PCRepo) GetByID(ctx context.Context, id int64) (*entity.PC, error) {
	pc, err := scanPC(r.q.QueryRow(ctx, `SELECT `+pcColumns+` FROM pcs WHERE id = $1`, id))
	return notFoundAsNil(pc, err, "get pc")
}

func (r *PCRepo) GetBySerialNumber(ctx context.Context, serial string) (*entity.PC, error) {
	pc, err := scanPC(r.q.QueryRow(ctx, `SELECT `+pcColumns+` FROM pcs WHERE serial_number = $1`, serial))
	return notFoundAsNil(pc, err, "get pc by serial")
}

func (r *PCRepo) Update(ctx context.Context, pc *entity.PC) error {
	query := `
		UPDATE pcs
		SET name = $2, serial_number = NULLIF($3, ''), room_location_id = $4, status = $5,
		    specifications = $6, remarks = $7, updated_at = $8
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update pc", query,
		pc.ID, pc.Name, pc.SerialNumber, pc.RoomLocationID, pc.Status, pc.Specifications, pc.Remarks, pc.UpdatedAt)
}

func (r *PCRepo) List(ctx context.Context, limit, offset int) ([]*entity.PC, error) {
	rows, err := r.q.Query(ctx, `SELECT `+pcColumns+` FROM pcs ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list pcs", err)
	}
	defer rows.Close()
	var list []*entity.PC
	for rows.Next() {
		pc, err := scanPC(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pc: %w", err)
		}
		list = append(list, pc)
	}
	return list, wrapErr("list pcs", rows.Err())
}

// Delete elimina el PC y en cascada sus componentes.
func (r *PCRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete pc", `DELETE FROM pcs WHERE id = $1`, id)
}

// PCComponentRepo implementación de PCComponentRepository sobre PostgreSQL (usable con pool o tx).
type PCComponentRepo struct {
	q Querier
}

// NewPCComponentRepository construye el adaptador de componentes.
func NewPCComponentRepository(q Querier) *PCComponentRepo {
	return &PCComponentRepo{q: q}
}

const componentColumns = `id, pc_id, item_id, stock_id, quantity, unit_price, status, remarks, created_by, created_at, updated_at`

func scanComponent(row scanner) (*entity.PCComponent, error) {
	var c entity.PCComponent
	err := row.Scan(
		&c.ID, &c.PCID, &c.ItemID, &c.StockID, &c.Quantity, &c.UnitPrice,
		&c.Status, &c.Remarks, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	return &c, err
}

func (r *PCComponentRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.PCComponent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()
	var list []*entity.PCComponent
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pc component: %w", err)
		}
		list = append(list, c)
	}
	return list, wrapErr(op, rows.Err())
}

func (r *PCComponentRepo) Create(ctx context.Context, c *entity.PCComponent) error {
	query := `
		INSERT INTO pc_components (pc_id, item_id, stock_id, quantity, unit_price, status, remarks, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.PCID, c.ItemID, c.StockID, c.Quantity, c.UnitPrice, c.Status,
		c.Remarks, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	return wrapErr("create pc component", err)
}

func (r *PCComponentRepo) GetByID(ctx context.Context, id int64) (*entity.PCComponent, error) {
	c, err := scanComponent(r.q.QueryRow(ctx, `SELECT `+componentColumns+` FROM pc_components WHERE id = $1`, id))
	return notFoundAsNil(c, err, "get pc component")
}

// GetForUpdate obtiene el componente y bloquea la fila (SELECT FOR UPDATE).
func (r *PCComponentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.PCComponent, error) {
	c, err := scanComponent(r.q.QueryRow(ctx, `SELECT `+componentColumns+` FROM pc_components WHERE id = $1 FOR UPDATE`, id))
	return notFoundAsNil(c, err, "get pc component for update")
}

func (r *PCComponentRepo) Update(ctx context.Context, c *entity.PCComponent) error {
	query := `
		UPDATE pc_components
		SET quantity = $2, unit_price = $3, status = $4, remarks = $5, updated_at = $6
		WHERE id = $1`
	return execAffecting(ctx, r.q, "update pc component", query,
		c.ID, c.Quantity, c.UnitPrice, c.Status, c.Remarks, c.UpdatedAt)
}

func (r *PCComponentRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete pc component", `DELETE FROM pc_components WHERE id = $1`, id)
}

func (r *PCComponentRepo) List(ctx context.Context, limit, offset int) ([]*entity.PCComponent, error) {
	return r.list(ctx, "list pc components",
		`SELECT `+componentColumns+` FROM pc_components ORDER BY id DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PCComponentRepo) ListByPC(ctx context.Context, pcID int64) ([]*entity.PCComponent, error) {
	return r.list(ctx, "list pc components by pc",
		`SELECT `+componentColumns+` FROM pc_components WHERE pc_id = $1 ORDER BY id`, pcID)
}

func (r *PCComponentRepo) ListByItem(ctx context.Context, itemID int64) ([]*entity.PCComponent, error) {
	return r.list(ctx, "list pc components by item",
		`SELECT `+componentColumns+` FROM pc_components WHERE item_id = $1 ORDER BY id`, itemID)
}

// SumQuantityByItem suma lo comprometido en PCs, sin importar el estado del componente.
func (r *PCComponentRepo) SumQuantityByItem(ctx context.Context, itemID int64) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM pc_components WHERE item_id = $1`, itemID,
	).Scan(&total)
	if err != nil {
		return 0, wrapErr("sum pc components by item", err)
	}
	return total, nil
}
