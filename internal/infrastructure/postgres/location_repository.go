package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var (
	_ repository.StorageLocationRepository = (*StorageLocationRepo)(nil)
	_ repository.RoomLocationRepository    = (*RoomLocationRepo)(nil)
)

// StorageLocationRepo implementación de StorageLocationRepository sobre PostgreSQL.
type StorageLocationRepo struct {
	q Querier
}

// NewStorageLocationRepository construye el adaptador de ubicaciones de stock.
func NewStorageLocationRepository(q Querier) *StorageLocationRepo {
	return &StorageLocationRepo{q: q}
}

const storageLocationColumns = `id, name, description, address, created_at, updated_at`

func scanStorageLocation(row scanner) (*entity.StorageLocation, error) {
	var l entity.StorageLocation
	err := row.Scan(&l.ID, &l.Name, &l.Description, &l.Address, &l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *StorageLocationRepo) Create(ctx context.Context, l *entity.StorageLocation) error {
	query := `
		INSERT INTO storage_locations (name, description, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return wrapErr("create storage location",
		r.q.QueryRow(ctx, query, l.Name, l.Description, l.Address, l.CreatedAt, l.UpdatedAt).Scan(&l.ID))
}

func (r *StorageLocationRepo) GetByID(ctx context.Context, id int64) (*entity.StorageLocation, error) {
	l, err := scanStorageLocation(r.q.QueryRow(ctx, `SELECT `+storageLocationColumns+` FROM storage_locations WHERE id = $1`, id))
	return notFoundAsNil(l, err, "get storage location")
}

func (r *StorageLocationRepo) Update(ctx context.Context, l *entity.StorageLocation) error {
	return execAffecting(ctx, r.q, "update storage location",
		`UPDATE storage_locations SET name = $2, description = $3, address = $4, updated_at = $5 WHERE id = $1`,
		l.ID, l.Name, l.Description, l.Address, l.UpdatedAt)
}

func (r *StorageLocationRepo) List(ctx context.Context) ([]*entity.StorageLocation, error) {
	rows, err := r.q.Query(ctx, `SELECT `+storageLocationColumns+` FROM storage_locations ORDER BY name`)
	if err != nil {
		return nil, wrapErr("list storage locations", err)
	}
	defer rows.Close()
	var list []*entity.StorageLocation
	for rows.Next() {
		l, err := scanStorageLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		list = append(list, l)
	}
	return list, wrapErr("list storage locations", rows.Err())
}

func (r *StorageLocationRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete storage location", `DELETE FROM storage_locations WHERE id = $1`, id)
}

// RoomLocationRepo implementación de RoomLocationRepository sobre PostgreSQL.
type RoomLocationRepo struct {
	q Querier
}

// NewRoomLocationRepository construye el adaptador de salas.
func NewRoomLocationRepository(q Querier) *RoomLocationRepo {
	return &RoomLocationRepo{q: q}
}

const roomLocationColumns = `id, room_number, building, floor, description, created_by, created_at, updated_at`

func scanRoomLocation(row scanner) (*entity.RoomLocation, error) {
	var l entity.RoomLocation
	err := row.Scan(&l.ID, &l.RoomNumber, &l.Building, &l.Floor, &l.Description, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *RoomLocationRepo) Create(ctx context.Context, l *entity.RoomLocation) error {
	query := `
		INSERT INTO room_locations (room_number, building, floor, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	return wrapErr("create room location",
		r.q.QueryRow(ctx, query, l.RoomNumber, l.Building, l.Floor, l.Description, l.CreatedBy, l.CreatedAt, l.UpdatedAt).Scan(&l.ID))
}

func (r *RoomLocationRepo) GetByID(ctx context.Context, id int64) (*entity.RoomLocation, error) {
	l, err := scanRoomLocation(r.q.QueryRow(ctx, `SELECT `+roomLocationColumns+` FROM room_locations WHERE id = $1`, id))
	return notFoundAsNil(l, err, "get room location")
}

func (r *RoomLocationRepo) Update(ctx context.Context, l *entity.RoomLocation) error {
	return execAffecting(ctx, r.q, "update room location",
		`UPDATE room_locations SET room_number = $2, building = $3, floor = $4, description = $5, updated_at = $6 WHERE id = $1`,
		l.ID, l.RoomNumber, l.Building, l.Floor, l.Description, l.UpdatedAt)
}

func (r *RoomLocationRepo) List(ctx context.Context) ([]*entity.RoomLocation, error) {
	rows, err := r.q.Query(ctx, `SELECT `+roomLocationColumns+` FROM room_locations ORDER BY building, room_number`)
	if err != nil {
		return nil, wrapErr("list room locations", err)
	}
	defer rows.Close()
	var list []*entity.RoomLocation
	for rows.Next() {
		l, err := scanRoomLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room location: %w", err)
		}
		list = append(list, l)
	}
	return list, wrapErr("list room locations", rows.Err())
}

func (r *RoomLocationRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete room location", `DELETE FROM room_locations WHERE id = $1`, id)
}
