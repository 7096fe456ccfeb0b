package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var (
	_ repository.BrandRepository    = (*BrandRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ItemRepository     = (*ItemRepo)(nil)
)

// BrandRepo implementación de BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de marcas.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	query := `INSERT INTO brands (name, description, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	return wrapErr("create brand", r.q.QueryRow(ctx, query, b.Name, b.Description, b.CreatedAt, b.UpdatedAt).Scan(&b.ID))
}

func (r *BrandRepo) GetByID(ctx context.Context, id int64) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM brands WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	return notFoundAsNil(&b, err, "get brand")
}

func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	return execAffecting(ctx, r.q, "update brand",
		`UPDATE brands SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Name, b.Description, b.UpdatedAt)
}

func (r *BrandRepo) List(ctx context.Context) ([]*entity.Brand, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, wrapErr("list brands", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, wrapErr("list brands", rows.Err())
}

func (r *BrandRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete brand", `DELETE FROM brands WHERE id = $1`, id)
}

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `INSERT INTO categories (name, description, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	return wrapErr("create category", r.q.QueryRow(ctx, query, c.Name, c.Description, c.CreatedAt, c.UpdatedAt).Scan(&c.ID))
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return notFoundAsNil(&c, err, "get category")
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	return execAffecting(ctx, r.q, "update category",
		`UPDATE categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.UpdatedAt)
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, wrapErr("list categories", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, wrapErr("list categories", rows.Err())
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete category", `DELETE FROM categories WHERE id = $1`, id)
}

// ItemRepo implementación de ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, description, category_id, brand_id, created_at, updated_at`

func scanItem(row scanner) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.CategoryID, &it.BrandID, &it.CreatedAt, &it.UpdatedAt)
	return &it, err
}

func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	query := `
		INSERT INTO items (name, description, category_id, brand_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, it.Name, it.Description, it.CategoryID, it.BrandID, it.CreatedAt, it.UpdatedAt).Scan(&it.ID)
	return wrapErr("create item", err)
}

func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	return notFoundAsNil(it, err, "get item")
}

func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	return execAffecting(ctx, r.q, "update item",
		`UPDATE items SET name = $2, description = $3, category_id = $4, brand_id = $5, updated_at = $6 WHERE id = $1`,
		it.ID, it.Name, it.Description, it.CategoryID, it.BrandID, it.UpdatedAt)
}

func (r *ItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, wrapErr("list items", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, wrapErr("list items", rows.Err())
}

func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.q, "delete item", `DELETE FROM items WHERE id = $1`, id)
}
