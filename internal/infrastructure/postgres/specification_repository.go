package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

var _ repository.SpecificationFieldRepository = (*SpecificationFieldRepo)(nil)

// SpecificationFieldRepo lectura de specification_fields sobre PostgreSQL.
type SpecificationFieldRepo struct {
	q Querier
}

// NewSpecificationFieldRepository construye el adaptador.
func NewSpecificationFieldRepository(q Querier) *SpecificationFieldRepo {
	return &SpecificationFieldRepo{q: q}
}

func (r *SpecificationFieldRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.SpecificationField, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, category_id, field_name, field_label, field_type, is_required, COALESCE(options, ''), field_order
		FROM specification_fields
		WHERE category_id = $1
		ORDER BY field_order, id`, categoryID)
	if err != nil {
		return nil, wrapErr("list specification fields", err)
	}
	defer rows.Close()
	var list []*entity.SpecificationField
	for rows.Next() {
		var (
			f       entity.SpecificationField
			options string
		)
		if err := rows.Scan(&f.ID, &f.CategoryID, &f.Name, &f.Label, &f.Type, &f.Required, &options, &f.FieldOrder); err != nil {
			return nil, fmt.Errorf("scan specification field: %w", err)
		}
		f.Options = splitOptions(options)
		list = append(list, &f)
	}
	return list, wrapErr("list specification fields", rows.Err())
}

// splitOptions separa "a, b,c" en [a b c]; nil si no hay opciones.
func splitOptions(raw string) []string {
	var out []string
	for _, opt := range strings.Split(raw, ",") {
		if opt = strings.TrimSpace(opt); opt != "" {
			out = append(out, opt)
		}
	}
	return out
}
