package inventory

import (
	"sort"

	"github.com/jhoicas/activos-api/internal/domain/entity"
)

// Deduction cantidad descontada de una entrada concreta.
type Deduction struct {
	EntryID int64
	Taken   int
	Left    int
}

// Depletion resultado de consumir stock: cuánto se descontó y cuánto faltó.
type Depletion struct {
	Requested  int
	Depleted   int
	Remainder  int
	Deductions []Deduction
}

// Complete indica si se cubrió toda la cantidad solicitada.
func (d Depletion) Complete() bool { return d.Remainder == 0 }

// SortOldestFirst ordena por CreatedAt ascendente y, a igual fecha, por ID ascendente.
func SortOldestFirst(entries []*entity.StockEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// DepleteOldestFirst descuenta needed unidades de las entradas más antiguas primero,
// modificando Quantity en memoria. Sólo toca entradas sin DisposeID y con cantidad positiva.
// El caller persiste las entradas listadas en Deductions.
func DepleteOldestFirst(entries []*entity.StockEntry, needed int) Depletion {
	out := Depletion{Requested: needed}
	if needed <= 0 {
		return out
	}
	SortOldestFirst(entries)

	remaining := needed
	for _, e := range entries {
		if remaining == 0 {
			break
		}
		if !e.IsDepletable() {
			continue
		}
		take := min(e.Quantity, remaining)
		e.Quantity -= take
		remaining -= take
		out.Deductions = append(out.Deductions, Deduction{EntryID: e.ID, Taken: take, Left: e.Quantity})
	}
	out.Depleted = needed - remaining
	out.Remainder = remaining
	return out
}
