package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/inventory"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func entry(id int64, qty int, createdAt time.Time) *entity.StockEntry {
	return &entity.StockEntry{ID: id, ItemID: 1, LocationID: 1, Quantity: qty, UnitPrice: decimal.NewFromInt(5), CreatedAt: createdAt}
}

func sum(entries []*entity.StockEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Quantity
	}
	return total
}

func TestDepleteOldestFirst_AgotaPrimeroLaMasAntigua(t *testing.T) {
	e1 := entry(1, 5, t0)
	e2 := entry(2, 5, t0.Add(time.Hour))
	// el orden de entrada no importa
	entries := []*entity.StockEntry{e2, e1}

	d := inventory.DepleteOldestFirst(entries, 7)

	assert.Equal(t, 0, e1.Quantity)
	assert.Equal(t, 3, e2.Quantity)
	assert.True(t, d.Complete())
	require.Len(t, d.Deductions, 2)
	assert.Equal(t, inventory.Deduction{EntryID: 1, Taken: 5, Left: 0}, d.Deductions[0])
	assert.Equal(t, inventory.Deduction{EntryID: 2, Taken: 2, Left: 3}, d.Deductions[1])
}

func TestDepleteOldestFirst_NoTocaLaSegundaSiAlcanzaLaPrimera(t *testing.T) {
	e1 := entry(1, 5, t0)
	e2 := entry(2, 5, t0.Add(time.Minute))

	d := inventory.DepleteOldestFirst([]*entity.StockEntry{e1, e2}, 4)

	assert.Equal(t, 1, e1.Quantity)
	assert.Equal(t, 5, e2.Quantity)
	assert.Len(t, d.Deductions, 1)
}

func TestDepleteOldestFirst_EmpateDeFechaPorID(t *testing.T) {
	e7 := entry(7, 3, t0)
	e3 := entry(3, 3, t0)

	d := inventory.DepleteOldestFirst([]*entity.StockEntry{e7, e3}, 4)

	assert.Equal(t, 0, e3.Quantity, "a igual fecha se consume primero el ID menor")
	assert.Equal(t, 2, e7.Quantity)
	assert.Equal(t, int64(3), d.Deductions[0].EntryID)
}

func TestDepleteOldestFirst_Conservacion(t *testing.T) {
	entries := []*entity.StockEntry{
		entry(1, 4, t0),
		entry(2, 0, t0.Add(time.Minute)),
		entry(3, 9, t0.Add(2*time.Minute)),
		entry(4, 2, t0.Add(3*time.Minute)),
	}
	before := sum(entries)

	d := inventory.DepleteOldestFirst(entries, 11)

	require.True(t, d.Complete())
	assert.Equal(t, 11, d.Depleted)
	taken := 0
	for _, x := range d.Deductions {
		taken += x.Taken
	}
	assert.Equal(t, 11, taken)
	assert.Equal(t, before-11, sum(entries))
}

func TestDepleteOldestFirst_NuncaNegativo(t *testing.T) {
	for needed := 1; needed <= 20; needed++ {
		entries := []*entity.StockEntry{entry(1, 3, t0), entry(2, 6, t0.Add(time.Second)), entry(3, 1, t0.Add(2*time.Second))}
		d := inventory.DepleteOldestFirst(entries, needed)
		for _, e := range entries {
			assert.GreaterOrEqual(t, e.Quantity, 0)
		}
		assert.Equal(t, needed, d.Depleted+d.Remainder)
	}
}

func TestDepleteOldestFirst_Faltante(t *testing.T) {
	entries := []*entity.StockEntry{entry(1, 5, t0), entry(2, 3, t0.Add(time.Hour))}

	d := inventory.DepleteOldestFirst(entries, 10)

	assert.False(t, d.Complete())
	assert.Equal(t, 8, d.Depleted)
	assert.Equal(t, 2, d.Remainder)
}

func TestDepleteOldestFirst_IgnoraEntradasDeBaja(t *testing.T) {
	disposeID := int64(99)
	linked := entry(1, 10, t0)
	linked.DisposeID = &disposeID
	plain := entry(2, 4, t0.Add(time.Hour))

	d := inventory.DepleteOldestFirst([]*entity.StockEntry{linked, plain}, 3)

	assert.Equal(t, 10, linked.Quantity)
	assert.Equal(t, 1, plain.Quantity)
	assert.True(t, d.Complete())
}

func TestDepleteOldestFirst_CantidadNoPositiva(t *testing.T) {
	e1 := entry(1, 5, t0)
	d := inventory.DepleteOldestFirst([]*entity.StockEntry{e1}, 0)

	assert.Equal(t, 5, e1.Quantity)
	assert.Empty(t, d.Deductions)
	assert.True(t, d.Complete())
}
