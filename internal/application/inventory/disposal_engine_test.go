package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/domain"
)

func (f *fixture) disposalInput(qty int) inventory.CreateDisposalInput {
	return inventory.CreateDisposalInput{
		ItemID:            f.itemID,
		LocationID:        f.locID,
		Quantity:          qty,
		UnitDisposalValue: decimal.NewFromInt(50),
		Reason:            "Dañado",
		CreatedBy:         f.adminID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_DescuentaComponentes(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	s1 := f.store.SeedStock(f.itemID, f.locID, 10, 5, f.day(0))
	f.store.SeedComponent(pcID, f.itemID, s1, 3)

	res, err := f.engine.Validate(context.Background(), f.itemID, 8)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 10, res.TotalStock)
	assert.Equal(t, 3, res.UsedInComponents)
	assert.Equal(t, 7, res.AvailableStock)
	assert.Contains(t, res.Message, "8")
	assert.Contains(t, res.Message, "7")

	res, err = f.engine.Validate(context.Background(), f.itemID, 7)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Message)
}

func TestValidate_ItemInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.engine.Validate(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidate_NoModificaStock(t *testing.T) {
	f := newFixture()
	s1 := f.store.SeedStock(f.itemID, f.locID, 4, 5, f.day(0))

	_, err := f.engine.Validate(context.Background(), f.itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, f.store.Quantity(s1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDisposal_ConsumeFIFOYCalculaTotal(t *testing.T) {
	f := newFixture()
	s1 := f.store.SeedStock(f.itemID, f.locID, 2, 5, f.day(0))
	s2 := f.store.SeedStock(f.itemID, f.locID, 5, 5, f.day(1))

	d, err := f.engine.Create(context.Background(), f.disposalInput(3))
	require.NoError(t, err)
	assert.NotZero(t, d.ID)
	assert.True(t, decimal.NewFromInt(150).Equal(d.TotalValue))
	assert.Equal(t, 0, f.store.Quantity(s1))
	assert.Equal(t, 4, f.store.Quantity(s2))

	stored, err := f.engine.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Quantity)
}

func TestCreateDisposal_StockInsuficienteEsAtomico(t *testing.T) {
	f := newFixture()
	s1 := f.store.SeedStock(f.itemID, f.locID, 2, 5, f.day(0))

	_, err := f.engine.Create(context.Background(), f.disposalInput(3))

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, f.store.Quantity(s1))

	list, err := f.engine.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list, "la baja no debe quedar registrada")
}

func TestCreateDisposal_IgnoraEntradasDeBaja(t *testing.T) {
	f := newFixture()
	s1 := f.store.SeedStock(f.itemID, f.locID, 2, 5, f.day(0))

	first, err := f.engine.Create(context.Background(), f.disposalInput(1))
	require.NoError(t, err)
	_, err = f.ledger.AddEntry(context.Background(), inventory.AddEntryInput{
		ItemID: f.itemID, LocationID: f.locID, Quantity: 10, CreatedBy: f.adminID, DisposeID: &first.ID,
	})
	require.NoError(t, err)

	_, err = f.engine.Create(context.Background(), f.disposalInput(2))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "las entradas con dispose_id no se consumen")
	assert.Equal(t, 1, f.store.Quantity(s1))
}

func TestCreateDisposal_Validaciones(t *testing.T) {
	f := newFixture()
	f.store.SeedStock(f.itemID, f.locID, 5, 5, f.day(0))
	ctx := context.Background()

	in := f.disposalInput(0)
	_, err := f.engine.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = f.disposalInput(1)
	in.UnitDisposalValue = decimal.NewFromInt(-1)
	_, err = f.engine.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = f.disposalInput(1)
	in.CreatedBy = 0
	_, err = f.engine.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDisposal_RecalculaTotalYAvisa(t *testing.T) {
	f := newFixture()
	s1 := f.store.SeedStock(f.itemID, f.locID, 10, 5, f.day(0))
	d, err := f.engine.Create(context.Background(), f.disposalInput(3))
	require.NoError(t, err)

	qty := 4
	out, err := f.engine.Update(context.Background(), d.ID, inventory.UpdateDisposalInput{Quantity: &qty})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(out.Disposal.TotalValue))
	assert.ErrorIs(t, out.Warning, domain.ErrLedgerNotReconciled)
	assert.Equal(t, 7, f.store.Quantity(s1), "el libro no se reajusta al corregir la cantidad")

	reason := "Obsoleto"
	out, err = f.engine.Update(context.Background(), d.ID, inventory.UpdateDisposalInput{Reason: &reason})
	require.NoError(t, err)
	assert.NoError(t, out.Warning)
	assert.Equal(t, "Obsoleto", out.Disposal.Reason)
}

func TestUpdateDisposal_Inexistente(t *testing.T) {
	f := newFixture()
	_, err := f.engine.Update(context.Background(), 9999, inventory.UpdateDisposalInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteDisposal_NoDevuelveStock(t *testing.T) {
	f := newFixture()
	s1 := f.store.SeedStock(f.itemID, f.locID, 5, 5, f.day(0))
	d, err := f.engine.Create(context.Background(), f.disposalInput(2))
	require.NoError(t, err)

	out, err := f.engine.Delete(context.Background(), d.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, out.Warning, domain.ErrLedgerNotReconciled)
	assert.Equal(t, 3, f.store.Quantity(s1))

	_, err = f.engine.Get(context.Background(), d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockWithDisposal(t *testing.T) {
	f := newFixture()
	f.store.SeedStock(f.itemID, f.locID, 5, 5, f.day(0))
	d, err := f.engine.Create(context.Background(), f.disposalInput(1))
	require.NoError(t, err)
	linked, err := f.ledger.AddEntry(context.Background(), inventory.AddEntryInput{
		ItemID: f.itemID, LocationID: f.locID, Quantity: 1, CreatedBy: f.adminID, DisposeID: &d.ID,
	})
	require.NoError(t, err)

	rows, err := f.engine.StockWithDisposal(context.Background(), f.itemID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].Disposal)
	require.NotNil(t, rows[1].Disposal)
	assert.Equal(t, d.ID, rows[1].Disposal.ID)

	got, entries, err := f.engine.GetWithStock(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, linked.ID, entries[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: alta, instalación en PC, baja y devolución al stock.
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_AltaComponenteBajaDevolucion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	pcID := f.store.SeedPC("PC-LAB-01")

	s1, err := f.ledger.AddEntry(ctx, inventory.AddEntryInput{
		ItemID: f.itemID, LocationID: f.locID, Quantity: 10, UnitPrice: decimal.NewFromInt(20), CreatedBy: f.adminID,
	})
	require.NoError(t, err)

	require.NoError(t, f.builds.CheckAllocation(ctx, f.itemID, 3))
	comp, err := f.builds.Allocate(ctx, inventory.AllocateInput{
		PCID: pcID, ItemID: f.itemID, StockID: &s1.ID, Quantity: 3, CreatedBy: f.adminID,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, f.store.Quantity(s1.ID), "asignar no descuenta la entrada")

	a, err := f.calc.Available(ctx, f.itemID)
	require.NoError(t, err)
	assert.Equal(t, 7, a.AvailableStock)

	res, err := f.engine.Validate(ctx, f.itemID, 8)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	_, err = f.engine.Create(ctx, f.disposalInput(7))
	require.NoError(t, err)
	assert.Equal(t, 3, f.store.Quantity(s1.ID))

	a, err = f.calc.Available(ctx, f.itemID)
	require.NoError(t, err)
	assert.Equal(t, 3, a.TotalStock)
	assert.Equal(t, 0, a.AvailableStock)

	entry, err := f.builds.ReturnToStock(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, s1.ID, entry.ID)
	assert.Equal(t, 6, f.store.Quantity(s1.ID))

	a, err = f.calc.Available(ctx, f.itemID)
	require.NoError(t, err)
	assert.Equal(t, 6, a.TotalStock)
	assert.Equal(t, 0, a.UsedInComponents)
	assert.Equal(t, 6, a.AvailableStock)
}
