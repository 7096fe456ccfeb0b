package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
)

func TestCheckAllocation_RespetaDisponible(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	s1 := f.store.SeedStock(f.itemID, f.locID, 5, 10, f.day(0))
	f.store.SeedComponent(pcID, f.itemID, s1, 4)

	assert.NoError(t, f.builds.CheckAllocation(context.Background(), f.itemID, 1))

	err := f.builds.CheckAllocation(context.Background(), f.itemID, 2)
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 1, insufficient.Available)
}

func TestAllocate_SinStockIDUsaEntradaMasAntigua(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	f.store.SeedStock(f.itemID, f.locID, 0, 10, f.day(0))
	oldest := f.store.SeedStock(f.itemID, f.locID, 2, 10, f.day(1))
	f.store.SeedStock(f.itemID, f.locID, 2, 10, f.day(2))

	c, err := f.builds.Allocate(context.Background(), inventory.AllocateInput{
		PCID: pcID, ItemID: f.itemID, Quantity: 1, CreatedBy: f.adminID,
	})
	require.NoError(t, err)
	require.NotNil(t, c.StockID)
	assert.Equal(t, oldest, *c.StockID)
	assert.Equal(t, entity.ComponentWorking, c.Status)
	assert.Equal(t, 2, f.store.Quantity(oldest))
}

func TestAllocate_EntradaDeOtroItem(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	otherItem := f.store.SeedItem("Teclado")
	foreign := f.store.SeedStock(otherItem, f.locID, 5, 10, f.day(0))

	_, err := f.builds.Allocate(context.Background(), inventory.AllocateInput{
		PCID: pcID, ItemID: f.itemID, StockID: &foreign, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAllocate_Validaciones(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	s1 := f.store.SeedStock(f.itemID, f.locID, 5, 10, f.day(0))
	ctx := context.Background()

	_, err := f.builds.Allocate(ctx, inventory.AllocateInput{PCID: 9999, ItemID: f.itemID, StockID: &s1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.builds.Allocate(ctx, inventory.AllocateInput{PCID: pcID, ItemID: f.itemID, StockID: &s1, Quantity: 1, Status: "Roto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing := int64(9999)
	_, err = f.builds.Allocate(ctx, inventory.AllocateInput{PCID: pcID, ItemID: f.itemID, StockID: &missing, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReturnToStock_RestauraYElimina(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	s1 := f.store.SeedStock(f.itemID, f.locID, 0, 10, f.day(0))
	compID := f.store.SeedComponent(pcID, f.itemID, s1, 2)

	entry, err := f.builds.ReturnToStock(context.Background(), compID)
	require.NoError(t, err)
	assert.Equal(t, s1, entry.ID)
	assert.Equal(t, 2, f.store.Quantity(s1))

	_, err = f.builds.Get(context.Background(), compID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReturnToStock_FalloRevierte(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	s1 := f.store.SeedStock(f.itemID, f.locID, 1, 10, f.day(0))
	compID := f.store.SeedComponent(pcID, f.itemID, s1, 2)
	f.store.FailUpdateQuantityOn = s1

	_, err := f.builds.ReturnToStock(context.Background(), compID)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, 1, f.store.Quantity(s1))

	c, err := f.builds.Get(context.Background(), compID)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Quantity, "el componente sigue registrado")
}

func TestReturnToStock_SinEntradaDeOrigen(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	s1 := f.store.SeedStock(f.itemID, f.locID, 1, 10, f.day(0))
	compID := f.store.SeedComponent(pcID, f.itemID, s1, 1)
	require.NoError(t, f.ledger.Delete(context.Background(), s1))

	_, err := f.builds.ReturnToStock(context.Background(), compID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.builds.ReturnToStock(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateComponent_AumentoExigeDisponibilidad(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	s1 := f.store.SeedStock(f.itemID, f.locID, 3, 10, f.day(0))
	compID := f.store.SeedComponent(pcID, f.itemID, s1, 2)
	ctx := context.Background()

	qty := 3
	c, err := f.builds.Update(ctx, compID, inventory.UpdateComponentInput{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Quantity)

	qty = 4
	_, err = f.builds.Update(ctx, compID, inventory.UpdateComponentInput{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	status := entity.ComponentMaintenance
	c, err = f.builds.Update(ctx, compID, inventory.UpdateComponentInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.ComponentMaintenance, c.Status)
}

func TestListByPC(t *testing.T) {
	f := newFixture()
	pcA := f.store.SeedPC("PC-A")
	pcB := f.store.SeedPC("PC-B")
	s1 := f.store.SeedStock(f.itemID, f.locID, 5, 10, f.day(0))
	f.store.SeedComponent(pcA, f.itemID, s1, 1)
	f.store.SeedComponent(pcA, f.itemID, s1, 1)
	f.store.SeedComponent(pcB, f.itemID, s1, 1)

	list, err := f.builds.ListByPC(context.Background(), pcA)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = f.builds.ListByPC(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
