package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/activos-api/internal/domain/entity"
)

func TestDisposal_RecomputeTotal(t *testing.T) {
	d := &entity.Disposal{Quantity: 3, UnitDisposalValue: decimal.NewFromInt(50)}
	d.RecomputeTotal()
	assert.True(t, decimal.NewFromInt(150).Equal(d.TotalValue))

	d.Quantity = 4
	d.RecomputeTotal()
	assert.True(t, decimal.NewFromInt(200).Equal(d.TotalValue))
}

func TestCanWrite(t *testing.T) {
	assert.True(t, entity.CanWrite(entity.RoleSuperAdmin))
	assert.True(t, entity.CanWrite(entity.RoleAdmin))
	assert.False(t, entity.CanWrite(entity.RoleViewer))
	assert.False(t, entity.CanWrite(entity.RoleGuest))
}

func TestIsValidComponentStatus(t *testing.T) {
	assert.True(t, entity.IsValidComponentStatus("Not Working"))
	assert.False(t, entity.IsValidComponentStatus("Broken"))
}
