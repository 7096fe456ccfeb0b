package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/activos-api/internal/domain/inventory"
)

func TestNewAvailability_RestaComprometido(t *testing.T) {
	a := inventory.NewAvailability(1, 20, 5)

	assert.Equal(t, 15, a.AvailableStock)
	assert.True(t, a.Covers(15))
	assert.False(t, a.Covers(16))
}

func TestNewAvailability_NuncaNegativa(t *testing.T) {
	a := inventory.NewAvailability(1, 3, 8)
	assert.Equal(t, 0, a.AvailableStock)
}

func TestLineTotal(t *testing.T) {
	assert.True(t, decimal.NewFromInt(150).Equal(inventory.LineTotal(3, decimal.NewFromInt(50))))
	assert.True(t, decimal.RequireFromString("7.50").Equal(inventory.LineTotal(3, decimal.RequireFromString("2.5"))))
}
