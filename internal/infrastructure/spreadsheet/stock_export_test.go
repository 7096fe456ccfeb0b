package spreadsheet

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/domain/entity"
)

func TestExportStock_DosHojas(t *testing.T) {
	disposeID := int64(4)
	rows := []inventory.StockSheetRow{
		{
			Entry: &entity.StockEntry{
				ID: 1, ItemID: 7, LocationID: 3, Quantity: 5,
				UnitPrice: decimal.NewFromInt(10), TotalPrice: decimal.NewFromInt(50),
				CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			},
			ItemName: "Mouse USB", LocationName: "Bodega central",
		},
		{
			Entry:    &entity.StockEntry{ID: 2, ItemID: 7, LocationID: 3, Quantity: 1, DisposeID: &disposeID},
			ItemName: "Mouse USB", LocationName: "Bodega central",
		},
	}
	avail := []inventory.AvailabilitySheetRow{{ItemName: "Mouse USB", TotalStock: 6, UsedInComponents: 2, AvailableStock: 4}}

	out, err := NewExcelExporter().ExportStock(context.Background(), rows, avail)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetStock, sheetAvailability}, f.GetSheetList())

	stock, err := f.GetRows(sheetStock)
	require.NoError(t, err)
	require.Len(t, stock, 3)
	assert.Equal(t, "Ítem", stock[0][1])
	assert.Equal(t, "Mouse USB", stock[1][1])
	assert.Equal(t, "5", stock[1][3])
	assert.Equal(t, "4", stock[2][6])

	av, err := f.GetRows(sheetAvailability)
	require.NoError(t, err)
	require.Len(t, av, 2)
	assert.Equal(t, []string{"Mouse USB", "6", "2", "4"}, av[1])
}

func TestExportStock_Vacio(t *testing.T) {
	out, err := NewExcelExporter().ExportStock(context.Background(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetStock)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
