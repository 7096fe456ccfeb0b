package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/domain"
)

type capturePDF struct{ got inventory.DisposalCertificate }

func (c *capturePDF) GenerateDisposalPDF(_ context.Context, cert inventory.DisposalCertificate) ([]byte, error) {
	c.got = cert
	return []byte("%PDF-fake"), nil
}

type captureSheet struct {
	rows  []inventory.StockSheetRow
	avail []inventory.AvailabilitySheetRow
}

func (c *captureSheet) ExportStock(_ context.Context, rows []inventory.StockSheetRow, avail []inventory.AvailabilitySheetRow) ([]byte, error) {
	c.rows, c.avail = rows, avail
	return []byte("xlsx"), nil
}

func newReportService(f *fixture, pdf *capturePDF, sheet *captureSheet) *inventory.ReportService {
	s := f.store
	return inventory.NewReportService(
		f.engine, f.calc,
		s.StockRepo(), s.ItemRepo(), s.LocationRepo(), s.AccountRepo(),
		pdf, sheet,
	)
}

func TestDisposalCertificatePDF(t *testing.T) {
	f := newFixture()
	f.store.SeedStock(f.itemID, f.locID, 5, 10, f.day(0))
	d, err := f.engine.Create(context.Background(), f.disposalInput(2))
	require.NoError(t, err)

	pdf := &capturePDF{}
	out, err := newReportService(f, pdf, &captureSheet{}).DisposalCertificatePDF(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "Mouse USB", pdf.got.Item.Name)
	assert.Equal(t, "Bodega central", pdf.got.Location.Name)
	assert.Equal(t, "Ana Pérez", pdf.got.IssuedByName)

	_, err = newReportService(f, pdf, &captureSheet{}).DisposalCertificatePDF(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportStock_IncluyeDisponibilidad(t *testing.T) {
	f := newFixture()
	pcID := f.store.SeedPC("PC-01")
	s1 := f.store.SeedStock(f.itemID, f.locID, 4, 10, f.day(0))
	f.store.SeedStock(f.itemID, f.locID, 2, 10, f.day(1))
	f.store.SeedComponent(pcID, f.itemID, s1, 1)

	sheet := &captureSheet{}
	_, err := newReportService(f, &capturePDF{}, sheet).ExportStock(context.Background())
	require.NoError(t, err)
	require.Len(t, sheet.rows, 2)
	assert.Equal(t, "Mouse USB", sheet.rows[0].ItemName)
	assert.Equal(t, "Bodega central", sheet.rows[0].LocationName)
	require.Len(t, sheet.avail, 1)
	assert.Equal(t, 6, sheet.avail[0].TotalStock)
	assert.Equal(t, 1, sheet.avail[0].UsedInComponents)
	assert.Equal(t, 5, sheet.avail[0].AvailableStock)
}
