package inventory

import (
	"context"

	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback de todo lo escrito; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockEntryRepository,
		disposalRepo repository.DisposalRepository,
		componentRepo repository.PCComponentRepository,
	) error) error
}

// DisposalPDFGenerator genera el acta de baja en PDF.
type DisposalPDFGenerator interface {
	GenerateDisposalPDF(ctx context.Context, cert DisposalCertificate) ([]byte, error)
}

// StockSheetExporter exporta el libro de stock a una hoja de cálculo.
type StockSheetExporter interface {
	ExportStock(ctx context.Context, rows []StockSheetRow, availability []AvailabilitySheetRow) ([]byte, error)
}

// DisposalCertificate datos para el acta de baja.
type DisposalCertificate struct {
	Disposal     *entity.Disposal
	Item         *entity.Item
	Location     *entity.StorageLocation
	LinkedStock  []*entity.StockEntry
	IssuedByName string
}

// StockSheetRow fila del libro de stock exportado.
type StockSheetRow struct {
	Entry        *entity.StockEntry
	ItemName     string
	LocationName string
}

// AvailabilitySheetRow fila de disponibilidad por ítem.
type AvailabilitySheetRow struct {
	ItemName         string
	TotalStock       int
	UsedInComponents int
	AvailableStock   int
}
