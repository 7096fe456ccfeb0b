package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// maxExportRows tope de entradas en la exportación del libro de stock.
const maxExportRows = 10000

// ReportService genera el acta de baja y la exportación del libro de stock.
type ReportService struct {
	engine       *DisposalEngine
	availability *AvailabilityCalculator
	stockRepo    repository.StockEntryRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.StorageLocationRepository
	accountRepo  repository.AccountRepository
	pdf          DisposalPDFGenerator
	sheet        StockSheetExporter
}

// NewReportService construye el servicio de reportes.
func NewReportService(
	engine *DisposalEngine,
	availability *AvailabilityCalculator,
	stockRepo repository.StockEntryRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.StorageLocationRepository,
	accountRepo repository.AccountRepository,
	pdf DisposalPDFGenerator,
	sheet StockSheetExporter,
) *ReportService {
	return &ReportService{
		engine:       engine,
		availability: availability,
		stockRepo:    stockRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		accountRepo:  accountRepo,
		pdf:          pdf,
		sheet:        sheet,
	}
}

// DisposalCertificatePDF arma el acta de la baja id y la renderiza en PDF.
func (s *ReportService) DisposalCertificatePDF(ctx context.Context, id int64) ([]byte, error) {
	d, linked, err := s.engine.GetWithStock(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, d.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %d: %w", d.ItemID, domain.ErrNotFound)
	}
	loc, err := s.locationRepo.GetByID(ctx, d.LocationID)
	if err != nil {
		return nil, err
	}
	cert := DisposalCertificate{Disposal: d, Item: item, Location: loc, LinkedStock: linked}
	if acc, err := s.accountRepo.GetByID(ctx, d.CreatedBy); err == nil && acc != nil {
		cert.IssuedByName = strings.TrimSpace(acc.FirstName + " " + acc.LastName)
	}
	return s.pdf.GenerateDisposalPDF(ctx, cert)
}

// ExportStock exporta las entradas y la disponibilidad por ítem a XLSX.
func (s *ReportService) ExportStock(ctx context.Context) ([]byte, error) {
	entries, err := s.stockRepo.List(ctx, maxExportRows, 0)
	if err != nil {
		return nil, err
	}
	items := make(map[int64]*entity.Item)
	locations := make(map[int64]string)
	var order []int64

	rows := make([]StockSheetRow, 0, len(entries))
	for _, e := range entries {
		item, ok := items[e.ItemID]
		if !ok {
			item, err = s.itemRepo.GetByID(ctx, e.ItemID)
			if err != nil {
				return nil, err
			}
			items[e.ItemID] = item
			order = append(order, e.ItemID)
		}
		locName, ok := locations[e.LocationID]
		if !ok {
			loc, err := s.locationRepo.GetByID(ctx, e.LocationID)
			if err != nil {
				return nil, err
			}
			if loc != nil {
				locName = loc.Name
			}
			locations[e.LocationID] = locName
		}
		row := StockSheetRow{Entry: e, LocationName: locName}
		if item != nil {
			row.ItemName = item.Name
		}
		rows = append(rows, row)
	}

	avail := make([]AvailabilitySheetRow, 0, len(order))
	for _, itemID := range order {
		item := items[itemID]
		if item == nil {
			continue
		}
		a, err := s.availability.Available(ctx, itemID)
		if err != nil {
			return nil, err
		}
		avail = append(avail, AvailabilitySheetRow{
			ItemName:         item.Name,
			TotalStock:       a.TotalStock,
			UsedInComponents: a.UsedInComponents,
			AvailableStock:   a.AvailableStock,
		})
	}
	return s.sheet.ExportStock(ctx, rows, avail)
}
