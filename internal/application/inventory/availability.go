package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/activos-api/internal/domain"
	domaininv "github.com/jhoicas/activos-api/internal/domain/inventory"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// AvailabilityCalculator deriva el stock disponible de un ítem en cada consulta:
// suma de entradas positivas menos lo comprometido en componentes de PC.
// Las lecturas son best-effort; la verdad la da el consumo transaccional.
type AvailabilityCalculator struct {
	stockRepo     repository.StockEntryRepository
	componentRepo repository.PCComponentRepository
	itemRepo      repository.ItemRepository
}

// NewAvailabilityCalculator construye la calculadora.
func NewAvailabilityCalculator(
	stockRepo repository.StockEntryRepository,
	componentRepo repository.PCComponentRepository,
	itemRepo repository.ItemRepository,
) *AvailabilityCalculator {
	return &AvailabilityCalculator{stockRepo: stockRepo, componentRepo: componentRepo, itemRepo: itemRepo}
}

// Available devuelve TotalStock, UsedInComponents y AvailableStock del ítem.
func (c *AvailabilityCalculator) Available(ctx context.Context, itemID int64) (domaininv.Availability, error) {
	if itemID <= 0 {
		return domaininv.Availability{}, domain.Invalid("item_id es requerido")
	}
	item, err := c.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return domaininv.Availability{}, err
	}
	if item == nil {
		return domaininv.Availability{}, fmt.Errorf("ítem %d: %w", itemID, domain.ErrNotFound)
	}
	total, err := c.stockRepo.SumPositiveByItem(ctx, itemID)
	if err != nil {
		return domaininv.Availability{}, err
	}
	used, err := c.componentRepo.SumQuantityByItem(ctx, itemID)
	if err != nil {
		return domaininv.Availability{}, err
	}
	return domaininv.NewAvailability(itemID, total, used), nil
}

// Ensure devuelve *domain.InsufficientStockError si quantity supera lo disponible.
func (c *AvailabilityCalculator) Ensure(ctx context.Context, itemID int64, quantity int) error {
	a, err := c.Available(ctx, itemID)
	if err != nil {
		return err
	}
	if a.Covers(quantity) {
		return nil
	}
	return &domain.InsufficientStockError{
		ItemID:    itemID,
		Requested: quantity,
		Available: a.AvailableStock,
		Message:   shortfallMessage(quantity, a),
	}
}

func shortfallMessage(quantity int, a domaininv.Availability) string {
	return fmt.Sprintf(
		"no se pueden usar %d unidades: solo hay %d disponibles (%d en stock - %d en componentes de PC)",
		quantity, a.AvailableStock, a.TotalStock, a.UsedInComponents,
	)
}
