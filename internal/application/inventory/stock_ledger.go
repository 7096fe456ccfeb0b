package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	domaininv "github.com/jhoicas/activos-api/internal/domain/inventory"
	"github.com/jhoicas/activos-api/internal/domain/repository"
)

// StockLedger administra las entradas del libro de stock y la primitiva de consumo (FIFO).
type StockLedger struct {
	txRunner     TxRunner
	stockRepo    repository.StockEntryRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.StorageLocationRepository
	now          func() time.Time
}

// NewStockLedger construye el libro de stock.
func NewStockLedger(
	txRunner TxRunner,
	stockRepo repository.StockEntryRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.StorageLocationRepository,
) *StockLedger {
	return &StockLedger{
		txRunner:     txRunner,
		stockRepo:    stockRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		now:          time.Now,
	}
}

// AddEntryInput entrada para dar de alta stock.
type AddEntryInput struct {
	ItemID     int64
	LocationID int64
	Quantity   int
	UnitPrice  decimal.Decimal
	Remarks    string
	CreatedBy  int64
	DisposeID  *int64 // sólo si la entrada nace de una baja (p. ej. unidades recuperadas)
}

// UpdateEntryInput corrección administrativa de una entrada.
type UpdateEntryInput struct {
	Quantity   int
	LocationID int64
	UnitPrice  decimal.Decimal
	Remarks    string
}

// AddEntry crea una entrada con TotalPrice = Quantity * UnitPrice.
func (l *StockLedger) AddEntry(ctx context.Context, in AddEntryInput) (*entity.StockEntry, error) {
	if in.CreatedBy <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if in.ItemID <= 0 || in.LocationID <= 0 {
		return nil, domain.Invalid("item_id y location_id son requeridos")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity debe ser mayor que 0")
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.Invalid("price no puede ser negativo")
	}
	if err := l.ensureItemAndLocation(ctx, in.ItemID, in.LocationID); err != nil {
		return nil, err
	}

	now := l.now()
	createdBy := in.CreatedBy
	entry := &entity.StockEntry{
		ItemID:     in.ItemID,
		LocationID: in.LocationID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TotalPrice: domaininv.LineTotal(in.Quantity, in.UnitPrice),
		Remarks:    in.Remarks,
		DisposeID:  in.DisposeID,
		CreatedBy:  &createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := l.txRunner.Run(ctx, func(
		stockRepo repository.StockEntryRepository,
		disposalRepo repository.DisposalRepository,
		_ repository.PCComponentRepository,
	) error {
		if in.DisposeID != nil {
			d, err := disposalRepo.GetByID(ctx, *in.DisposeID)
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("baja %d: %w", *in.DisposeID, domain.ErrNotFound)
			}
			if d.ItemID != in.ItemID {
				return domain.Invalid("la baja %d no corresponde al ítem %d", *in.DisposeID, in.ItemID)
			}
		}
		return stockRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DepleteInTx consume needed unidades del ítem, más antiguas primero, usando el repo de la tx del caller.
// Bloquea las entradas candidatas. Si el stock no alcanza no escribe nada y devuelve el resultado
// con Remainder > 0: el caller debe abortar la transacción.
func (l *StockLedger) DepleteInTx(
	ctx context.Context,
	stockRepo repository.StockEntryRepository,
	itemID int64,
	needed int,
) (domaininv.Depletion, error) {
	entries, err := stockRepo.ListDepletableForUpdate(ctx, itemID)
	if err != nil {
		return domaininv.Depletion{}, err
	}
	dep := domaininv.DepleteOldestFirst(entries, needed)
	if !dep.Complete() {
		return dep, nil
	}
	for _, d := range dep.Deductions {
		if err := stockRepo.UpdateQuantity(ctx, d.EntryID, d.Left); err != nil {
			return dep, err
		}
	}
	return dep, nil
}

// DepleteOldestFirst consume stock en su propia transacción. Con faltante devuelve
// *domain.InsufficientStockError y no persiste ningún cambio.
func (l *StockLedger) DepleteOldestFirst(ctx context.Context, itemID int64, needed int) (domaininv.Depletion, error) {
	if needed <= 0 {
		return domaininv.Depletion{}, domain.Invalid("quantity debe ser mayor que 0")
	}
	var dep domaininv.Depletion
	err := l.txRunner.Run(ctx, func(
		stockRepo repository.StockEntryRepository,
		_ repository.DisposalRepository,
		_ repository.PCComponentRepository,
	) error {
		var err error
		dep, err = l.DepleteInTx(ctx, stockRepo, itemID, needed)
		if err != nil {
			return err
		}
		if !dep.Complete() {
			return &domain.InsufficientStockError{ItemID: itemID, Requested: needed, Available: dep.Depleted}
		}
		return nil
	})
	return dep, err
}

// RestoreInTx suma quantity a una entrada existente (misma transacción del caller).
func (l *StockLedger) RestoreInTx(
	ctx context.Context,
	stockRepo repository.StockEntryRepository,
	stockEntryID int64,
	quantity int,
) (*entity.StockEntry, error) {
	if quantity <= 0 {
		return nil, domain.Invalid("quantity a devolver debe ser mayor que 0")
	}
	entry, err := stockRepo.GetForUpdate(ctx, stockEntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("entrada de stock %d: %w", stockEntryID, domain.ErrNotFound)
	}
	entry.Quantity += quantity
	if err := stockRepo.UpdateQuantity(ctx, entry.ID, entry.Quantity); err != nil {
		return nil, err
	}
	return entry, nil
}

// RestoreQuantity devuelve quantity a la entrada stockEntryID en su propia transacción.
func (l *StockLedger) RestoreQuantity(ctx context.Context, stockEntryID int64, quantity int) (*entity.StockEntry, error) {
	var entry *entity.StockEntry
	err := l.txRunner.Run(ctx, func(
		stockRepo repository.StockEntryRepository,
		_ repository.DisposalRepository,
		_ repository.PCComponentRepository,
	) error {
		var err error
		entry, err = l.RestoreInTx(ctx, stockRepo, stockEntryID, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetByID obtiene una entrada; ErrNotFound si no existe.
func (l *StockLedger) GetByID(ctx context.Context, id int64) (*entity.StockEntry, error) {
	entry, err := l.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

// List lista entradas, más recientes primero.
func (l *StockLedger) List(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error) {
	return l.stockRepo.List(ctx, limit, offset)
}

// ListByItem lista las entradas de un ítem.
func (l *StockLedger) ListByItem(ctx context.Context, itemID int64) ([]*entity.StockEntry, error) {
	return l.stockRepo.ListByItem(ctx, itemID)
}

// Update corrige cantidad, ubicación, precio y observaciones; TotalPrice se recalcula con los valores corregidos.
func (l *StockLedger) Update(ctx context.Context, id int64, in UpdateEntryInput) (*entity.StockEntry, error) {
	if in.Quantity < 0 {
		return nil, domain.Invalid("quantity no puede ser negativa")
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.Invalid("price no puede ser negativo")
	}
	if in.LocationID <= 0 {
		return nil, domain.Invalid("location_id es requerido")
	}
	loc, err := l.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("ubicación %d: %w", in.LocationID, domain.ErrNotFound)
	}

	var entry *entity.StockEntry
	err = l.txRunner.Run(ctx, func(
		stockRepo repository.StockEntryRepository,
		_ repository.DisposalRepository,
		_ repository.PCComponentRepository,
	) error {
		var err error
		entry, err = stockRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		entry.Quantity = in.Quantity
		entry.LocationID = in.LocationID
		entry.UnitPrice = in.UnitPrice
		entry.TotalPrice = domaininv.LineTotal(in.Quantity, in.UnitPrice)
		entry.Remarks = in.Remarks
		entry.UpdatedAt = l.now()
		return stockRepo.Update(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete elimina una entrada; los componentes que la referencian quedan con stock_id NULL.
func (l *StockLedger) Delete(ctx context.Context, id int64) error {
	entry, err := l.stockRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return l.stockRepo.Delete(ctx, id)
}

func (l *StockLedger) ensureItemAndLocation(ctx context.Context, itemID, locationID int64) error {
	item, err := l.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("ítem %d: %w", itemID, domain.ErrNotFound)
	}
	loc, err := l.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return fmt.Errorf("ubicación %d: %w", locationID, domain.ErrNotFound)
	}
	return nil
}
