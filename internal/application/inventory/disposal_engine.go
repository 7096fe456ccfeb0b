package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
	"github.com/jhoicas/activos-api/pkg/logger"
)

// DisposalEngine valida, crea, corrige y elimina bajas manteniendo el libro de stock consistente.
type DisposalEngine struct {
	txRunner     TxRunner
	ledger       *StockLedger
	availability *AvailabilityCalculator
	disposalRepo repository.DisposalRepository
	stockRepo    repository.StockEntryRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.StorageLocationRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewDisposalEngine construye el motor de bajas.
func NewDisposalEngine(
	txRunner TxRunner,
	ledger *StockLedger,
	availability *AvailabilityCalculator,
	disposalRepo repository.DisposalRepository,
	stockRepo repository.StockEntryRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.StorageLocationRepository,
	log *logger.Logger,
) *DisposalEngine {
	if log == nil {
		log = logger.Nop()
	}
	return &DisposalEngine{
		txRunner:     txRunner,
		ledger:       ledger,
		availability: availability,
		disposalRepo: disposalRepo,
		stockRepo:    stockRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		log:          log.Component("disposal_engine"),
		now:          time.Now,
	}
}

// ValidationResult resultado de la validación previa de una baja.
type ValidationResult struct {
	Valid            bool
	Message          string
	TotalStock       int
	UsedInComponents int
	AvailableStock   int
}

// CreateDisposalInput datos para registrar una baja.
type CreateDisposalInput struct {
	ItemID            int64
	LocationID        int64
	Quantity          int
	UnitDisposalValue decimal.Decimal
	Reason            string
	DisposalDate      *time.Time
	CreatedBy         int64
}

// UpdateDisposalInput campos opcionales a corregir en una baja.
type UpdateDisposalInput struct {
	Quantity          *int
	UnitDisposalValue *decimal.Decimal
	LocationID        *int64
	Reason            *string
}

// DisposalChange resultado de modificar o eliminar una baja.
// Warning no es un error de la operación: avisa que el libro de stock no se reajustó.
type DisposalChange struct {
	Disposal *entity.Disposal
	Warning  error
}

// StockWithDisposal entrada de stock junto a la baja que la originó (si la hay).
type StockWithDisposal struct {
	Entry    *entity.StockEntry
	Disposal *entity.Disposal
}

// Validate comprueba si quantity unidades del ítem se pueden dar de baja.
// Sólo lee; no bloquea filas.
func (e *DisposalEngine) Validate(ctx context.Context, itemID int64, quantity int) (*ValidationResult, error) {
	if quantity < 0 {
		return nil, domain.Invalid("quantity no puede ser negativa")
	}
	a, err := e.availability.Available(ctx, itemID)
	if err != nil {
		return nil, err
	}
	res := &ValidationResult{
		Valid:            a.Covers(quantity),
		TotalStock:       a.TotalStock,
		UsedInComponents: a.UsedInComponents,
		AvailableStock:   a.AvailableStock,
	}
	if !res.Valid {
		res.Message = fmt.Sprintf(
			"no se pueden dar de baja %d unidades: solo hay %d disponibles (%d en stock - %d en componentes de PC)",
			quantity, a.AvailableStock, a.TotalStock, a.UsedInComponents,
		)
	}
	return res, nil
}

// Create registra la baja y consume el stock más antiguo en una sola transacción.
// Si el stock no alcanza devuelve *domain.InsufficientStockError y no queda nada persistido.
func (e *DisposalEngine) Create(ctx context.Context, in CreateDisposalInput) (*entity.Disposal, error) {
	if in.CreatedBy <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if in.ItemID <= 0 || in.LocationID <= 0 {
		return nil, domain.Invalid("item_id y location_id son requeridos")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity debe ser mayor que 0")
	}
	if in.UnitDisposalValue.IsNegative() {
		return nil, domain.Invalid("disposal_value no puede ser negativo")
	}
	if err := e.ledger.ensureItemAndLocation(ctx, in.ItemID, in.LocationID); err != nil {
		return nil, err
	}

	now := e.now()
	d := &entity.Disposal{
		ItemID:            in.ItemID,
		LocationID:        in.LocationID,
		Quantity:          in.Quantity,
		UnitDisposalValue: in.UnitDisposalValue,
		Reason:            in.Reason,
		DisposalDate:      now,
		CreatedBy:         in.CreatedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.DisposalDate != nil {
		d.DisposalDate = *in.DisposalDate
	}
	d.RecomputeTotal()

	err := e.txRunner.Run(ctx, func(
		stockRepo repository.StockEntryRepository,
		disposalRepo repository.DisposalRepository,
		_ repository.PCComponentRepository,
	) error {
		if err := disposalRepo.Create(ctx, d); err != nil {
			return err
		}
		dep, err := e.ledger.DepleteInTx(ctx, stockRepo, in.ItemID, in.Quantity)
		if err != nil {
			return err
		}
		if !dep.Complete() {
			return &domain.InsufficientStockError{
				ItemID:    in.ItemID,
				Requested: in.Quantity,
				Available: dep.Depleted,
				Message: fmt.Sprintf(
					"stock insuficiente para la baja: solo se pudieron descontar %d de %d unidades",
					dep.Depleted, in.Quantity,
				),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Int64("disposal_id", d.ID).
		Int64("item_id", d.ItemID).
		Int("quantity", d.Quantity).
		Str("total_value", d.TotalValue.String()).
		Msg("baja registrada")
	return d, nil
}

// Update corrige los campos de la baja y recalcula TotalValue.
// Cambiar la cantidad no reajusta el libro de stock; en ese caso el resultado lleva Warning.
func (e *DisposalEngine) Update(ctx context.Context, id int64, in UpdateDisposalInput) (*DisposalChange, error) {
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, domain.Invalid("quantity debe ser mayor que 0")
	}
	if in.UnitDisposalValue != nil && in.UnitDisposalValue.IsNegative() {
		return nil, domain.Invalid("disposal_value no puede ser negativo")
	}
	d, err := e.disposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.LocationID != nil {
		loc, err := e.locationRepo.GetByID(ctx, *in.LocationID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, fmt.Errorf("ubicación %d: %w", *in.LocationID, domain.ErrNotFound)
		}
		d.LocationID = *in.LocationID
	}

	previous := d.Quantity
	if in.Quantity != nil {
		d.Quantity = *in.Quantity
	}
	if in.UnitDisposalValue != nil {
		d.UnitDisposalValue = *in.UnitDisposalValue
	}
	if in.Reason != nil {
		d.Reason = *in.Reason
	}
	d.RecomputeTotal()
	d.UpdatedAt = e.now()
	if err := e.disposalRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	out := &DisposalChange{Disposal: d}
	if d.Quantity != previous {
		out.Warning = domain.ErrLedgerNotReconciled
		e.log.Warn().
			Int64("disposal_id", d.ID).
			Int64("item_id", d.ItemID).
			Int("previous_quantity", previous).
			Int("quantity", d.Quantity).
			Msg("cantidad de baja modificada sin reajustar el stock")
	}
	return out, nil
}

// Delete elimina la baja. Las unidades ya descontadas no vuelven al stock: el resultado lleva Warning.
// Las entradas creadas con dispose_id de esta baja quedan con dispose_id NULL.
func (e *DisposalEngine) Delete(ctx context.Context, id int64) (*DisposalChange, error) {
	d, err := e.disposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := e.disposalRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	e.log.Warn().
		Int64("disposal_id", d.ID).
		Int64("item_id", d.ItemID).
		Int("quantity", d.Quantity).
		Msg("baja eliminada sin devolver unidades al stock")
	return &DisposalChange{Disposal: d, Warning: domain.ErrLedgerNotReconciled}, nil
}

// Get obtiene una baja; ErrNotFound si no existe.
func (e *DisposalEngine) Get(ctx context.Context, id int64) (*entity.Disposal, error) {
	d, err := e.disposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// List lista bajas, más recientes primero.
func (e *DisposalEngine) List(ctx context.Context, limit, offset int) ([]*entity.Disposal, error) {
	return e.disposalRepo.List(ctx, limit, offset)
}

// ListByItem lista las bajas de un ítem.
func (e *DisposalEngine) ListByItem(ctx context.Context, itemID int64) ([]*entity.Disposal, error) {
	return e.disposalRepo.ListByItem(ctx, itemID)
}

// GetWithStock devuelve la baja y las entradas de stock creadas con su dispose_id.
func (e *DisposalEngine) GetWithStock(ctx context.Context, id int64) (*entity.Disposal, []*entity.StockEntry, error) {
	d, err := e.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	entries, err := e.stockRepo.ListByDisposal(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return d, entries, nil
}

// StockWithDisposal lista las entradas del ítem con la baja asociada cuando tienen dispose_id.
func (e *DisposalEngine) StockWithDisposal(ctx context.Context, itemID int64) ([]StockWithDisposal, error) {
	item, err := e.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %d: %w", itemID, domain.ErrNotFound)
	}
	entries, err := e.stockRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]*entity.Disposal)
	out := make([]StockWithDisposal, 0, len(entries))
	for _, s := range entries {
		row := StockWithDisposal{Entry: s}
		if s.DisposeID != nil {
			d, ok := seen[*s.DisposeID]
			if !ok {
				d, err = e.disposalRepo.GetByID(ctx, *s.DisposeID)
				if err != nil {
					return nil, err
				}
				seen[*s.DisposeID] = d
			}
			row.Disposal = d
		}
		out = append(out, row)
	}
	return out, nil
}
