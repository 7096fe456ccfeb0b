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

// PCBuildManager asigna ítems del stock a PCs y los devuelve al stock.
// Asignar no descuenta la entrada de origen: lo comprometido se resta en AvailabilityCalculator.
type PCBuildManager struct {
	txRunner      TxRunner
	ledger        *StockLedger
	availability  *AvailabilityCalculator
	componentRepo repository.PCComponentRepository
	pcRepo        repository.PCRepository
	itemRepo      repository.ItemRepository
	stockRepo     repository.StockEntryRepository
	log           *logger.Logger
	now           func() time.Time
}

// NewPCBuildManager construye el gestor de componentes.
func NewPCBuildManager(
	txRunner TxRunner,
	ledger *StockLedger,
	availability *AvailabilityCalculator,
	componentRepo repository.PCComponentRepository,
	pcRepo repository.PCRepository,
	itemRepo repository.ItemRepository,
	stockRepo repository.StockEntryRepository,
	log *logger.Logger,
) *PCBuildManager {
	if log == nil {
		log = logger.Nop()
	}
	return &PCBuildManager{
		txRunner:      txRunner,
		ledger:        ledger,
		availability:  availability,
		componentRepo: componentRepo,
		pcRepo:        pcRepo,
		itemRepo:      itemRepo,
		stockRepo:     stockRepo,
		log:           log.Component("pc_build"),
		now:           time.Now,
	}
}

// AllocateInput datos para instalar un componente en un PC.
// Si StockID es nil se usa la entrada más antigua del ítem con cantidad positiva.
type AllocateInput struct {
	PCID      int64
	ItemID    int64
	StockID   *int64
	Quantity  int
	UnitPrice decimal.Decimal
	Status    string
	Remarks   string
	CreatedBy int64
}

// UpdateComponentInput campos opcionales a corregir en un componente.
type UpdateComponentInput struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
	Status    *string
	Remarks   *string
}

// CheckAllocation verifica que quantity unidades del ítem estén disponibles.
func (m *PCBuildManager) CheckAllocation(ctx context.Context, itemID int64, quantity int) error {
	if quantity <= 0 {
		return domain.Invalid("quantity debe ser mayor que 0")
	}
	return m.availability.Ensure(ctx, itemID, quantity)
}

// Allocate registra el componente. No verifica disponibilidad: el caller invoca CheckAllocation antes.
func (m *PCBuildManager) Allocate(ctx context.Context, in AllocateInput) (*entity.PCComponent, error) {
	if in.PCID <= 0 || in.ItemID <= 0 {
		return nil, domain.Invalid("pc_id e item_id son requeridos")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity debe ser mayor que 0")
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.Invalid("unit_price no puede ser negativo")
	}
	if in.Status == "" {
		in.Status = entity.ComponentWorking
	}
	if !entity.IsValidComponentStatus(in.Status) {
		return nil, domain.Invalid("status %q no válido", in.Status)
	}
	pc, err := m.pcRepo.GetByID(ctx, in.PCID)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, fmt.Errorf("PC %d: %w", in.PCID, domain.ErrNotFound)
	}
	item, err := m.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %d: %w", in.ItemID, domain.ErrNotFound)
	}

	now := m.now()
	c := &entity.PCComponent{
		PCID:      in.PCID,
		ItemID:    in.ItemID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Status:    in.Status,
		Remarks:   in.Remarks,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.CreatedBy > 0 {
		createdBy := in.CreatedBy
		c.CreatedBy = &createdBy
	}

	err = m.txRunner.Run(ctx, func(
		stockRepo repository.StockEntryRepository,
		_ repository.DisposalRepository,
		componentRepo repository.PCComponentRepository,
	) error {
		entry, err := m.sourceEntry(ctx, stockRepo, in)
		if err != nil {
			return err
		}
		stockID := entry.ID
		c.StockID = &stockID
		return componentRepo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	m.log.Info().
		Int64("component_id", c.ID).
		Int64("pc_id", c.PCID).
		Int64("item_id", c.ItemID).
		Int64("stock_id", *c.StockID).
		Int("quantity", c.Quantity).
		Msg("componente asignado")
	return c, nil
}

func (m *PCBuildManager) sourceEntry(
	ctx context.Context,
	stockRepo repository.StockEntryRepository,
	in AllocateInput,
) (*entity.StockEntry, error) {
	if in.StockID != nil {
		entry, err := stockRepo.GetForUpdate(ctx, *in.StockID)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, fmt.Errorf("entrada de stock %d: %w", *in.StockID, domain.ErrNotFound)
		}
		if entry.ItemID != in.ItemID {
			return nil, domain.Invalid("la entrada de stock %d no corresponde al ítem %d", entry.ID, in.ItemID)
		}
		return entry, nil
	}
	entries, err := stockRepo.ListDepletableForUpdate(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDepletable() {
			return e, nil
		}
	}
	return nil, &domain.InsufficientStockError{ItemID: in.ItemID, Requested: in.Quantity}
}

// ReturnToStock devuelve la cantidad del componente a su entrada de origen y elimina el componente,
// ambos en la misma transacción.
func (m *PCBuildManager) ReturnToStock(ctx context.Context, componentID int64) (*entity.StockEntry, error) {
	var entry *entity.StockEntry
	var returned *entity.PCComponent
	err := m.txRunner.Run(ctx, func(
		stockRepo repository.StockEntryRepository,
		_ repository.DisposalRepository,
		componentRepo repository.PCComponentRepository,
	) error {
		c, err := componentRepo.GetForUpdate(ctx, componentID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.StockID == nil {
			return domain.Invalid("el componente %d no tiene entrada de stock de origen", c.ID)
		}
		entry, err = m.ledger.RestoreInTx(ctx, stockRepo, *c.StockID, c.Quantity)
		if err != nil {
			return err
		}
		returned = c
		return componentRepo.Delete(ctx, c.ID)
	})
	if err != nil {
		return nil, err
	}

	m.log.Info().
		Int64("component_id", returned.ID).
		Int64("pc_id", returned.PCID).
		Int64("stock_id", entry.ID).
		Int("quantity", returned.Quantity).
		Msg("componente devuelto al stock")
	return entry, nil
}

// Update corrige un componente. Si la cantidad aumenta se exige disponibilidad para la diferencia.
func (m *PCBuildManager) Update(ctx context.Context, id int64, in UpdateComponentInput) (*entity.PCComponent, error) {
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, domain.Invalid("quantity debe ser mayor que 0")
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.Invalid("unit_price no puede ser negativo")
	}
	if in.Status != nil && !entity.IsValidComponentStatus(*in.Status) {
		return nil, domain.Invalid("status %q no válido", *in.Status)
	}
	c, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil && *in.Quantity > c.Quantity {
		if err := m.availability.Ensure(ctx, c.ItemID, *in.Quantity-c.Quantity); err != nil {
			return nil, err
		}
	}
	if in.Quantity != nil {
		c.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		c.UnitPrice = *in.UnitPrice
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.Remarks != nil {
		c.Remarks = *in.Remarks
	}
	c.UpdatedAt = m.now()
	if err := m.componentRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete elimina el componente sin devolver unidades al stock (la reserva simplemente se libera).
func (m *PCBuildManager) Delete(ctx context.Context, id int64) error {
	if _, err := m.Get(ctx, id); err != nil {
		return err
	}
	return m.componentRepo.Delete(ctx, id)
}

// Get obtiene un componente; ErrNotFound si no existe.
func (m *PCBuildManager) Get(ctx context.Context, id int64) (*entity.PCComponent, error) {
	c, err := m.componentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List lista componentes.
func (m *PCBuildManager) List(ctx context.Context, limit, offset int) ([]*entity.PCComponent, error) {
	return m.componentRepo.List(ctx, limit, offset)
}

// ListByPC lista los componentes de un PC.
func (m *PCBuildManager) ListByPC(ctx context.Context, pcID int64) ([]*entity.PCComponent, error) {
	pc, err := m.pcRepo.GetByID(ctx, pcID)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, fmt.Errorf("PC %d: %w", pcID, domain.ErrNotFound)
	}
	return m.componentRepo.ListByPC(ctx, pcID)
}

// ListByItem lista los componentes que usan un ítem.
func (m *PCBuildManager) ListByItem(ctx context.Context, itemID int64) ([]*entity.PCComponent, error) {
	return m.componentRepo.ListByItem(ctx, itemID)
}
