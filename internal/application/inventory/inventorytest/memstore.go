// Package inventorytest ofrece un almacenamiento en memoria que implementa los puertos de
// inventario, para tests de la capa de aplicación y de HTTP.
package inventorytest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	"github.com/jhoicas/activos-api/internal/domain/repository"
	"github.com/jhoicas/activos-api/pkg/logger"
)

// ErrInjected es el error que devuelve UpdateQuantity sobre Store.FailUpdateQuantityOn.
var ErrInjected = errors.New("fallo inyectado")

// Store guarda todo en mapas con semántica de transacción: Run toma un snapshot al empezar
// y lo restaura si fn devuelve error. Los repos devuelven copias, así que mutar una entidad
// leída no persiste sin Update.

type Store struct {
	mu     sync.Mutex
	nextID int64

	items      map[int64]entity.Item
	locations  map[int64]entity.StorageLocation
	accounts   map[int64]entity.Account
	pcs        map[int64]entity.PC
	stock      map[int64]entity.StockEntry
	disposals  map[int64]entity.Disposal
	components map[int64]entity.PCComponent

	// FailUpdateQuantityOn provoca error al actualizar la cantidad de esa entrada.
	FailUpdateQuantityOn int64
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		items:      map[int64]entity.Item{},
		locations:  map[int64]entity.StorageLocation{},
		accounts:   map[int64]entity.Account{},
		pcs:        map[int64]entity.PC{},
		stock:      map[int64]entity.StockEntry{},
		disposals:  map[int64]entity.Disposal{},
		components: map[int64]entity.PCComponent{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Run implementa inventory.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(
	stockRepo repository.StockEntryRepository,
	disposalRepo repository.DisposalRepository,
	componentRepo repository.PCComponentRepository,
) error) error {
	s.mu.Lock()
	stock, disposals, components := cloneMap(s.stock), cloneMap(s.disposals), cloneMap(s.components)
	s.mu.Unlock()

	if err := fn(&memStockRepo{s}, &memDisposalRepo{s}, &memComponentRepo{s}); err != nil {
		s.mu.Lock()
		s.stock, s.disposals, s.components = stock, disposals, components
		s.mu.Unlock()
		return err
	}
	return nil
}

// ── seeds ────────────────────────────────────────────────────────────────────

// SeedItem, SeedLocation, SeedAccount, SeedPC, SeedStock y SeedComponent insertan filas
// directamente, sin pasar por los servicios.

func (s *Store) SeedItem(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.items[id] = entity.Item{ID: id, Name: name, CategoryID: 1, BrandID: 1}
	return id
}

func (s *Store) SeedLocation(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.locations[id] = entity.StorageLocation{ID: id, Name: name}
	return id
}

func (s *Store) SeedAccount(first, last string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.accounts[id] = entity.Account{ID: id, FirstName: first, LastName: last, Role: entity.RoleAdmin}
	return id
}

func (s *Store) SeedPC(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.pcs[id] = entity.PC{ID: id, Name: name, SerialNumber: name + "-SN"}
	return id
}

func (s *Store) SeedStock(itemID, locationID int64, qty int, price int64, createdAt time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	unit := decimal.NewFromInt(price)
	s.stock[id] = entity.StockEntry{
		ID: id, ItemID: itemID, LocationID: locationID, Quantity: qty,
		UnitPrice: unit, TotalPrice: unit.Mul(decimal.NewFromInt(int64(qty))),
		CreatedAt: createdAt, UpdatedAt: createdAt,
	}
	return id
}

func (s *Store) SeedComponent(pcID, itemID, stockID int64, qty int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	sid := stockID
	s.components[id] = entity.PCComponent{
		ID: id, PCID: pcID, ItemID: itemID, StockID: &sid, Quantity: qty, Status: entity.ComponentWorking,
	}
	return id
}

// Quantity devuelve la cantidad actual de la entrada.
func (s *Store) Quantity(stockID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[stockID].Quantity
}

// ── repositorios ─────────────────────────────────────────────────────────────

// StockRepo devuelve el repositorio de entradas de stock.
func (s *Store) StockRepo() repository.StockEntryRepository { return &memStockRepo{s} }

// DisposalRepo devuelve el repositorio de bajas.
func (s *Store) DisposalRepo() repository.DisposalRepository { return &memDisposalRepo{s} }

// ComponentRepo devuelve el repositorio de componentes de PC.
func (s *Store) ComponentRepo() repository.PCComponentRepository { return &memComponentRepo{s} }

// ItemRepo devuelve el repositorio de ítems.
func (s *Store) ItemRepo() repository.ItemRepository { return &memItemRepo{s} }

// LocationRepo devuelve el repositorio de ubicaciones de almacenamiento.
func (s *Store) LocationRepo() repository.StorageLocationRepository { return &memLocationRepo{s} }

// AccountRepo devuelve el repositorio de cuentas.
func (s *Store) AccountRepo() repository.AccountRepository { return &memAccountRepo{s} }

// PCRepo devuelve el repositorio de PCs.
func (s *Store) PCRepo() repository.PCRepository { return &memPCRepo{s} }

// Services agrupa los servicios de inventario construidos sobre un Store.
type Services struct {
	Ledger       *inventory.StockLedger
	Availability *inventory.AvailabilityCalculator
	Disposals    *inventory.DisposalEngine
	Builds       *inventory.PCBuildManager
}

// NewServices construye los servicios de inventario sobre s, con un logger mudo.
func NewServices(s *Store) Services {
	stockRepo, itemRepo, locRepo, compRepo := s.StockRepo(), s.ItemRepo(), s.LocationRepo(), s.ComponentRepo()
	ledger := inventory.NewStockLedger(s, stockRepo, itemRepo, locRepo)
	calc := inventory.NewAvailabilityCalculator(stockRepo, compRepo, itemRepo)
	return Services{
		Ledger:       ledger,
		Availability: calc,
		Disposals:    inventory.NewDisposalEngine(s, ledger, calc, s.DisposalRepo(), stockRepo, itemRepo, locRepo, logger.Nop()),
		Builds:       inventory.NewPCBuildManager(s, ledger, calc, compRepo, s.PCRepo(), itemRepo, stockRepo, logger.Nop()),
	}
}

// ── items / locations / accounts / pcs ───────────────────────────────────────

type memItemRepo struct{ s *Store }

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = r.s.id()
	r.s.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) List(_ context.Context, _, _ int) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		out = append(out, &it)
	}
	return out, nil
}

func (r *memItemRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

type memLocationRepo struct{ s *Store }

func (r *memLocationRepo) Create(_ context.Context, loc *entity.StorageLocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	loc.ID = r.s.id()
	r.s.locations[loc.ID] = *loc
	return nil
}

func (r *memLocationRepo) GetByID(_ context.Context, id int64) (*entity.StorageLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *memLocationRepo) Update(_ context.Context, loc *entity.StorageLocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.locations[loc.ID] = *loc
	return nil
}

func (r *memLocationRepo) List(_ context.Context) ([]*entity.StorageLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.StorageLocation, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		out = append(out, &l)
	}
	return out, nil
}

func (r *memLocationRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.locations, id)
	return nil
}

type memAccountRepo struct{ s *Store }

func (r *memAccountRepo) Create(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.id()
	r.s.accounts[a.ID] = *a
	return nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) Update(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.accounts[a.ID] = *a
	return nil
}

func (r *memAccountRepo) List(_ context.Context, _, _ int) ([]*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Account, 0, len(r.s.accounts))
	for _, a := range r.s.accounts {
		out = append(out, &a)
	}
	return out, nil
}

func (r *memAccountRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.accounts), nil
}

func (r *memAccountRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.accounts, id)
	return nil
}

type memPCRepo struct{ s *Store }

func (r *memPCRepo) Create(_ context.Context, pc *entity.PC) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	pc.ID = r.s.id()
	r.s.pcs[pc.ID] = *pc
	return nil
}

func (r *memPCRepo) GetByID(_ context.Context, id int64) (*entity.PC, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	pc, ok := r.s.pcs[id]
	if !ok {
		return nil, nil
	}
	return &pc, nil
}

func (r *memPCRepo) GetBySerialNumber(_ context.Context, serial string) (*entity.PC, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, pc := range r.s.pcs {
		if pc.SerialNumber == serial {
			return &pc, nil
		}
	}
	return nil, nil
}

func (r *memPCRepo) Update(_ context.Context, pc *entity.PC) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.pcs[pc.ID] = *pc
	return nil
}

func (r *memPCRepo) List(_ context.Context, _, _ int) ([]*entity.PC, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.PC, 0, len(r.s.pcs))
	for _, pc := range r.s.pcs {
		out = append(out, &pc)
	}
	return out, nil
}

func (r *memPCRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.pcs, id)
	return nil
}

// ── stock ────────────────────────────────────────────────────────────────────

type memStockRepo struct{ s *Store }

func (r *memStockRepo) Create(_ context.Context, e *entity.StockEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = r.s.id()
	r.s.stock[e.ID] = *e
	return nil
}

func (r *memStockRepo) GetByID(_ context.Context, id int64) (*entity.StockEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.stock[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *memStockRepo) GetForUpdate(ctx context.Context, id int64) (*entity.StockEntry, error) {
	return r.GetByID(ctx, id)
}

func (r *memStockRepo) filter(keep func(entity.StockEntry) bool) []*entity.StockEntry {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockEntry
	for _, e := range r.s.stock {
		if keep(e) {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *memStockRepo) ListDepletableForUpdate(_ context.Context, itemID int64) ([]*entity.StockEntry, error) {
	return r.filter(func(e entity.StockEntry) bool { return e.ItemID == itemID && e.DisposeID == nil }), nil
}

func (r *memStockRepo) ListByItem(_ context.Context, itemID int64) ([]*entity.StockEntry, error) {
	return r.filter(func(e entity.StockEntry) bool { return e.ItemID == itemID }), nil
}

func (r *memStockRepo) ListByDisposal(_ context.Context, disposalID int64) ([]*entity.StockEntry, error) {
	return r.filter(func(e entity.StockEntry) bool { return e.DisposeID != nil && *e.DisposeID == disposalID }), nil
}

func (r *memStockRepo) List(_ context.Context, _, _ int) ([]*entity.StockEntry, error) {
	return r.filter(func(entity.StockEntry) bool { return true }), nil
}

func (r *memStockRepo) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if id == r.s.FailUpdateQuantityOn {
		return ErrInjected
	}
	e := r.s.stock[id]
	e.Quantity = quantity
	r.s.stock[id] = e
	return nil
}

func (r *memStockRepo) Update(_ context.Context, e *entity.StockEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stock[e.ID] = *e
	return nil
}

func (r *memStockRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.stock, id)
	for cid, c := range r.s.components {
		if c.StockID != nil && *c.StockID == id {
			c.StockID = nil
			r.s.components[cid] = c
		}
	}
	return nil
}

func (r *memStockRepo) SumPositiveByItem(_ context.Context, itemID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := 0
	for _, e := range r.s.stock {
		if e.ItemID == itemID && e.Quantity > 0 {
			total += e.Quantity
		}
	}
	return total, nil
}

// ── disposals ────────────────────────────────────────────────────────────────

type memDisposalRepo struct{ s *Store }

func (r *memDisposalRepo) Create(_ context.Context, d *entity.Disposal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d.ID = r.s.id()
	r.s.disposals[d.ID] = *d
	return nil
}

func (r *memDisposalRepo) GetByID(_ context.Context, id int64) (*entity.Disposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.disposals[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *memDisposalRepo) Update(_ context.Context, d *entity.Disposal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.disposals[d.ID] = *d
	return nil
}

func (r *memDisposalRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.disposals, id)
	for sid, e := range r.s.stock {
		if e.DisposeID != nil && *e.DisposeID == id {
			e.DisposeID = nil
			r.s.stock[sid] = e
		}
	}
	return nil
}

func (r *memDisposalRepo) List(_ context.Context, _, _ int) ([]*entity.Disposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Disposal, 0, len(r.s.disposals))
	for _, d := range r.s.disposals {
		out = append(out, &d)
	}
	return out, nil
}

func (r *memDisposalRepo) ListByItem(_ context.Context, itemID int64) ([]*entity.Disposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Disposal
	for _, d := range r.s.disposals {
		if d.ItemID == itemID {
			out = append(out, &d)
		}
	}
	return out, nil
}

// ── components ───────────────────────────────────────────────────────────────

type memComponentRepo struct{ s *Store }

func (r *memComponentRepo) Create(_ context.Context, c *entity.PCComponent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	r.s.components[c.ID] = *c
	return nil
}

func (r *memComponentRepo) GetByID(_ context.Context, id int64) (*entity.PCComponent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.components[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memComponentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.PCComponent, error) {
	return r.GetByID(ctx, id)
}

func (r *memComponentRepo) Update(_ context.Context, c *entity.PCComponent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.components[c.ID] = *c
	return nil
}

func (r *memComponentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.components, id)
	return nil
}

func (r *memComponentRepo) list(keep func(entity.PCComponent) bool) []*entity.PCComponent {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.PCComponent
	for _, c := range r.s.components {
		if keep(c) {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memComponentRepo) List(_ context.Context, _, _ int) ([]*entity.PCComponent, error) {
	return r.list(func(entity.PCComponent) bool { return true }), nil
}

func (r *memComponentRepo) ListByPC(_ context.Context, pcID int64) ([]*entity.PCComponent, error) {
	return r.list(func(c entity.PCComponent) bool { return c.PCID == pcID }), nil
}

func (r *memComponentRepo) ListByItem(_ context.Context, itemID int64) ([]*entity.PCComponent, error) {
	return r.list(func(c entity.PCComponent) bool { return c.ItemID == itemID }), nil
}

func (r *memComponentRepo) SumQuantityByItem(_ context.Context, itemID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := 0
	for _, c := range r.s.components {
		if c.ItemID == itemID {
			total += c.Quantity
		}
	}
	return total, nil
}

var _ inventory.TxRunner = (*Store)(nil)
