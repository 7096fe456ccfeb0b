package inventory_test

import (
	"time"

	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/application/inventory/inventorytest"
)

var errInjected = inventorytest.ErrInjected

type fixture struct {
	store    *inventorytest.Store
	ledger   *inventory.StockLedger
	calc     *inventory.AvailabilityCalculator
	engine   *inventory.DisposalEngine
	builds   *inventory.PCBuildManager
	itemID   int64
	locID    int64
	adminID  int64
	baseTime time.Time
}

func newFixture() *fixture {
	s := inventorytest.NewStore()
	svc := inventorytest.NewServices(s)
	return &fixture{
		store:    s,
		ledger:   svc.Ledger,
		calc:     svc.Availability,
		engine:   svc.Disposals,
		builds:   svc.Builds,
		itemID:   s.SeedItem("Mouse USB"),
		locID:    s.SeedLocation("Bodega central"),
		adminID:  s.SeedAccount("Ana", "Pérez"),
		baseTime: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) day(n int) time.Time { return f.baseTime.AddDate(0, 0, n) }
