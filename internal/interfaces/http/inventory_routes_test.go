package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/application/inventory/inventorytest"
	"github.com/jhoicas/activos-api/internal/application/usecase"
	"github.com/jhoicas/activos-api/internal/domain/entity"
	apphttp "github.com/jhoicas/activos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: router real sobre el almacenamiento en memoria
// ──────────────────────────────────────────────────────────────────────────────

type routeEnv struct {
	app    *fiber.App
	store  *inventorytest.Store
	svc    inventorytest.Services
	itemID int64
	locID  int64
	pcID   int64
	day0   time.Time
}

func newRouteEnv() *routeEnv {
	store := inventorytest.NewStore()
	svc := inventorytest.NewServices(store)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AccountUC:    usecase.NewAccountUseCase(store.AccountRepo()),
		Ledger:       svc.Ledger,
		Availability: svc.Availability,
		Disposals:    svc.Disposals,
		Builds:       svc.Builds,
		JWTSecret:    testJWTSecret,
	})
	return &routeEnv{
		app:    app,
		store:  store,
		svc:    svc,
		itemID: store.SeedItem("Memoria RAM 8GB"),
		locID:  store.SeedLocation("Bodega central"),
		pcID:   store.SeedPC("PC-LAB-01"),
		day0:   time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

// call lanza la petición con el rol indicado y devuelve el status y el cuerpo.
func (e *routeEnv) call(t *testing.T, method, path, role string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func (e *routeEnv) disposalBody(qty int) fiber.Map {
	return fiber.Map{
		"item_id":        e.itemID,
		"location_id":    e.locID,
		"quantity":       qty,
		"disposal_value": 2,
		"reason":         "Dañado",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Bajas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDisposalRoute_RespetaComponentesInstalados(t *testing.T) {
	e := newRouteEnv()
	s1 := e.store.SeedStock(e.itemID, e.locID, 10, 5, e.day0)
	e.store.SeedComponent(e.pcID, e.itemID, s1, 8)

	status, raw := e.call(t, http.MethodPost, "/api/disposals", entity.RoleAdmin, e.disposalBody(5))

	assert.Equal(t, http.StatusConflict, status, string(raw))
	errBody := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)
	assert.Contains(t, errBody.Message, "2 disponibles")
	assert.Equal(t, 10, e.store.Quantity(s1), "el stock no se toca si la validación falla")

	list, err := e.svc.Disposals.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateDisposalRoute_DentroDeDisponible(t *testing.T) {
	e := newRouteEnv()
	s1 := e.store.SeedStock(e.itemID, e.locID, 10, 5, e.day0)
	e.store.SeedComponent(e.pcID, e.itemID, s1, 8)

	status, raw := e.call(t, http.MethodPost, "/api/disposals", entity.RoleAdmin, e.disposalBody(2))

	require.Equal(t, http.StatusCreated, status, string(raw))
	out := decode[dto.DisposalResponse](t, raw)
	assert.Equal(t, 2, out.Quantity)
	assert.True(t, decimal.NewFromInt(4).Equal(out.TotalValue))
	assert.Equal(t, testAccountID, out.CreatedBy)
	assert.Equal(t, 8, e.store.Quantity(s1))
}

func TestCreateDisposalRoute_SinStockSuficiente(t *testing.T) {
	e := newRouteEnv()
	s1 := e.store.SeedStock(e.itemID, e.locID, 3, 5, e.day0)

	status, _ := e.call(t, http.MethodPost, "/api/disposals", entity.RoleSuperAdmin, e.disposalBody(4))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, 3, e.store.Quantity(s1))

	status, _ = e.call(t, http.MethodPost, "/api/disposals", entity.RoleAdmin, e.disposalBody(0))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateDisposalRoute_RolesDeLectura(t *testing.T) {
	e := newRouteEnv()
	e.store.SeedStock(e.itemID, e.locID, 3, 5, e.day0)

	for _, role := range []string{entity.RoleViewer, entity.RoleGuest} {
		status, _ := e.call(t, http.MethodPost, "/api/disposals", role, e.disposalBody(1))
		assert.Equal(t, http.StatusForbidden, status, role)
	}
	status, _ := e.call(t, http.MethodPost, "/api/disposals", "", e.disposalBody(1))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestValidateDisposalRoute(t *testing.T) {
	e := newRouteEnv()
	s1 := e.store.SeedStock(e.itemID, e.locID, 10, 5, e.day0)
	e.store.SeedComponent(e.pcID, e.itemID, s1, 8)

	status, raw := e.call(t, http.MethodPost, "/api/disposals/validate", entity.RoleViewer,
		fiber.Map{"item_id": e.itemID, "quantity": 3})

	require.Equal(t, http.StatusOK, status, string(raw))
	out := decode[dto.ValidateDisposalResponse](t, raw)
	assert.False(t, out.Valid)
	assert.Equal(t, 10, out.TotalStock)
	assert.Equal(t, 8, out.UsedInComponents)
	assert.Equal(t, 2, out.AvailableStock)
	assert.NotEmpty(t, out.Message)
}

func TestUpdateAndDeleteDisposalRoute_DevuelvenWarning(t *testing.T) {
	e := newRouteEnv()
	s1 := e.store.SeedStock(e.itemID, e.locID, 10, 5, e.day0)
	d, err := e.svc.Disposals.Create(context.Background(), inventory.CreateDisposalInput{
		ItemID: e.itemID, LocationID: e.locID, Quantity: 3,
		UnitDisposalValue: decimal.NewFromInt(2), CreatedBy: testAccountID,
	})
	require.NoError(t, err)
	path := fmt.Sprintf("/api/disposals/%d", d.ID)

	status, raw := e.call(t, http.MethodPut, path, entity.RoleAdmin, fiber.Map{"quantity": 5})
	require.Equal(t, http.StatusOK, status, string(raw))
	updated := decode[dto.DisposalResponse](t, raw)
	assert.True(t, decimal.NewFromInt(10).Equal(updated.TotalValue))
	assert.NotEmpty(t, updated.Warning)
	assert.Equal(t, 7, e.store.Quantity(s1))

	status, raw = e.call(t, http.MethodPut, path, entity.RoleAdmin, fiber.Map{"reason": "Obsoleto"})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Empty(t, decode[dto.DisposalResponse](t, raw).Warning)

	status, raw = e.call(t, http.MethodDelete, path, entity.RoleAdmin, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	msg := decode[dto.MessageResponse](t, raw)
	assert.Equal(t, "baja eliminada", msg.Message)
	assert.NotEmpty(t, msg.Warning)
	assert.Equal(t, 7, e.store.Quantity(s1), "eliminar la baja no devuelve stock")

	status, _ = e.call(t, http.MethodGet, path, entity.RoleViewer, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableRoute_AccesoGuest(t *testing.T) {
	e := newRouteEnv()
	s1 := e.store.SeedStock(e.itemID, e.locID, 6, 5, e.day0)
	e.store.SeedComponent(e.pcID, e.itemID, s1, 2)

	status, raw := e.call(t, http.MethodGet, fmt.Sprintf("/api/stocks/available/%d", e.itemID), entity.RoleGuest, nil)

	require.Equal(t, http.StatusOK, status, string(raw))
	out := decode[dto.AvailabilityResponse](t, raw)
	assert.Equal(t, 6, out.TotalStock)
	assert.Equal(t, 2, out.UsedInComponents)
	assert.Equal(t, 4, out.AvailableStock)

	status, _ = e.call(t, http.MethodGet, "/api/stocks/available/9999", entity.RoleGuest, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateStockRoute(t *testing.T) {
	e := newRouteEnv()
	body := fiber.Map{"item_id": e.itemID, "location_id": e.locID, "quantity": 4, "price": "12.50"}

	status, _ := e.call(t, http.MethodPost, "/api/stocks", entity.RoleViewer, body)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw := e.call(t, http.MethodPost, "/api/stocks", entity.RoleAdmin, body)
	require.Equal(t, http.StatusCreated, status, string(raw))
	out := decode[dto.StockResponse](t, raw)
	assert.True(t, decimal.NewFromInt(50).Equal(out.TotalPrice))
	assert.Equal(t, 4, e.store.Quantity(out.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Componentes de PC
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateComponentRoute_CompruebaDisponibilidad(t *testing.T) {
	e := newRouteEnv()
	s1 := e.store.SeedStock(e.itemID, e.locID, 3, 5, e.day0)
	body := func(qty int) fiber.Map {
		return fiber.Map{"pc_id": e.pcID, "item_id": e.itemID, "quantity": qty, "unit_price": 5}
	}

	status, raw := e.call(t, http.MethodPost, "/api/pc-components", entity.RoleAdmin, body(2))
	require.Equal(t, http.StatusCreated, status, string(raw))
	comp := decode[dto.PCComponentResponse](t, raw)
	require.NotNil(t, comp.StockID)
	assert.Equal(t, s1, *comp.StockID)
	assert.Equal(t, entity.ComponentWorking, comp.Status)

	status, raw = e.call(t, http.MethodPost, "/api/pc-components", entity.RoleAdmin, body(2))
	assert.Equal(t, http.StatusConflict, status, string(raw))
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, raw).Code)
	assert.Equal(t, 3, e.store.Quantity(s1), "asignar no descuenta la entrada")
}

func TestReturnToStockRoute(t *testing.T) {
	e := newRouteEnv()
	s1 := e.store.SeedStock(e.itemID, e.locID, 3, 5, e.day0)
	compID := e.store.SeedComponent(e.pcID, e.itemID, s1, 2)
	path := fmt.Sprintf("/api/pc-components/%d", compID)

	status, _ := e.call(t, http.MethodPost, path+"/return-to-stock", entity.RoleViewer, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw := e.call(t, http.MethodPost, path+"/return-to-stock", entity.RoleAdmin, nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	entry := decode[dto.StockResponse](t, raw)
	assert.Equal(t, s1, entry.ID)
	assert.Equal(t, 5, entry.Quantity)
	assert.Equal(t, 5, e.store.Quantity(s1))

	status, _ = e.call(t, http.MethodGet, path, entity.RoleViewer, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = e.call(t, http.MethodPost, path+"/return-to-stock", entity.RoleAdmin, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuentas
// ──────────────────────────────────────────────────────────────────────────────

func TestAccountRoutes_AltaYBajaPorSuperAdmin(t *testing.T) {
	e := newRouteEnv()
	body := fiber.Map{"email": "tecnico@activos.test", "password": "clave-segura", "role": entity.RoleAdmin}

	status, _ := e.call(t, http.MethodPost, "/api/accounts", entity.RoleAdmin, body)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw := e.call(t, http.MethodPost, "/api/accounts", entity.RoleSuperAdmin, body)
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := decode[dto.AccountResponse](t, raw)
	assert.Equal(t, entity.AccountActive, created.Status)

	status, _ = e.call(t, http.MethodPost, "/api/accounts", entity.RoleSuperAdmin, body)
	assert.Equal(t, http.StatusConflict, status)

	path := fmt.Sprintf("/api/accounts/%d", created.ID)
	status, raw = e.call(t, http.MethodDelete, path, entity.RoleSuperAdmin, nil)
	require.Equal(t, http.StatusOK, status, string(raw))

	status, _ = e.call(t, http.MethodGet, path, entity.RoleSuperAdmin, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
