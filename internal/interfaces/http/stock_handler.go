package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StockHandler libro de stock y disponibilidad.
type StockHandler struct {
	ledger       *inventory.StockLedger
	availability *inventory.AvailabilityCalculator
	reports      *inventory.ReportService
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *inventory.StockLedger, availability *inventory.AvailabilityCalculator, reports *inventory.ReportService) *StockHandler {
	return &StockHandler{ledger: ledger, availability: availability, reports: reports}
}

// List godoc
// @Summary  Listar entradas de stock
// @Tags     stocks
// @Security Bearer
// @Produce  json
// @Param    limit   query  int  false  "máximo 100"
// @Param    offset  query  int  false  "desplazamiento"
// @Success  200  {object}  dto.StockListResponse
// @Router   /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	p := pageFromQuery(c)
	list, err := h.ledger.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StockListResponse{
		Items: toStockResponses(list),
		Page:  dto.PageResponse{Limit: p.Limit, Offset: p.Offset},
	})
}

// GetByID godoc
// @Summary  Obtener entrada de stock
// @Tags     stocks
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID de la entrada"
// @Success  200  {object}  dto.StockResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/stocks/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	entry, err := h.ledger.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponse(entry))
}

// ListByItem godoc
// @Summary  Entradas de stock de un ítem
// @Tags     stocks
// @Security Bearer
// @Produce  json
// @Param    itemId  path  int  true  "ID del ítem"
// @Success  200  {array}  dto.StockResponse
// @Router   /api/stocks/item/{itemId} [get]
func (h *StockHandler) ListByItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.ledger.ListByItem(c.UserContext(), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponses(list))
}

// Available godoc
// @Summary      Disponibilidad de un ítem
// @Description  Stock total positivo menos lo instalado en PCs. Se calcula en cada consulta.
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  int  true  "ID del ítem"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/available/{itemId} [get]
func (h *StockHandler) Available(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return writeError(c, err)
	}
	a, err := h.availability.Available(c.UserContext(), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.AvailabilityResponse{
		ItemID:           a.ItemID,
		TotalStock:       a.TotalStock,
		UsedInComponents: a.UsedInComponents,
		AvailableStock:   a.AvailableStock,
	})
}

// Create godoc
// @Summary  Dar de alta stock
// @Tags     stocks
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateStockRequest  true  "item_id, location_id, quantity, price, remarks, dispose_id"
// @Success  201   {object}  dto.StockResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /api/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	accountID, err := requireAccount(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.ledger.AddEntry(c.UserContext(), inventory.AddEntryInput{
		ItemID:     in.ItemID,
		LocationID: in.LocationID,
		Quantity:   in.Quantity,
		UnitPrice:  in.Price,
		Remarks:    in.Remarks,
		CreatedBy:  accountID,
		DisposeID:  in.DisposeID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockResponse(entry))
}

// Update godoc
// @Summary      Corregir entrada de stock
// @Description  Corrección administrativa; total_price se recalcula con los valores corregidos.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la entrada"
// @Param        body  body  dto.UpdateStockRequest  true  "location_id, quantity, price, remarks"
// @Success      200   {object}  dto.StockResponse
// @Router       /api/stocks/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.ledger.Update(c.UserContext(), id, inventory.UpdateEntryInput{
		Quantity:   in.Quantity,
		LocationID: in.LocationID,
		UnitPrice:  in.Price,
		Remarks:    in.Remarks,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponse(entry))
}

// Delete godoc
// @Summary  Eliminar entrada de stock
// @Tags     stocks
// @Security Bearer
// @Param    id   path  int  true  "ID de la entrada"
// @Success  200  {object}  dto.MessageResponse
// @Router   /api/stocks/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.ledger.Delete(c.UserContext(), id), "entrada de stock eliminada")
}

// Export godoc
// @Summary  Exportar libro de stock a XLSX
// @Tags     stocks
// @Security Bearer
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success  200  {file}  binary
// @Router   /api/stocks/export [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	out, err := h.reports.ExportStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("stock_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(out)
}
