package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/inventory"
	"github.com/jhoicas/activos-api/internal/domain"
)

// DisposalHandler bajas de activos.
type DisposalHandler struct {
	engine  *inventory.DisposalEngine
	reports *inventory.ReportService
}

// NewDisposalHandler construye el handler.
func NewDisposalHandler(engine *inventory.DisposalEngine, reports *inventory.ReportService) *DisposalHandler {
	return &DisposalHandler{engine: engine, reports: reports}
}

// Validate godoc
// @Summary      Validar baja
// @Description  Indica si la cantidad cabe en el stock disponible (total menos componentes). No modifica nada.
// @Tags         disposals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateDisposalRequest  true  "item_id, quantity"
// @Success      200   {object}  dto.ValidateDisposalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/disposals/validate [post]
func (h *DisposalHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateDisposalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.engine.Validate(c.UserContext(), in.ItemID, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ValidateDisposalResponse{
		Valid:            res.Valid,
		Message:          res.Message,
		TotalStock:       res.TotalStock,
		UsedInComponents: res.UsedInComponents,
		AvailableStock:   res.AvailableStock,
	})
}

// Create godoc
// @Summary      Registrar baja
// @Description  Comprueba la disponibilidad (stock menos componentes de PC), crea la baja y descuenta el stock de las entradas más antiguas en una sola transacción.
// @Tags         disposals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDisposalRequest  true  "item_id, location_id, quantity, disposal_value, reason, disposal_date"
// @Success      201   {object}  dto.DisposalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/disposals [post]
func (h *DisposalHandler) Create(c *fiber.Ctx) error {
	accountID, err := requireAccount(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateDisposalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ctx := c.UserContext()
	// El commit no descuenta lo instalado en PCs; la disponibilidad se comprueba aquí.
	if in.Quantity > 0 {
		check, err := h.engine.Validate(ctx, in.ItemID, in.Quantity)
		if err != nil {
			return writeError(c, err)
		}
		if !check.Valid {
			return writeError(c, &domain.InsufficientStockError{
				ItemID:    in.ItemID,
				Requested: in.Quantity,
				Available: check.AvailableStock,
				Message:   check.Message,
			})
		}
	}
	d, err := h.engine.Create(ctx, inventory.CreateDisposalInput{
		ItemID:            in.ItemID,
		LocationID:        in.LocationID,
		Quantity:          in.Quantity,
		UnitDisposalValue: in.DisposalValue,
		Reason:            in.Reason,
		DisposalDate:      in.DisposalDate,
		CreatedBy:         accountID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDisposalResponse(d))
}

// List godoc
// @Summary  Listar bajas
// @Tags     disposals
// @Security Bearer
// @Produce  json
// @Param    limit   query  int  false  "máximo 100"
// @Param    offset  query  int  false  "desplazamiento"
// @Success  200  {object}  dto.DisposalListResponse
// @Router   /api/disposals [get]
func (h *DisposalHandler) List(c *fiber.Ctx) error {
	p := pageFromQuery(c)
	list, err := h.engine.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DisposalListResponse{
		Items: toDisposalResponses(list),
		Page:  dto.PageResponse{Limit: p.Limit, Offset: p.Offset},
	})
}

// GetByID godoc
// @Summary  Obtener baja
// @Tags     disposals
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID de la baja"
// @Success  200  {object}  dto.DisposalResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/disposals/{id} [get]
func (h *DisposalHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	d, err := h.engine.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDisposalResponse(d))
}

// ListByItem godoc
// @Summary  Bajas de un ítem
// @Tags     disposals
// @Security Bearer
// @Produce  json
// @Param    itemId  path  int  true  "ID del ítem"
// @Success  200  {array}  dto.DisposalResponse
// @Router   /api/disposals/item/{itemId} [get]
func (h *DisposalHandler) ListByItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.engine.ListByItem(c.UserContext(), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDisposalResponses(list))
}

// Update godoc
// @Summary      Corregir baja
// @Description  Recalcula total_value. Si cambia la cantidad el libro de stock no se reajusta y la respuesta trae warning.
// @Tags         disposals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la baja"
// @Param        body  body  dto.UpdateDisposalRequest  true  "campos a corregir"
// @Success      200   {object}  dto.DisposalResponse
// @Router       /api/disposals/{id} [put]
func (h *DisposalHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateDisposalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	change, err := h.engine.Update(c.UserContext(), id, inventory.UpdateDisposalInput{
		Quantity:          in.Quantity,
		UnitDisposalValue: in.DisposalValue,
		LocationID:        in.LocationID,
		Reason:            in.Reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	out := toDisposalResponse(change.Disposal)
	if change.Warning != nil {
		out.Warning = change.Warning.Error()
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar baja
// @Description  El stock descontado no se devuelve; la respuesta trae warning.
// @Tags         disposals
// @Security     Bearer
// @Param        id   path  int  true  "ID de la baja"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/disposals/{id} [delete]
func (h *DisposalHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	change, err := h.engine.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	out := dto.MessageResponse{Message: "baja eliminada"}
	if change.Warning != nil {
		out.Warning = change.Warning.Error()
	}
	return c.JSON(out)
}

// WithStock godoc
// @Summary  Baja con sus entradas de stock asociadas
// @Tags     disposals
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID de la baja"
// @Success  200  {object}  dto.DisposalWithStockResponse
// @Router   /api/disposals/with-stock/{id} [get]
func (h *DisposalHandler) WithStock(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	d, entries, err := h.engine.GetWithStock(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DisposalWithStockResponse{
		Disposal: toDisposalResponse(d),
		Stocks:   toStockResponses(entries),
	})
}

// StockWithDisposal godoc
// @Summary  Entradas de un ítem con su baja asociada
// @Tags     disposals
// @Security Bearer
// @Produce  json
// @Param    itemId  path  int  true  "ID del ítem"
// @Success  200  {array}  dto.StockWithDisposalResponse
// @Router   /api/disposals/stock-with-disposal/{itemId} [get]
func (h *DisposalHandler) StockWithDisposal(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return writeError(c, err)
	}
	rows, err := h.engine.StockWithDisposal(c.UserContext(), itemID)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.StockWithDisposalResponse, 0, len(rows))
	for _, r := range rows {
		item := dto.StockWithDisposalResponse{Stock: toStockResponse(r.Entry)}
		if r.Disposal != nil {
			d := toDisposalResponse(r.Disposal)
			item.Disposal = &d
		}
		out = append(out, item)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary  Acta de baja en PDF
// @Tags     disposals
// @Security Bearer
// @Produce  application/pdf
// @Param    id   path  int  true  "ID de la baja"
// @Success  200  {file}  binary
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/disposals/{id}/pdf [get]
func (h *DisposalHandler) PDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.reports.DisposalCertificatePDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=\"baja_%d.pdf\"", id))
	return c.Send(out)
}
