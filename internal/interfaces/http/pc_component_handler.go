package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/inventory"
)

// PCComponentHandler componentes instalados en PCs.
type PCComponentHandler struct {
	builds *inventory.PCBuildManager
}

// NewPCComponentHandler construye el handler.
func NewPCComponentHandler(builds *inventory.PCBuildManager) *PCComponentHandler {
	return &PCComponentHandler{builds: builds}
}

// List godoc
// @Summary  Listar componentes
// @Tags     pc-components
// @Security Bearer
// @Produce  json
// @Param    limit   query  int  false  "máximo 100"
// @Param    offset  query  int  false  "desplazamiento"
// @Success  200  {object}  dto.PCComponentListResponse
// @Router   /api/pc-components [get]
func (h *PCComponentHandler) List(c *fiber.Ctx) error {
	p := pageFromQuery(c)
	list, err := h.builds.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.PCComponentListResponse{
		Items: toComponentResponses(list),
		Page:  dto.PageResponse{Limit: p.Limit, Offset: p.Offset},
	})
}

// GetByID godoc
// @Summary  Obtener componente
// @Tags     pc-components
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID del componente"
// @Success  200  {object}  dto.PCComponentResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/pc-components/{id} [get]
func (h *PCComponentHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	comp, err := h.builds.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toComponentResponse(comp))
}

// ListByPC godoc
// @Summary  Componentes de un PC
// @Tags     pc-components
// @Security Bearer
// @Produce  json
// @Param    pcId  path  int  true  "ID del PC"
// @Success  200  {array}  dto.PCComponentResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/pc-components/pc/{pcId} [get]
func (h *PCComponentHandler) ListByPC(c *fiber.Ctx) error {
	pcID, err := paramID(c, "pcId")
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.builds.ListByPC(c.UserContext(), pcID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toComponentResponses(list))
}

// ListByItem godoc
// @Summary  Componentes de un ítem
// @Tags     pc-components
// @Security Bearer
// @Produce  json
// @Param    itemId  path  int  true  "ID del ítem"
// @Success  200  {array}  dto.PCComponentResponse
// @Router   /api/pc-components/item/{itemId} [get]
func (h *PCComponentHandler) ListByItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.builds.ListByItem(c.UserContext(), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toComponentResponses(list))
}

// Create godoc
// @Summary      Instalar componente en un PC
// @Description  Verifica disponibilidad antes de registrar. Sin stock_id se usa la entrada más antigua con cantidad positiva.
// @Tags         pc-components
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePCComponentRequest  true  "pc_id, item_id, quantity, unit_price, status, stock_id, remarks"
// @Success      201   {object}  dto.PCComponentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/pc-components [post]
func (h *PCComponentHandler) Create(c *fiber.Ctx) error {
	accountID, err := requireAccount(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreatePCComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	ctx := c.UserContext()
	if err := h.builds.CheckAllocation(ctx, in.ItemID, in.Quantity); err != nil {
		return writeError(c, err)
	}
	comp, err := h.builds.Allocate(ctx, inventory.AllocateInput{
		PCID:      in.PCID,
		ItemID:    in.ItemID,
		StockID:   in.StockID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Status:    in.Status,
		Remarks:   in.Remarks,
		CreatedBy: accountID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toComponentResponse(comp))
}

// Update godoc
// @Summary      Actualizar componente
// @Description  Un aumento de cantidad exige disponibilidad para la diferencia.
// @Tags         pc-components
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID del componente"
// @Param        body  body  dto.UpdatePCComponentRequest  true  "campos a corregir"
// @Success      200   {object}  dto.PCComponentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pc-components/{id} [put]
func (h *PCComponentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdatePCComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	comp, err := h.builds.Update(c.UserContext(), id, inventory.UpdateComponentInput{
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Status:    in.Status,
		Remarks:   in.Remarks,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toComponentResponse(comp))
}

// Delete godoc
// @Summary      Eliminar componente
// @Description  Libera la reserva sin tocar el libro de stock.
// @Tags         pc-components
// @Security     Bearer
// @Param        id   path  int  true  "ID del componente"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/pc-components/{id} [delete]
func (h *PCComponentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.builds.Delete(c.UserContext(), id), "componente eliminado")
}

// ReturnToStock godoc
// @Summary      Devolver componente al stock
// @Description  Suma la cantidad a la entrada de origen y elimina el componente en una sola transacción.
// @Tags         pc-components
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del componente"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse  "el componente no tiene entrada de origen"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pc-components/{id}/return-to-stock [post]
func (h *PCComponentHandler) ReturnToStock(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	entry, err := h.builds.ReturnToStock(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponse(entry))
}
