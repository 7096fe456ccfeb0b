package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
)

// PCHandler CRUD de PCs.
type PCHandler struct {
	uc *usecase.PCUseCase
}

func NewPCHandler(uc *usecase.PCUseCase) *PCHandler {
	return &PCHandler{uc: uc}
}

// List godoc
// @Summary  Listar PCs
// @Tags     pcs
// @Security Bearer
// @Produce  json
// @Param    limit   query  int  false  "máximo 100"
// @Param    offset  query  int  false  "desplazamiento"
// @Success  200  {object}  dto.PCListResponse
// @Router   /api/pcs [get]
func (h *PCHandler) List(c *fiber.Ctx) error {
	p := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), p.Limit, p.Offset)
	return respond(c, fiber.StatusOK, out, err)
}

// GetByID godoc
// @Summary  Obtener PC
// @Tags     pcs
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID del PC"
// @Success  200  {object}  dto.PCResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/pcs/{id} [get]
func (h *PCHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	return respond(c, fiber.StatusOK, out, err)
}

// Create godoc
// @Summary  Crear PC
// @Tags     pcs
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.PCRequest  true  "name, serial_number, room_location_id, status, specifications, remarks"
// @Success  201   {object}  dto.PCResponse
// @Failure  409   {object}  dto.ErrorResponse  "número de serie duplicado"
// @Router   /api/pcs [post]
func (h *PCHandler) Create(c *fiber.Ctx) error {
	var in dto.PCRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetAccountID(c), in)
	return respond(c, fiber.StatusCreated, out, err)
}

// Update godoc
// @Summary  Actualizar PC
// @Tags     pcs
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int            true  "ID del PC"
// @Param    body  body  dto.PCRequest  true  "datos del PC"
// @Success  200   {object}  dto.PCResponse
// @Router   /api/pcs/{id} [put]
func (h *PCHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.PCRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	return respond(c, fiber.StatusOK, out, err)
}

// Delete godoc
// @Summary  Eliminar PC
// @Tags     pcs
// @Security Bearer
// @Param    id   path  int  true  "ID del PC"
// @Success  200  {object}  dto.MessageResponse
// @Router   /api/pcs/{id} [delete]
func (h *PCHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.uc.Delete(c.UserContext(), id), "PC eliminado")
}

// SpecificationFields godoc
// @Summary      Campos de especificación por categoría
// @Description  Campos que el formulario de PC pide para los ítems de la categoría; sin campos definidos devuelve el campo libre.
// @Tags         pcs
// @Security     Bearer
// @Produce      json
// @Param        categoryId  path  int  true  "ID de la categoría"
// @Success      200  {array}   dto.SpecificationFieldResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pcs/specification-fields/{categoryId} [get]
func (h *PCHandler) SpecificationFields(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SpecificationFields(c.UserContext(), categoryID)
	return respond(c, fiber.StatusOK, out, err)
}
