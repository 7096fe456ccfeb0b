package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
)

// ItemHandler CRUD de ítems del catálogo.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary  Listar ítems
// @Tags     items
// @Security Bearer
// @Produce  json
// @Param    limit   query  int  false  "máximo 100"
// @Param    offset  query  int  false  "desplazamiento"
// @Success  200  {object}  dto.ItemListResponse
// @Router   /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	p := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), p.Limit, p.Offset)
	return respond(c, fiber.StatusOK, out, err)
}

// GetByID godoc
// @Summary  Obtener ítem
// @Tags     items
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID del ítem"
// @Success  200  {object}  dto.ItemResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	return respond(c, fiber.StatusOK, out, err)
}

// Create godoc
// @Summary  Crear ítem
// @Tags     items
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.ItemRequest  true  "name, description, category_id, brand_id"
// @Success  201   {object}  dto.ItemResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Failure  404   {object}  dto.ErrorResponse  "categoría o marca inexistente"
// @Router   /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return respond(c, fiber.StatusCreated, out, err)
}

// Update godoc
// @Summary  Actualizar ítem
// @Tags     items
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int              true  "ID del ítem"
// @Param    body  body  dto.ItemRequest  true  "name, description, category_id, brand_id"
// @Success  200   {object}  dto.ItemResponse
// @Router   /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	return respond(c, fiber.StatusOK, out, err)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Description  Elimina en cascada sus entradas de stock, bajas y componentes.
// @Tags         items
// @Security     Bearer
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.uc.Delete(c.UserContext(), id), "ítem eliminado")
}
