package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/activos-api/internal/application/dto"
	"github.com/jhoicas/activos-api/internal/application/usecase"
)

// CatalogHandler marcas, categorías, ubicaciones de stock y salas.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ── Marcas ──────────────────────────────────────────────────────────────────

// ListBrands godoc
// @Summary  Listar marcas
// @Tags     brands
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.BrandResponse
// @Router   /api/brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	out, err := h.uc.ListBrands(c.UserContext())
	return respond(c, fiber.StatusOK, out, err)
}

// GetBrand godoc
// @Summary  Obtener marca
// @Tags     brands
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID de la marca"
// @Success  200  {object}  dto.BrandResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/brands/{id} [get]
func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetBrand(c.UserContext(), id)
	return respond(c, fiber.StatusOK, out, err)
}

// CreateBrand godoc
// @Summary  Crear marca
// @Tags     brands
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.NamedRequest  true  "name, description"
// @Success  201   {object}  dto.BrandResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /api/brands [post]
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateBrand(c.UserContext(), in)
	return respond(c, fiber.StatusCreated, out, err)
}

// UpdateBrand godoc
// @Summary  Actualizar marca
// @Tags     brands
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int               true  "ID de la marca"
// @Param    body  body  dto.NamedRequest  true  "name, description"
// @Success  200   {object}  dto.BrandResponse
// @Router   /api/brands/{id} [put]
func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateBrand(c.UserContext(), id, in)
	return respond(c, fiber.StatusOK, out, err)
}

// DeleteBrand godoc
// @Summary      Eliminar marca
// @Description  Elimina en cascada los ítems de la marca.
// @Tags         brands
// @Security     Bearer
// @Param        id   path  int  true  "ID de la marca"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.uc.DeleteBrand(c.UserContext(), id), "marca eliminada")
}

// ── Categorías ──────────────────────────────────────────────────────────────

// ListCategories godoc
// @Summary  Listar categorías
// @Tags     categories
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.CategoryResponse
// @Router   /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	return respond(c, fiber.StatusOK, out, err)
}

// GetCategory godoc
// @Summary  Obtener categoría
// @Tags     categories
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID de la categoría"
// @Success  200  {object}  dto.CategoryResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetCategory(c.UserContext(), id)
	return respond(c, fiber.StatusOK, out, err)
}

// CreateCategory godoc
// @Summary  Crear categoría
// @Tags     categories
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.NamedRequest  true  "name, description"
// @Success  201   {object}  dto.CategoryResponse
// @Router   /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCategory(c.UserContext(), in)
	return respond(c, fiber.StatusCreated, out, err)
}

// UpdateCategory godoc
// @Summary  Actualizar categoría
// @Tags     categories
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int               true  "ID de la categoría"
// @Param    body  body  dto.NamedRequest  true  "name, description"
// @Success  200   {object}  dto.CategoryResponse
// @Router   /api/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCategory(c.UserContext(), id, in)
	return respond(c, fiber.StatusOK, out, err)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Description  Elimina en cascada los ítems de la categoría.
// @Tags         categories
// @Security     Bearer
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.uc.DeleteCategory(c.UserContext(), id), "categoría eliminada")
}

// ── Ubicaciones de stock ────────────────────────────────────────────────────

// ListLocations godoc
// @Summary  Listar ubicaciones de stock
// @Tags     locations
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.StorageLocationResponse
// @Router   /api/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	out, err := h.uc.ListLocations(c.UserContext())
	return respond(c, fiber.StatusOK, out, err)
}

// GetLocation godoc
// @Summary  Obtener ubicación de stock
// @Tags     locations
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID de la ubicación"
// @Success  200  {object}  dto.StorageLocationResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/locations/{id} [get]
func (h *CatalogHandler) GetLocation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetLocation(c.UserContext(), id)
	return respond(c, fiber.StatusOK, out, err)
}

// CreateLocation godoc
// @Summary  Crear ubicación de stock
// @Tags     locations
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.StorageLocationRequest  true  "name, description, address"
// @Success  201   {object}  dto.StorageLocationResponse
// @Router   /api/locations [post]
func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.StorageLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateLocation(c.UserContext(), in)
	return respond(c, fiber.StatusCreated, out, err)
}

// UpdateLocation godoc
// @Summary  Actualizar ubicación de stock
// @Tags     locations
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                         true  "ID de la ubicación"
// @Param    body  body  dto.StorageLocationRequest  true  "name, description, address"
// @Success  200   {object}  dto.StorageLocationResponse
// @Router   /api/locations/{id} [put]
func (h *CatalogHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.StorageLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateLocation(c.UserContext(), id, in)
	return respond(c, fiber.StatusOK, out, err)
}

// DeleteLocation godoc
// @Summary  Eliminar ubicación de stock
// @Tags     locations
// @Security Bearer
// @Param    id   path  int  true  "ID de la ubicación"
// @Success  200  {object}  dto.MessageResponse
// @Failure  400  {object}  dto.ErrorResponse  "la ubicación tiene stock o bajas asociadas"
// @Router   /api/locations/{id} [delete]
func (h *CatalogHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.uc.DeleteLocation(c.UserContext(), id), "ubicación eliminada")
}

// ── Salas ───────────────────────────────────────────────────────────────────

// ListRooms godoc
// @Summary  Listar salas
// @Tags     rooms
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.RoomLocationResponse
// @Router   /api/rooms [get]
func (h *CatalogHandler) ListRooms(c *fiber.Ctx) error {
	out, err := h.uc.ListRooms(c.UserContext())
	return respond(c, fiber.StatusOK, out, err)
}

// GetRoom godoc
// @Summary  Obtener sala
// @Tags     rooms
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID de la sala"
// @Success  200  {object}  dto.RoomLocationResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /api/rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetRoom(c.UserContext(), id)
	return respond(c, fiber.StatusOK, out, err)
}

// CreateRoom godoc
// @Summary  Crear sala
// @Tags     rooms
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.RoomLocationRequest  true  "room_number, building, floor, description"
// @Success  201   {object}  dto.RoomLocationResponse
// @Router   /api/rooms [post]
func (h *CatalogHandler) CreateRoom(c *fiber.Ctx) error {
	var in dto.RoomLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateRoom(c.UserContext(), GetAccountID(c), in)
	return respond(c, fiber.StatusCreated, out, err)
}

// UpdateRoom godoc
// @Summary  Actualizar sala
// @Tags     rooms
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                      true  "ID de la sala"
// @Param    body  body  dto.RoomLocationRequest  true  "room_number, building, floor, description"
// @Success  200   {object}  dto.RoomLocationResponse
// @Router   /api/rooms/{id} [put]
func (h *CatalogHandler) UpdateRoom(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.RoomLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateRoom(c.UserContext(), id, in)
	return respond(c, fiber.StatusOK, out, err)
}

// DeleteRoom godoc
// @Summary  Eliminar sala
// @Tags     rooms
// @Security Bearer
// @Param    id   path  int  true  "ID de la sala"
// @Success  200  {object}  dto.MessageResponse
// @Router   /api/rooms/{id} [delete]
func (h *CatalogHandler) DeleteRoom(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return deleted(c, h.uc.DeleteRoom(c.UserContext(), id), "sala eliminada")
}
