package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/clients"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
)

// PersonHandler maneja las peticiones HTTP para el recurso Person.
type PersonHandler struct {
	uc *clients.PersonUseCase
}

// NewPersonHandler construye el handler inyectando el caso de uso.
func NewPersonHandler(uc *clients.PersonUseCase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

// Create godoc
// @Summary      Crear persona con su perfil de cliente
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePersonRequest  true  "Datos de la persona"
// @Success      201   {object}  dto.PersonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/persons [post]
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return clientError(c, err, "persona")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar datos de contacto de la persona (birth_date es inmutable)
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la persona"
// @Param        body  body  dto.UpdatePersonRequest  true  "Datos de contacto"
// @Success      200   {object}  dto.PersonResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [put]
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return clientError(c, err, "persona")
	}
	return c.JSON(out)
}

// PartialUpdate godoc
// @Summary      Editar parcialmente el perfil de la persona (los campos ausentes no se tocan)
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la persona"
// @Param        body  body  dto.PatchPersonRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.PersonResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [patch]
func (h *PersonHandler) PartialUpdate(c *fiber.Ctx) error {
	var in dto.PatchPersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.PartialUpdate(c.Context(), in)
	if err != nil {
		return clientError(c, err, "persona")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar personas
// @Tags         persons
// @Produce      json
// @Success      200  {object}  dto.PersonListResponse
// @Router       /api/persons [get]
func (h *PersonHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.FindAll(c.Context(), parsePage(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener persona por ID
// @Tags         persons
// @Produce      json
// @Param        id   path  string  true  "ID de la persona"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [get]
func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.FindOne(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Dar de baja a la persona (cierra contratos y desactiva el perfil)
// @Tags         persons
// @Param        id  path  string  true  "ID de la persona"
// @Success      204
// @Router       /api/persons/{id} [delete]
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// clientError mapea errores de dominio comunes a personas/empresas/perfiles.
func clientError(c *fiber.Ctx, err error, recurso string) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: recurso + " duplicada"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: recurso + " no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
