package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/clients"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
)

// ClientInfoHandler maneja las peticiones HTTP para los perfiles de cliente.
type ClientInfoHandler struct {
	uc *clients.ClientInfoUseCase
}

// NewClientInfoHandler construye el handler inyectando el caso de uso.
func NewClientInfoHandler(uc *clients.ClientInfoUseCase) *ClientInfoHandler {
	return &ClientInfoHandler{uc: uc}
}

// List godoc
// @Summary      Listar perfiles de cliente
// @Tags         clients
// @Produce      json
// @Success      200  {object}  dto.ClientInfoListResponse
// @Router       /api/clients [get]
func (h *ClientInfoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.FindAll(c.Context(), parsePage(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener perfil de cliente por ID
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "ID del perfil"
// @Success      200  {object}  dto.ClientInfoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientInfoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.FindOne(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar datos de contacto del perfil (el flag active no es editable)
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del perfil"
// @Param        body  body  dto.ClientInfoRequest  true  "Datos de contacto"
// @Success      200   {object}  dto.ClientInfoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientInfoHandler) Update(c *fiber.Ctx) error {
	var in dto.ClientInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return clientError(c, err, "perfil")
	}
	return c.JSON(out)
}
