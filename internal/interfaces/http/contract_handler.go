package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-api/internal/application/contracts"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
)

// ContractHandler maneja las peticiones HTTP para el recurso Contract.
type ContractHandler struct {
	uc *contracts.ContractUseCase
}

// NewContractHandler construye el handler inyectando el caso de uso.
func NewContractHandler(uc *contracts.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), in)
	if err != nil {
		return contractError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateContractRequest  true  "Datos del contrato"
// @Success      200   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(out)
}

// PartialUpdate godoc
// @Summary      Actualizar contrato parcialmente (los campos ausentes no se tocan)
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.PatchContractRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [patch]
func (h *ContractHandler) PartialUpdate(c *fiber.Ctx) error {
	var in dto.PatchContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = c.Params("id")
	out, err := h.uc.PartialUpdate(c.Context(), in)
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contratos
// @Tags         contracts
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ContractListResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.uc.FindAll(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener contrato por ID
// @Tags         contracts
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.FindOne(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// ActiveByCompany godoc
// @Summary      Contratos vigentes de una empresa
// @Tags         contracts
// @Produce      json
// @Param        companyId    path   string  true   "ID de la empresa"
// @Param        updatedFrom  query  string  false  "Desde (RFC3339)"
// @Param        updatedTo    query  string  false  "Hasta (RFC3339)"
// @Success      200  {object}  dto.ContractListResponse
// @Router       /api/contracts/company/{companyId}/active [get]
func (h *ContractHandler) ActiveByCompany(c *fiber.Ctx) error {
	from, to, err := parseUpdatedRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "updatedFrom/updatedTo deben ser RFC3339"})
	}
	out, err := h.uc.FindActiveByCompany(c.Context(), c.Params("companyId"), from, to, parsePage(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ActiveByPerson godoc
// @Summary      Contratos vigentes de una persona
// @Tags         contracts
// @Produce      json
// @Param        personId     path   string  true   "ID de la persona"
// @Param        updatedFrom  query  string  false  "Desde (RFC3339)"
// @Param        updatedTo    query  string  false  "Hasta (RFC3339)"
// @Success      200  {object}  dto.ContractListResponse
// @Router       /api/contracts/person/{personId}/active [get]
func (h *ContractHandler) ActiveByPerson(c *fiber.Ctx) error {
	from, to, err := parseUpdatedRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "updatedFrom/updatedTo deben ser RFC3339"})
	}
	out, err := h.uc.FindActiveByPerson(c.Context(), c.Params("personId"), from, to, parsePage(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ActiveCostTotalByCompany godoc
// @Summary      Costo total de contratos vigentes de una empresa
// @Tags         contracts
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CostTotalResponse
// @Router       /api/contracts/company/{companyId}/active/total [get]
func (h *ContractHandler) ActiveCostTotalByCompany(c *fiber.Ctx) error {
	total, err := h.uc.ActiveCostTotalByCompany(c.Context(), c.Params("companyId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CostTotalResponse{Total: total})
}

// ActiveCostTotalByPerson godoc
// @Summary      Costo total de contratos vigentes de una persona
// @Tags         contracts
// @Produce      json
// @Param        personId  path  string  true  "ID de la persona"
// @Success      200  {object}  dto.CostTotalResponse
// @Router       /api/contracts/person/{personId}/active/total [get]
func (h *ContractHandler) ActiveCostTotalByPerson(c *fiber.Ctx) error {
	total, err := h.uc.ActiveCostTotalByPerson(c.Context(), c.Params("personId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CostTotalResponse{Total: total})
}

// Delete godoc
// @Summary      Eliminar contrato (borrado directo, sin cascada)
// @Tags         contracts
// @Param        id  path  string  true  "ID del contrato"
// @Success      204
// @Router       /api/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SummaryPDF godoc
// @Summary      Ficha PDF del contrato
// @Tags         contracts
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del contrato"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/pdf [get]
func (h *ContractHandler) SummaryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.SummaryPDF(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	return c.Send(pdfBytes)
}

// contractError mapea errores de dominio del ciclo de vida de contratos.
func contractError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidContract:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CONTRACT", Message: err.Error()})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page
}

// parseUpdatedRange lee updatedFrom/updatedTo (RFC3339, opcionales).
func parseUpdatedRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("updatedFrom"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if s := c.Query("updatedTo"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}
