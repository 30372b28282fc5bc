package contracts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/contract"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
	"github.com/tu-usuario/clientes-api/pkg/clock"
)

// ContractUseCase ciclo de vida y consultas de contratos: alta con validación
// de dueño exclusivo, actualización total y parcial con re-estampado de
// UpdateDate cuando cambia el costo, y consultas de vigentes por dueño.
type ContractUseCase struct {
	repo           repository.ContractRepository
	personRepo     repository.PersonRepository
	companyRepo    repository.CompanyRepository
	clientInfoRepo repository.ClientInfoRepository
	txRunner       TxRunner
	pdfGen         SummaryPDFGenerator
	clock          clock.Clock
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(
	repo repository.ContractRepository,
	personRepo repository.PersonRepository,
	companyRepo repository.CompanyRepository,
	clientInfoRepo repository.ClientInfoRepository,
	txRunner TxRunner,
	pdfGen SummaryPDFGenerator,
	clk clock.Clock,
) *ContractUseCase {
	return &ContractUseCase{
		repo:           repo,
		personRepo:     personRepo,
		companyRepo:    companyRepo,
		clientInfoRepo: clientInfoRepo,
		txRunner:       txRunner,
		pdfGen:         pdfGen,
		clock:          clk,
	}
}

// Save crea un contrato. Valida el invariante de dueño exclusivo antes de
// escribir (domain.ErrInvalidContract si falla) y estampa las fechas de auditoría.
func (uc *ContractUseCase) Save(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	now := uc.clock.Now()
	c := &entity.Contract{
		ID:           uuid.New().String(),
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		CostAmount:   in.CostAmount,
		PersonID:     in.PersonID,
		CompanyID:    in.CompanyID,
		CreationDate: now,
		UpdateDate:   now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// Update actualiza un contrato completo. Devuelve domain.ErrNotFound si el ID
// no existe. Si CostAmount difiere por valor del persistido, UpdateDate se
// estampa a ahora; si no, se conserva el UpdateDate enviado.
func (uc *ContractUseCase) Update(ctx context.Context, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	stored, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrNotFound
	}

	updated := &entity.Contract{
		ID:           stored.ID,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		CostAmount:   in.CostAmount,
		PersonID:     in.PersonID,
		CompanyID:    in.CompanyID,
		CreationDate: stored.CreationDate,
		UpdateDate:   in.UpdateDate,
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if !stored.CostAmount.Equal(in.CostAmount) {
		updated.UpdateDate = uc.clock.Now()
	}
	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return toContractResponse(updated), nil
}

// PartialUpdate aplica solo los campos presentes del request sobre el contrato
// persistido, dentro de una transacción. El resultado de la fusión se valida
// contra el invariante de dueño exclusivo; si el campo CostAmount viene en el
// request (aunque el valor no cambie), UpdateDate se estampa a ahora.
func (uc *ContractUseCase) PartialUpdate(ctx context.Context, in dto.PatchContractRequest) (*dto.ContractResponse, error) {
	var out *dto.ContractResponse
	err := uc.txRunner.Run(ctx, func(repo repository.ContractRepository) error {
		stored, err := repo.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if stored == nil {
			return domain.ErrNotFound
		}

		if in.StartDate != nil {
			stored.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			stored.EndDate = in.EndDate
		}
		if in.CostAmount != nil {
			stored.CostAmount = *in.CostAmount
		}
		if in.PersonID != nil {
			stored.PersonID = in.PersonID
		}
		if in.CompanyID != nil {
			stored.CompanyID = in.CompanyID
		}

		if err := stored.Validate(); err != nil {
			return err
		}
		if in.CostAmount != nil {
			stored.UpdateDate = uc.clock.Now()
		}
		if err := repo.Update(ctx, stored); err != nil {
			return err
		}
		out = toContractResponse(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindOne obtiene un contrato por ID. Devuelve (nil, nil) si no existe.
func (uc *ContractUseCase) FindOne(ctx context.Context, id string) (*dto.ContractResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// FindAll lista contratos con paginación, sin filtros.
func (uc *ContractUseCase) FindAll(ctx context.Context, page dto.PageRequest) (*dto.ContractListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, contract.NewFilterBuilder().Build(), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toContractListResponse(list, page), nil
}

// FindActiveByCompany lista los contratos vigentes de la empresa, opcionalmente
// acotados por rango de fecha de actualización. La paginación pasa sin cambios.
func (uc *ContractUseCase) FindActiveByCompany(ctx context.Context, companyID string, updatedFrom, updatedTo *time.Time, page dto.PageRequest) (*dto.ContractListResponse, error) {
	page.DefaultPage()
	f := contract.NewFilterBuilder().
		WithCompany(companyID).
		Active(uc.clock.Now()).
		UpdatedBetween(updatedFrom, updatedTo).
		Build()
	list, err := uc.repo.List(ctx, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toContractListResponse(list, page), nil
}

// FindActiveByPerson lista los contratos vigentes de la persona, opcionalmente
// acotados por rango de fecha de actualización.
func (uc *ContractUseCase) FindActiveByPerson(ctx context.Context, personID string, updatedFrom, updatedTo *time.Time, page dto.PageRequest) (*dto.ContractListResponse, error) {
	page.DefaultPage()
	f := contract.NewFilterBuilder().
		WithPerson(personID).
		Active(uc.clock.Now()).
		UpdatedBetween(updatedFrom, updatedTo).
		Build()
	list, err := uc.repo.List(ctx, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toContractListResponse(list, page), nil
}

// ActiveCostTotalByCompany suma el costo de los contratos vigentes de la
// empresa. Devuelve cero (nunca un valor ausente) si no hay contratos.
func (uc *ContractUseCase) ActiveCostTotalByCompany(ctx context.Context, companyID string) (decimal.Decimal, error) {
	f := contract.NewFilterBuilder().WithCompany(companyID).Active(uc.clock.Now()).Build()
	return uc.repo.SumCostAmount(ctx, f)
}

// ActiveCostTotalByPerson suma el costo de los contratos vigentes de la persona.
func (uc *ContractUseCase) ActiveCostTotalByPerson(ctx context.Context, personID string) (decimal.Decimal, error) {
	f := contract.NewFilterBuilder().WithPerson(personID).Active(uc.clock.Now()).Build()
	return uc.repo.SumCostAmount(ctx, f)
}

// Delete elimina el contrato por ID, sin cascada ni validación. Distinto de
// "cerrar" un contrato, que solo fija su EndDate.
func (uc *ContractUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// SummaryPDF genera la ficha PDF del contrato con los datos de su dueño.
func (uc *ContractUseCase) SummaryPDF(ctx context.Context, id string) ([]byte, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	var ownerInfo *entity.ClientInfo
	ownerKind := "Empresa"
	switch {
	case c.PersonID != nil:
		ownerKind = "Persona"
		if p, err := uc.personRepo.GetByID(*c.PersonID); err == nil && p != nil {
			ownerInfo, _ = uc.clientInfoRepo.GetByID(p.ClientInfoID)
		}
	case c.CompanyID != nil:
		if co, err := uc.companyRepo.GetByID(*c.CompanyID); err == nil && co != nil {
			ownerInfo, _ = uc.clientInfoRepo.GetByID(co.ClientInfoID)
		}
	}
	return uc.pdfGen.GenerateContractPDF(ctx, c, ownerInfo, ownerKind)
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:           c.ID,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		CostAmount:   c.CostAmount,
		PersonID:     c.PersonID,
		CompanyID:    c.CompanyID,
		CreationDate: c.CreationDate,
		UpdateDate:   c.UpdateDate,
	}
}

func toContractListResponse(list []*entity.Contract, page dto.PageRequest) *dto.ContractListResponse {
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContractResponse(c))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
