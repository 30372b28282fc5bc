package clients

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
	"github.com/tu-usuario/clientes-api/pkg/clock"
)

// CompanyUseCase casos de uso para empresas. Misma forma que PersonUseCase:
// alta transaccional de perfil + empresa, baja vía cascada.
type CompanyUseCase struct {
	repo           repository.CompanyRepository
	clientInfoRepo repository.ClientInfoRepository
	txRunner       TxRunner
	deactivation   *DeactivationUseCase
	clock          clock.Clock
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(
	repo repository.CompanyRepository,
	clientInfoRepo repository.ClientInfoRepository,
	txRunner TxRunner,
	deactivation *DeactivationUseCase,
	clk clock.Clock,
) *CompanyUseCase {
	return &CompanyUseCase{
		repo:           repo,
		clientInfoRepo: clientInfoRepo,
		txRunner:       txRunner,
		deactivation:   deactivation,
		clock:          clk,
	}
}

// Create da de alta una empresa con su perfil de cliente. Devuelve
// domain.ErrDuplicate si el identificador ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByIdentifier(in.CompanyIdentifier)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := uc.clock.Now()
	ci := &entity.ClientInfo{
		ID:           uuid.New().String(),
		Name:         in.ClientInfo.Name,
		Email:        in.ClientInfo.Email,
		Phone:        in.ClientInfo.Phone,
		Active:       true,
		CreationDate: now,
		UpdateDate:   now,
	}
	if err := ci.Validate(); err != nil {
		return nil, err
	}
	company := &entity.Company{
		ID:                uuid.New().String(),
		CompanyIdentifier: in.CompanyIdentifier,
		ClientInfoID:      ci.ID,
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.ContractRepository,
		_ repository.PersonRepository,
		companyRepo repository.CompanyRepository,
		clientInfoRepo repository.ClientInfoRepository,
	) error {
		if err := clientInfoRepo.Create(ci); err != nil {
			return err
		}
		return companyRepo.Create(company)
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company, ci), nil
}

// Update edita los datos de contacto de la empresa. CompanyIdentifier es
// inmutable por esta vía. Devuelve domain.ErrNotFound si la empresa no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	ci, err := uc.applyProfile(company.ClientInfoID, in.ClientInfo)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company, ci), nil
}

// PartialUpdate aplica solo los campos presentes del perfil. CompanyIdentifier
// no es editable. Devuelve domain.ErrNotFound si la empresa no existe.
func (uc *CompanyUseCase) PartialUpdate(ctx context.Context, in dto.PatchCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	ci, err := applyProfilePatch(uc.clientInfoRepo, uc.clock, company.ClientInfoID, in.ClientInfo)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company, ci), nil
}

// FindOne obtiene una empresa con su perfil. Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) FindOne(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil || company == nil {
		return nil, err
	}
	ci, err := uc.clientInfoRepo.GetByID(company.ClientInfoID)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company, ci), nil
}

// FindAll lista empresas con su perfil, con paginación.
func (uc *CompanyUseCase) FindAll(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		ci, err := uc.clientInfoRepo.GetByID(c.ClientInfoID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toCompanyResponse(c, ci))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete da de baja a la empresa: cierra sus contratos y desactiva su perfil.
// La fila de la empresa no se elimina.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	return uc.deactivation.DeactivateCompany(ctx, id)
}

func (uc *CompanyUseCase) applyProfile(clientInfoID string, in dto.ClientInfoRequest) (*entity.ClientInfo, error) {
	ci, err := uc.clientInfoRepo.GetByID(clientInfoID)
	if err != nil {
		return nil, err
	}
	if ci == nil {
		return nil, domain.ErrNotFound
	}
	ci.Name = in.Name
	ci.Email = in.Email
	ci.Phone = in.Phone
	if err := ci.Validate(); err != nil {
		return nil, err
	}
	ci.UpdateDate = uc.clock.Now()
	if err := uc.clientInfoRepo.Update(ci); err != nil {
		return nil, err
	}
	return ci, nil
}

func toCompanyResponse(c *entity.Company, ci *entity.ClientInfo) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CompanyResponse{
		ID:                c.ID,
		CompanyIdentifier: c.CompanyIdentifier,
	}
	if ci != nil {
		resp.ClientInfo = *toClientInfoResponse(ci)
	}
	return resp
}
