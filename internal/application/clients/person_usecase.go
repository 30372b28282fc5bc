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

// PersonUseCase casos de uso para personas. El alta crea el perfil de cliente
// y la persona en una sola transacción; la baja delega en la cascada.
type PersonUseCase struct {
	repo           repository.PersonRepository
	clientInfoRepo repository.ClientInfoRepository
	txRunner       TxRunner
	deactivation   *DeactivationUseCase
	clock          clock.Clock
}

// NewPersonUseCase construye el caso de uso.
func NewPersonUseCase(
	repo repository.PersonRepository,
	clientInfoRepo repository.ClientInfoRepository,
	txRunner TxRunner,
	deactivation *DeactivationUseCase,
	clk clock.Clock,
) *PersonUseCase {
	return &PersonUseCase{
		repo:           repo,
		clientInfoRepo: clientInfoRepo,
		txRunner:       txRunner,
		deactivation:   deactivation,
		clock:          clk,
	}
}

// Create da de alta una persona con su perfil de cliente.
func (uc *PersonUseCase) Create(ctx context.Context, in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
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
	person := &entity.Person{
		ID:           uuid.New().String(),
		BirthDate:    in.BirthDate,
		ClientInfoID: ci.ID,
	}
	if err := person.Validate(); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.ContractRepository,
		personRepo repository.PersonRepository,
		_ repository.CompanyRepository,
		clientInfoRepo repository.ClientInfoRepository,
	) error {
		if err := clientInfoRepo.Create(ci); err != nil {
			return err
		}
		return personRepo.Create(person)
	})
	if err != nil {
		return nil, err
	}
	return toPersonResponse(person, ci), nil
}

// Update edita los datos de contacto de la persona. BirthDate es inmutable por
// esta vía. Devuelve domain.ErrNotFound si la persona no existe.
func (uc *PersonUseCase) Update(ctx context.Context, in dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}
	ci, err := uc.applyProfile(person.ClientInfoID, in.ClientInfo)
	if err != nil {
		return nil, err
	}
	return toPersonResponse(person, ci), nil
}

// PartialUpdate aplica solo los campos presentes del perfil. BirthDate no es
// editable. Devuelve domain.ErrNotFound si la persona no existe.
func (uc *PersonUseCase) PartialUpdate(ctx context.Context, in dto.PatchPersonRequest) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}
	ci, err := applyProfilePatch(uc.clientInfoRepo, uc.clock, person.ClientInfoID, in.ClientInfo)
	if err != nil {
		return nil, err
	}
	return toPersonResponse(person, ci), nil
}

// FindOne obtiene una persona con su perfil. Devuelve (nil, nil) si no existe.
func (uc *PersonUseCase) FindOne(ctx context.Context, id string) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(id)
	if err != nil || person == nil {
		return nil, err
	}
	ci, err := uc.clientInfoRepo.GetByID(person.ClientInfoID)
	if err != nil {
		return nil, err
	}
	return toPersonResponse(person, ci), nil
}

// FindAll lista personas con su perfil, con paginación.
func (uc *PersonUseCase) FindAll(ctx context.Context, page dto.PageRequest) (*dto.PersonListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		ci, err := uc.clientInfoRepo.GetByID(p.ClientInfoID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toPersonResponse(p, ci))
	}
	return &dto.PersonListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete da de baja a la persona: cierra sus contratos y desactiva su perfil.
// La fila de la persona no se elimina.
func (uc *PersonUseCase) Delete(ctx context.Context, id string) error {
	return uc.deactivation.DeactivatePerson(ctx, id)
}

func (uc *PersonUseCase) applyProfile(clientInfoID string, in dto.ClientInfoRequest) (*entity.ClientInfo, error) {
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

// applyProfilePatch aplica los campos presentes de un patch al perfil y lo
// persiste con el UpdateDate estampado.
func applyProfilePatch(repo repository.ClientInfoRepository, clk clock.Clock, clientInfoID string, in dto.PatchClientInfoRequest) (*entity.ClientInfo, error) {
	ci, err := repo.GetByID(clientInfoID)
	if err != nil {
		return nil, err
	}
	if ci == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		ci.Name = *in.Name
	}
	if in.Email != nil {
		ci.Email = *in.Email
	}
	if in.Phone != nil {
		ci.Phone = *in.Phone
	}
	if err := ci.Validate(); err != nil {
		return nil, err
	}
	ci.UpdateDate = clk.Now()
	if err := repo.Update(ci); err != nil {
		return nil, err
	}
	return ci, nil
}

func toPersonResponse(p *entity.Person, ci *entity.ClientInfo) *dto.PersonResponse {
	if p == nil {
		return nil
	}
	resp := &dto.PersonResponse{
		ID:        p.ID,
		BirthDate: p.BirthDate,
	}
	if ci != nil {
		resp.ClientInfo = *toClientInfoResponse(ci)
	}
	return resp
}

func toClientInfoResponse(ci *entity.ClientInfo) *dto.ClientInfoResponse {
	if ci == nil {
		return nil
	}
	return &dto.ClientInfoResponse{
		ID:           ci.ID,
		Name:         ci.Name,
		Email:        ci.Email,
		Phone:        ci.Phone,
		Active:       ci.Active,
		CreationDate: ci.CreationDate,
		UpdateDate:   ci.UpdateDate,
	}
}
