package clients

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/application/dto"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
	"github.com/tu-usuario/clientes-api/pkg/clock"
)

// ClientInfoUseCase lectura y edición directa de perfiles de cliente.
// El flag Active no es editable por esta vía: solo la cascada de baja lo apaga
// y nunca vuelve a encenderse.
type ClientInfoUseCase struct {
	repo  repository.ClientInfoRepository
	clock clock.Clock
}

// NewClientInfoUseCase construye el caso de uso.
func NewClientInfoUseCase(repo repository.ClientInfoRepository, clk clock.Clock) *ClientInfoUseCase {
	return &ClientInfoUseCase{repo: repo, clock: clk}
}

// FindOne obtiene un perfil por ID. Devuelve (nil, nil) si no existe.
func (uc *ClientInfoUseCase) FindOne(ctx context.Context, id string) (*dto.ClientInfoResponse, error) {
	ci, err := uc.repo.GetByID(id)
	if err != nil || ci == nil {
		return nil, err
	}
	return toClientInfoResponse(ci), nil
}

// FindAll lista perfiles con paginación.
func (uc *ClientInfoUseCase) FindAll(ctx context.Context, page dto.PageRequest) (*dto.ClientInfoListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientInfoResponse, 0, len(list))
	for _, ci := range list {
		items = append(items, *toClientInfoResponse(ci))
	}
	return &dto.ClientInfoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edita los datos de contacto de un perfil. Devuelve domain.ErrNotFound
// si el perfil no existe.
func (uc *ClientInfoUseCase) Update(ctx context.Context, id string, in dto.ClientInfoRequest) (*dto.ClientInfoResponse, error) {
	ci, err := uc.repo.GetByID(id)
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
	if err := uc.repo.Update(ci); err != nil {
		return nil, err
	}
	return toClientInfoResponse(ci), nil
}
