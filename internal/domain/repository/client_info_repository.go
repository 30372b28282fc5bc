package repository

import "github.com/tu-usuario/clientes-api/internal/domain/entity"

// ClientInfoRepository puerto de persistencia para ClientInfo.
// El perfil nunca se elimina por esta vía: la cascada de baja solo lo desactiva.
type ClientInfoRepository interface {
	Create(ci *entity.ClientInfo) error
	GetByID(id string) (*entity.ClientInfo, error)
	Update(ci *entity.ClientInfo) error
	List(limit, offset int) ([]*entity.ClientInfo, error)
}
