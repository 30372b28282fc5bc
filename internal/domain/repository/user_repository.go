package repository

import "github.com/tu-usuario/clientes-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios de la API.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
