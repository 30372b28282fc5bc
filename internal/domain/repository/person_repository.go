package repository

import "github.com/tu-usuario/clientes-api/internal/domain/entity"

// PersonRepository puerto de persistencia para Person.
type PersonRepository interface {
	Create(p *entity.Person) error
	GetByID(id string) (*entity.Person, error)
	Update(p *entity.Person) error
	List(limit, offset int) ([]*entity.Person, error)
	Delete(id string) error
}
