package repository

import "github.com/tu-usuario/clientes-api/internal/domain/entity"

// CompanyRepository puerto de persistencia para Company.
type CompanyRepository interface {
	Create(c *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByIdentifier(identifier string) (*entity.Company, error)
	Update(c *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	Delete(id string) error
}
