package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa. Devuelve domain.ErrDuplicate si el
// identificador ya existe.
func (r *CompanyRepo) Create(c *entity.Company) error {
	query := `INSERT INTO companies (id, company_identifier, client_info_id) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.CompanyIdentifier, c.ClientInfoID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT id, company_identifier, client_info_id FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.CompanyIdentifier, &c.ClientInfoID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByIdentifier obtiene una empresa por su identificador.
func (r *CompanyRepo) GetByIdentifier(identifier string) (*entity.Company, error) {
	query := `SELECT id, company_identifier, client_info_id FROM companies WHERE company_identifier = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, identifier).Scan(&c.ID, &c.CompanyIdentifier, &c.ClientInfoID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by identifier: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(c *entity.Company) error {
	query := `UPDATE companies SET company_identifier = $2, client_info_id = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.CompanyIdentifier, c.ClientInfoID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT id, company_identifier, client_info_id FROM companies ORDER BY company_identifier LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.CompanyIdentifier, &c.ClientInfoID); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID. La cascada de baja no usa esta vía.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
