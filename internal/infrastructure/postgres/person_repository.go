package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo implementación de PersonRepository (usable con pool o tx).
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

// Create persiste una nueva persona.
func (r *PersonRepo) Create(p *entity.Person) error {
	query := `INSERT INTO persons (id, birth_date, client_info_id) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.BirthDate, p.ClientInfoID)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID. Devuelve (nil, nil) si no existe.
func (r *PersonRepo) GetByID(id string) (*entity.Person, error) {
	query := `SELECT id, birth_date, client_info_id FROM persons WHERE id = $1`
	var p entity.Person
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.BirthDate, &p.ClientInfoID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return &p, nil
}

// Update actualiza una persona existente.
func (r *PersonRepo) Update(p *entity.Person) error {
	query := `UPDATE persons SET birth_date = $2, client_info_id = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.BirthDate, p.ClientInfoID)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	return nil
}

// List devuelve personas con paginación.
func (r *PersonRepo) List(limit, offset int) ([]*entity.Person, error) {
	query := `SELECT id, birth_date, client_info_id FROM persons ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()
	var list []*entity.Person
	for rows.Next() {
		var p entity.Person
		if err := rows.Scan(&p.ID, &p.BirthDate, &p.ClientInfoID); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una persona por ID. La cascada de baja no usa esta vía.
func (r *PersonRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}
