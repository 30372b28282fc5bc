package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.ClientInfoRepository = (*ClientInfoRepo)(nil)

// ClientInfoRepo implementación de ClientInfoRepository (usable con pool o tx).
type ClientInfoRepo struct {
	q Querier
}

// NewClientInfoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientInfoRepository(q Querier) *ClientInfoRepo {
	return &ClientInfoRepo{q: q}
}

const clientInfoColumns = `id, name, email, phone, active, creation_date, update_date`

// Create persiste un nuevo perfil de cliente.
func (r *ClientInfoRepo) Create(ci *entity.ClientInfo) error {
	query := `
		INSERT INTO client_infos (` + clientInfoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ci.ID, ci.Name, ci.Email, ci.Phone, ci.Active, ci.CreationDate, ci.UpdateDate,
	)
	if err != nil {
		return fmt.Errorf("insert client_info: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID. Devuelve (nil, nil) si no existe.
func (r *ClientInfoRepo) GetByID(id string) (*entity.ClientInfo, error) {
	query := `SELECT ` + clientInfoColumns + ` FROM client_infos WHERE id = $1`
	var ci entity.ClientInfo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ci.ID, &ci.Name, &ci.Email, &ci.Phone, &ci.Active, &ci.CreationDate, &ci.UpdateDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client_info: %w", err)
	}
	return &ci, nil
}

// Update actualiza un perfil existente.
func (r *ClientInfoRepo) Update(ci *entity.ClientInfo) error {
	query := `
		UPDATE client_infos SET name = $2, email = $3, phone = $4, active = $5, update_date = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ci.ID, ci.Name, ci.Email, ci.Phone, ci.Active, ci.UpdateDate,
	)
	if err != nil {
		return fmt.Errorf("update client_info: %w", err)
	}
	return nil
}

// List devuelve perfiles con paginación.
func (r *ClientInfoRepo) List(limit, offset int) ([]*entity.ClientInfo, error) {
	query := `SELECT ` + clientInfoColumns + ` FROM client_infos ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list client_infos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientInfo
	for rows.Next() {
		var ci entity.ClientInfo
		if err := rows.Scan(&ci.ID, &ci.Name, &ci.Email, &ci.Phone, &ci.Active, &ci.CreationDate, &ci.UpdateDate); err != nil {
			return nil, fmt.Errorf("scan client_info: %w", err)
		}
		list = append(list, &ci)
	}
	return list, rows.Err()
}
