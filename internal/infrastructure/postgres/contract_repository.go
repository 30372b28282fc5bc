package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-api/internal/domain/contract"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación de ContractRepository (usable con pool o tx).
// Traduce contract.Filter a cláusulas WHERE combinadas con AND.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, start_date, end_date, cost_amount, person_id, company_id, creation_date, update_date`

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.StartDate, c.EndDate, c.CostAmount, c.PersonID, c.CompanyID,
		c.CreationDate, c.UpdateDate,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID. Devuelve (nil, nil) si no existe.
func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	var c entity.Contract
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.StartDate, &c.EndDate, &c.CostAmount, &c.PersonID, &c.CompanyID,
		&c.CreationDate, &c.UpdateDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// Update actualiza un contrato existente.
func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) error {
	query := `
		UPDATE contracts
		SET start_date = $2, end_date = $3, cost_amount = $4, person_id = $5, company_id = $6, update_date = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.StartDate, c.EndDate, c.CostAmount, c.PersonID, c.CompanyID, c.UpdateDate,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	return nil
}

// Delete elimina un contrato por ID.
func (r *ContractRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}

// List devuelve una página de contratos que cumplen el filtro.
func (r *ContractRepo) List(ctx context.Context, f contract.Filter, limit, offset int) ([]*entity.Contract, error) {
	where, args := whereClause(f)
	query := fmt.Sprintf(`SELECT `+contractColumns+` FROM contracts%s ORDER BY creation_date DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.queryContracts(ctx, query, args)
}

// ListAll devuelve todos los contratos que cumplen el filtro (sin paginar).
func (r *ContractRepo) ListAll(ctx context.Context, f contract.Filter) ([]*entity.Contract, error) {
	where, args := whereClause(f)
	query := `SELECT ` + contractColumns + ` FROM contracts` + where + ` ORDER BY creation_date DESC`
	return r.queryContracts(ctx, query, args)
}

// SaveAll actualiza en lote los contratos dados.
func (r *ContractRepo) SaveAll(ctx context.Context, list []*entity.Contract) error {
	for _, c := range list {
		if err := r.Update(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// SumCostAmount suma cost_amount sobre los contratos que cumplen el filtro.
// COALESCE garantiza cero (no NULL) cuando ninguna fila coincide.
func (r *ContractRepo) SumCostAmount(ctx context.Context, f contract.Filter) (decimal.Decimal, error) {
	where, args := whereClause(f)
	query := `SELECT COALESCE(SUM(cost_amount), 0) FROM contracts` + where
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum contracts: %w", err)
	}
	return total, nil
}

func (r *ContractRepo) queryContracts(ctx context.Context, query string, args []any) ([]*entity.Contract, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(
			&c.ID, &c.StartDate, &c.EndDate, &c.CostAmount, &c.PersonID, &c.CompanyID,
			&c.CreationDate, &c.UpdateDate,
		); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// whereClause traduce el Filter a SQL. La política de vigencia es la misma que
// contract.Filter.Matches: end_date ausente o estrictamente posterior a now.
func whereClause(f contract.Filter) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.CompanyID != nil {
		conds = append(conds, "company_id = "+arg(*f.CompanyID))
	}
	if f.PersonID != nil {
		conds = append(conds, "person_id = "+arg(*f.PersonID))
	}
	if f.ActiveAt != nil {
		p := arg(*f.ActiveAt)
		conds = append(conds, "(end_date IS NULL OR end_date > "+p+")")
	}
	if f.UpdatedFrom != nil {
		conds = append(conds, "update_date >= "+arg(*f.UpdatedFrom))
	}
	if f.UpdatedTo != nil {
		conds = append(conds, "update_date <= "+arg(*f.UpdatedTo))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
