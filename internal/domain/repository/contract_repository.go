package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-api/internal/domain/contract"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// ContractRepository puerto de persistencia para Contract. Las consultas
// filtradas reciben un contract.Filter que el adaptador traduce a SQL.
type ContractRepository interface {
	Create(ctx context.Context, c *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	Update(ctx context.Context, c *entity.Contract) error
	Delete(ctx context.Context, id string) error

	// List devuelve una página de contratos que cumplen el filtro.
	List(ctx context.Context, f contract.Filter, limit, offset int) ([]*entity.Contract, error)
	// ListAll devuelve todos los contratos que cumplen el filtro (sin paginar;
	// usado por la cascada de baja).
	ListAll(ctx context.Context, f contract.Filter) ([]*entity.Contract, error)
	// SaveAll persiste en lote los contratos dados (update por ID).
	SaveAll(ctx context.Context, contracts []*entity.Contract) error
	// SumCostAmount suma cost_amount sobre los contratos que cumplen el filtro.
	// Devuelve decimal.Zero (nunca un valor ausente) si ninguno coincide.
	SumCostAmount(ctx context.Context, f contract.Filter) (decimal.Decimal, error)
}
