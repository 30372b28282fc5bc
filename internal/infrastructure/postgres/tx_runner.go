package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/clientes-api/internal/application/clients"
	"github.com/tu-usuario/clientes-api/internal/application/contracts"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

// Verificación estática de los puertos transaccionales.
var _ contracts.TxRunner = (*ContractTxRunner)(nil)
var _ clients.TxRunner = (*ClientTxRunner)(nil)

// ContractTxRunner ejecuta callbacks del ciclo de vida de contratos dentro de
// una transacción PostgreSQL (leer-modificar-escribir de la actualización parcial).
type ContractTxRunner struct {
	pool *pgxpool.Pool
}

// NewContractTxRunner construye el runner con el pool.
func NewContractTxRunner(pool *pgxpool.Pool) *ContractTxRunner {
	return &ContractTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repo de contratos atado a la tx
// y hace Commit o Rollback.
func (r *ContractTxRunner) Run(ctx context.Context, fn func(contractRepo repository.ContractRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewContractRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ClientTxRunner ejecuta la cascada de baja y las altas de cliente dentro de
// una transacción, con todos los repos implicados atados a esa tx.
type ClientTxRunner struct {
	pool *pgxpool.Pool
}

// NewClientTxRunner construye el runner con el pool.
func NewClientTxRunner(pool *pgxpool.Pool) *ClientTxRunner {
	return &ClientTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit o Rollback.
func (r *ClientTxRunner) Run(ctx context.Context, fn func(
	contractRepo repository.ContractRepository,
	personRepo repository.PersonRepository,
	companyRepo repository.CompanyRepository,
	clientInfoRepo repository.ClientInfoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewContractRepository(tx),
		NewPersonRepository(tx),
		NewCompanyRepository(tx),
		NewClientInfoRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
