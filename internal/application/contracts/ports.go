package contracts

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de contratos atado a esa tx. Garantiza que el
// leer-modificar-escribir de la actualización parcial sea atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(contractRepo repository.ContractRepository) error) error
}

// SummaryPDFGenerator genera la ficha PDF de un contrato.
type SummaryPDFGenerator interface {
	GenerateContractPDF(ctx context.Context, c *entity.Contract, owner *entity.ClientInfo, ownerKind string) ([]byte, error)
}
