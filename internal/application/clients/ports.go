package clients

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la cascada de baja
// y para las altas que crean perfil + dueño en dos escrituras.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		contractRepo repository.ContractRepository,
		personRepo repository.PersonRepository,
		companyRepo repository.CompanyRepository,
		clientInfoRepo repository.ClientInfoRepository,
	) error) error
}
