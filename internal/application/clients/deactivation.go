package clients

import (
	"context"

	"github.com/tu-usuario/clientes-api/internal/domain/contract"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
	"github.com/tu-usuario/clientes-api/pkg/clock"
)

// DeactivationUseCase cascada de baja de un cliente: cierra todos sus
// contratos y desactiva su perfil, en una sola transacción. La misma política
// aplica a personas y a empresas; la fila del dueño nunca se elimina por esta vía.
type DeactivationUseCase struct {
	txRunner TxRunner
	clock    clock.Clock
}

// NewDeactivationUseCase construye el caso de uso.
func NewDeactivationUseCase(txRunner TxRunner, clk clock.Clock) *DeactivationUseCase {
	return &DeactivationUseCase{txRunner: txRunner, clock: clk}
}

// DeactivatePerson cierra los contratos de la persona y desactiva su perfil.
// Si la persona ya no existe, el cierre de contratos se ejecuta igual y el
// paso del perfil se omite en silencio.
func (uc *DeactivationUseCase) DeactivatePerson(ctx context.Context, personID string) error {
	return uc.txRunner.Run(ctx, func(
		contractRepo repository.ContractRepository,
		personRepo repository.PersonRepository,
		_ repository.CompanyRepository,
		clientInfoRepo repository.ClientInfoRepository,
	) error {
		f := contract.NewFilterBuilder().WithPerson(personID).Build()
		if err := uc.closeContracts(ctx, contractRepo, f); err != nil {
			return err
		}
		person, err := personRepo.GetByID(personID)
		if err != nil {
			return err
		}
		if person == nil {
			return nil
		}
		return uc.deactivateProfile(clientInfoRepo, person.ClientInfoID)
	})
}

// DeactivateCompany cierra los contratos de la empresa y desactiva su perfil.
func (uc *DeactivationUseCase) DeactivateCompany(ctx context.Context, companyID string) error {
	return uc.txRunner.Run(ctx, func(
		contractRepo repository.ContractRepository,
		_ repository.PersonRepository,
		companyRepo repository.CompanyRepository,
		clientInfoRepo repository.ClientInfoRepository,
	) error {
		f := contract.NewFilterBuilder().WithCompany(companyID).Build()
		if err := uc.closeContracts(ctx, contractRepo, f); err != nil {
			return err
		}
		company, err := companyRepo.GetByID(companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return nil
		}
		return uc.deactivateProfile(clientInfoRepo, company.ClientInfoID)
	})
}

// closeContracts fija EndDate = ahora en los contratos aún vigentes del dueño.
// Un EndDate ya pasado se conserva tal cual.
func (uc *DeactivationUseCase) closeContracts(ctx context.Context, repo repository.ContractRepository, f contract.Filter) error {
	now := uc.clock.Now()
	list, err := repo.ListAll(ctx, f)
	if err != nil {
		return err
	}
	changed := list[:0]
	for _, c := range list {
		if c.EndDate == nil || c.EndDate.After(now) {
			end := now
			c.EndDate = &end
			c.UpdateDate = now
			changed = append(changed, c)
		}
	}
	if len(changed) == 0 {
		return nil
	}
	return repo.SaveAll(ctx, changed)
}

func (uc *DeactivationUseCase) deactivateProfile(repo repository.ClientInfoRepository, clientInfoID string) error {
	ci, err := repo.GetByID(clientInfoID)
	if err != nil {
		return err
	}
	if ci == nil {
		return nil
	}
	ci.Active = false
	ci.UpdateDate = uc.clock.Now()
	return repo.Update(ci)
}
