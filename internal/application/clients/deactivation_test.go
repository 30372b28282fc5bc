package clients_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/clientes-api/internal/application/clients"
	"github.com/tu-usuario/clientes-api/internal/domain"
	"github.com/tu-usuario/clientes-api/internal/domain/contract"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
	"github.com/tu-usuario/clientes-api/internal/domain/repository"
	"github.com/tu-usuario/clientes-api/pkg/clock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por el paquete de tests (cascada de baja y
// casos de uso de personas/empresas).
// ──────────────────────────────────────────────────────────────────────────────

type memContractRepo struct {
	byID  map[string]*entity.Contract
	order []string
}

func newMemContractRepo() *memContractRepo {
	return &memContractRepo{byID: make(map[string]*entity.Contract)}
}

func (r *memContractRepo) add(c *entity.Contract) {
	cp := *c
	r.byID[c.ID] = &cp
	r.order = append(r.order, c.ID)
}

func (r *memContractRepo) Create(_ context.Context, c *entity.Contract) error {
	r.add(c)
	return nil
}

func (r *memContractRepo) GetByID(_ context.Context, id string) (*entity.Contract, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memContractRepo) Update(_ context.Context, c *entity.Contract) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memContractRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memContractRepo) List(ctx context.Context, f contract.Filter, limit, offset int) ([]*entity.Contract, error) {
	all, _ := r.ListAll(ctx, f)
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *memContractRepo) ListAll(_ context.Context, f contract.Filter) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, id := range r.order {
		c, ok := r.byID[id]
		if ok && f.Matches(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memContractRepo) SaveAll(ctx context.Context, list []*entity.Contract) error {
	for _, c := range list {
		if err := r.Update(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *memContractRepo) SumCostAmount(ctx context.Context, f contract.Filter) (decimal.Decimal, error) {
	list, _ := r.ListAll(ctx, f)
	total := decimal.Zero
	for _, c := range list {
		total = total.Add(c.CostAmount)
	}
	return total, nil
}

type memPersonRepo struct{ byID map[string]*entity.Person }

func (r *memPersonRepo) Create(p *entity.Person) error             { r.byID[p.ID] = p; return nil }
func (r *memPersonRepo) GetByID(id string) (*entity.Person, error) { return r.byID[id], nil }
func (r *memPersonRepo) Update(p *entity.Person) error             { r.byID[p.ID] = p; return nil }
func (r *memPersonRepo) List(_, _ int) ([]*entity.Person, error)   { return nil, nil }
func (r *memPersonRepo) Delete(id string) error                    { delete(r.byID, id); return nil }

type memCompanyRepo struct{ byID map[string]*entity.Company }

func (r *memCompanyRepo) Create(c *entity.Company) error             { r.byID[c.ID] = c; return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.byID[id], nil }
func (r *memCompanyRepo) GetByIdentifier(ident string) (*entity.Company, error) {
	for _, c := range r.byID {
		if c.CompanyIdentifier == ident {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) Update(c *entity.Company) error           { r.byID[c.ID] = c; return nil }
func (r *memCompanyRepo) List(_, _ int) ([]*entity.Company, error) { return nil, nil }
func (r *memCompanyRepo) Delete(id string) error                   { delete(r.byID, id); return nil }

type memClientInfoRepo struct{ byID map[string]*entity.ClientInfo }

func (r *memClientInfoRepo) Create(ci *entity.ClientInfo) error { r.byID[ci.ID] = ci; return nil }
func (r *memClientInfoRepo) GetByID(id string) (*entity.ClientInfo, error) {
	return r.byID[id], nil
}
func (r *memClientInfoRepo) Update(ci *entity.ClientInfo) error        { r.byID[ci.ID] = ci; return nil }
func (r *memClientInfoRepo) List(_, _ int) ([]*entity.ClientInfo, error) { return nil, nil }

// memTxRunner pasa los mismos repos fake; no hay transacción real.
type memTxRunner struct {
	contracts *memContractRepo
	persons   *memPersonRepo
	companies *memCompanyRepo
	infos     *memClientInfoRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	repository.ContractRepository,
	repository.PersonRepository,
	repository.CompanyRepository,
	repository.ClientInfoRepository,
) error) error {
	return fn(r.contracts, r.persons, r.companies, r.infos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque común
// ──────────────────────────────────────────────────────────────────────────────

var bajaNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type bajaFixture struct {
	uc        *clients.DeactivationUseCase
	contracts *memContractRepo
	persons   *memPersonRepo
	companies *memCompanyRepo
	infos     *memClientInfoRepo
}

func newBajaFixture() *bajaFixture {
	contractsRepo := newMemContractRepo()
	persons := &memPersonRepo{byID: make(map[string]*entity.Person)}
	companies := &memCompanyRepo{byID: make(map[string]*entity.Company)}
	infos := &memClientInfoRepo{byID: make(map[string]*entity.ClientInfo)}
	tx := &memTxRunner{contracts: contractsRepo, persons: persons, companies: companies, infos: infos}
	return &bajaFixture{
		uc:        clients.NewDeactivationUseCase(tx, clock.Fixed{T: bajaNow}),
		contracts: contractsRepo,
		persons:   persons,
		companies: companies,
		infos:     infos,
	}
}

func ownerContract(id string, companyID, personID *string, endDate *time.Time) *entity.Contract {
	return &entity.Contract{
		ID:           id,
		StartDate:    bajaNow.AddDate(-1, 0, 0),
		EndDate:      endDate,
		CostAmount:   decimal.NewFromFloat(100),
		CompanyID:    companyID,
		PersonID:     personID,
		CreationDate: bajaNow.AddDate(-1, 0, 0),
		UpdateDate:   bajaNow.AddDate(0, -6, 0),
	}
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Cascada de baja de empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivateCompany_CierraContratosYDesactivaPerfil(t *testing.T) {
	fx := newBajaFixture()
	fx.infos.byID["ci-1"] = &entity.ClientInfo{ID: "ci-1", Name: "Acme", Active: true}
	fx.companies.byID["e-1"] = &entity.Company{ID: "e-1", CompanyIdentifier: "abc-123", ClientInfoID: "ci-1"}

	// Sin fecha de fin, con fin futuro y con fin ya pasado.
	fx.contracts.add(ownerContract("c-abierto", ptr("e-1"), nil, nil))
	fx.contracts.add(ownerContract("c-futuro", ptr("e-1"), nil, ptr(bajaNow.AddDate(1, 0, 0))))
	finPasado := bajaNow.AddDate(0, -3, 0)
	fx.contracts.add(ownerContract("c-pasado", ptr("e-1"), nil, &finPasado))
	// De otra empresa: no debe tocarse.
	fx.contracts.add(ownerContract("c-ajeno", ptr("e-2"), nil, nil))

	require.NoError(t, fx.uc.DeactivateCompany(context.Background(), "e-1"))

	// Los vigentes quedan cerrados a ahora.
	for _, id := range []string{"c-abierto", "c-futuro"} {
		c := fx.contracts.byID[id]
		require.NotNil(t, c.EndDate, "%s debe quedar cerrado", id)
		assert.Equal(t, bajaNow, *c.EndDate)
		assert.Equal(t, bajaNow, c.UpdateDate)
	}
	// Un fin ya pasado se conserva tal cual.
	assert.Equal(t, finPasado, *fx.contracts.byID["c-pasado"].EndDate)
	// Contratos de otros dueños no se tocan.
	assert.Nil(t, fx.contracts.byID["c-ajeno"].EndDate)

	// El perfil queda desactivado pero no eliminado; la empresa sigue existiendo.
	assert.False(t, fx.infos.byID["ci-1"].Active)
	assert.NotNil(t, fx.companies.byID["e-1"])
}

// La baja repetida no cambia nada: los contratos ya cerrados a un instante
// pasado conservan su fecha.
func TestDeactivateCompany_Idempotente(t *testing.T) {
	fx := newBajaFixture()
	fx.infos.byID["ci-1"] = &entity.ClientInfo{ID: "ci-1", Name: "Acme", Active: true}
	fx.companies.byID["e-1"] = &entity.Company{ID: "e-1", CompanyIdentifier: "abc-123", ClientInfoID: "ci-1"}
	fx.contracts.add(ownerContract("c-1", ptr("e-1"), nil, nil))

	require.NoError(t, fx.uc.DeactivateCompany(context.Background(), "e-1"))
	primerCierre := *fx.contracts.byID["c-1"].EndDate

	// Segunda baja con un reloj posterior.
	tx := &memTxRunner{contracts: fx.contracts, persons: fx.persons, companies: fx.companies, infos: fx.infos}
	uc2 := clients.NewDeactivationUseCase(tx, clock.Fixed{T: bajaNow.Add(time.Hour)})
	require.NoError(t, uc2.DeactivateCompany(context.Background(), "e-1"))

	assert.Equal(t, primerCierre, *fx.contracts.byID["c-1"].EndDate,
		"un contrato ya cerrado no se vuelve a cerrar")
	assert.False(t, fx.infos.byID["ci-1"].Active)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cascada de baja de persona (misma política)
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivatePerson_CierraContratosYDesactivaPerfil(t *testing.T) {
	fx := newBajaFixture()
	fx.infos.byID["ci-2"] = &entity.ClientInfo{ID: "ci-2", Name: "Ana", Active: true}
	fx.persons.byID["p-1"] = &entity.Person{ID: "p-1", ClientInfoID: "ci-2"}
	fx.contracts.add(ownerContract("c-1", nil, ptr("p-1"), nil))

	require.NoError(t, fx.uc.DeactivatePerson(context.Background(), "p-1"))

	require.NotNil(t, fx.contracts.byID["c-1"].EndDate)
	assert.Equal(t, bajaNow, *fx.contracts.byID["c-1"].EndDate)
	assert.False(t, fx.infos.byID["ci-2"].Active)
	// La fila de la persona nunca se elimina por esta vía.
	assert.NotNil(t, fx.persons.byID["p-1"])
}

// Si el dueño ya no existe, el cierre de contratos se ejecuta igual y el paso
// del perfil se omite sin error.
func TestDeactivatePerson_DuenoInexistente(t *testing.T) {
	fx := newBajaFixture()
	fx.contracts.add(ownerContract("c-huerfano", nil, ptr("p-borrada"), nil))

	require.NoError(t, fx.uc.DeactivatePerson(context.Background(), "p-borrada"))

	require.NotNil(t, fx.contracts.byID["c-huerfano"].EndDate)
	assert.Equal(t, bajaNow, *fx.contracts.byID["c-huerfano"].EndDate)
}
