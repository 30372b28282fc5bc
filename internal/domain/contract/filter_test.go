package contract_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/clientes-api/internal/domain/contract"
	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string       { return &s }
func timePtr(t time.Time) *time.Time { return &t }

// buildContract construye un contrato de empresa vigente con UpdateDate = testNow.
func buildContract(companyID string) *entity.Contract {
	return &entity.Contract{
		ID:           "c-1",
		StartDate:    testNow.AddDate(-1, 0, 0),
		CostAmount:   decimal.NewFromFloat(100),
		CompanyID:    strPtr(companyID),
		CreationDate: testNow.AddDate(-1, 0, 0),
		UpdateDate:   testNow,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Composición del builder
// ──────────────────────────────────────────────────────────────────────────────

// Un builder vacío coincide con cualquier contrato.
func TestFilter_VacioCoincideConTodo(t *testing.T) {
	f := contract.NewFilterBuilder().Build()

	assert.True(t, f.Matches(buildContract("acme")))

	conFin := buildContract("acme")
	pasado := testNow.AddDate(0, -1, 0)
	conFin.EndDate = &pasado
	assert.True(t, f.Matches(conFin), "sin criterio de vigencia, un contrato terminado también coincide")
}

// Los criterios son independientes: agregar uno no altera los demás, y el
// orden de encadenamiento no cambia el resultado.
func TestFilter_OrdenDeCriteriosIndiferente(t *testing.T) {
	from := timePtr(testNow.AddDate(0, 0, -7))

	a := contract.NewFilterBuilder().WithCompany("acme").Active(testNow).UpdatedBetween(from, nil).Build()
	b := contract.NewFilterBuilder().UpdatedBetween(from, nil).Active(testNow).WithCompany("acme").Build()

	c := buildContract("acme")
	assert.Equal(t, a.Matches(c), b.Matches(c))
	assert.True(t, a.Matches(c))

	otro := buildContract("globex")
	assert.Equal(t, a.Matches(otro), b.Matches(otro))
	assert.False(t, a.Matches(otro))
}

// Todos los criterios presentes se combinan con AND: basta que uno falle.
func TestFilter_CombinacionAND(t *testing.T) {
	f := contract.NewFilterBuilder().
		WithCompany("acme").
		Active(testNow).
		Build()

	vigente := buildContract("acme")
	assert.True(t, f.Matches(vigente))

	terminado := buildContract("acme")
	pasado := testNow.AddDate(0, -1, 0)
	terminado.EndDate = &pasado
	assert.False(t, f.Matches(terminado), "dueño correcto pero terminado no debe coincidir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Criterio de dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_PorPersona(t *testing.T) {
	f := contract.NewFilterBuilder().WithPerson("p-1").Build()

	c := &entity.Contract{
		ID:         "c-2",
		StartDate:  testNow,
		CostAmount: decimal.NewFromFloat(50),
		PersonID:   strPtr("p-1"),
		UpdateDate: testNow,
	}
	assert.True(t, f.Matches(c))

	// Un contrato de empresa no coincide con un filtro por persona.
	assert.False(t, f.Matches(buildContract("acme")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de vigencia: sin EndDate cuenta como vigente; con EndDate, vigente
// solo si es estrictamente posterior al instante consultado.
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_Vigencia(t *testing.T) {
	f := contract.NewFilterBuilder().Active(testNow).Build()

	sinFin := buildContract("acme")
	assert.True(t, f.Matches(sinFin), "EndDate ausente cuenta como vigente")

	finFuturo := buildContract("acme")
	finFuturo.EndDate = timePtr(testNow.AddDate(0, 1, 0))
	assert.True(t, f.Matches(finFuturo))

	finPasado := buildContract("acme")
	finPasado.EndDate = timePtr(testNow.AddDate(0, -1, 0))
	assert.False(t, f.Matches(finPasado))

	// El borde exacto no es vigente: se exige EndDate > now, no >=.
	finExacto := buildContract("acme")
	finExacto.EndDate = timePtr(testNow)
	assert.False(t, f.Matches(finExacto))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango de fecha de actualización (inclusivo en ambos extremos)
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_RangoActualizacion(t *testing.T) {
	from := timePtr(testNow.AddDate(0, 0, -7))
	to := timePtr(testNow.AddDate(0, 0, 7))

	enRango := buildContract("acme") // UpdateDate = testNow

	// Ambos extremos.
	f := contract.NewFilterBuilder().UpdatedBetween(from, to).Build()
	assert.True(t, f.Matches(enRango))

	// Extremos inclusivos.
	enFrom := buildContract("acme")
	enFrom.UpdateDate = *from
	assert.True(t, f.Matches(enFrom))
	enTo := buildContract("acme")
	enTo.UpdateDate = *to
	assert.True(t, f.Matches(enTo))

	// Fuera de rango.
	antes := buildContract("acme")
	antes.UpdateDate = from.AddDate(0, 0, -1)
	assert.False(t, f.Matches(antes))

	// Solo from: UpdateDate >= from.
	soloFrom := contract.NewFilterBuilder().UpdatedBetween(from, nil).Build()
	assert.True(t, soloFrom.Matches(enRango))
	assert.False(t, soloFrom.Matches(antes))

	// Solo to: UpdateDate <= to.
	despues := buildContract("acme")
	despues.UpdateDate = to.AddDate(0, 0, 1)
	soloTo := contract.NewFilterBuilder().UpdatedBetween(nil, to).Build()
	assert.True(t, soloTo.Matches(enRango))
	assert.False(t, soloTo.Matches(despues))

	// Ambos nil: no restringe.
	sinRango := contract.NewFilterBuilder().UpdatedBetween(nil, nil).Build()
	assert.True(t, sinRango.Matches(antes))
	assert.True(t, sinRango.Matches(despues))
}
