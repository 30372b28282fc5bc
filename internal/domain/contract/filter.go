// Package contract define el predicado componible con el que se consultan
// contratos. El Filter es un valor de criterios que la capa de almacenamiento
// traduce a SQL; Matches da la misma semántica en memoria.
package contract

import (
	"time"

	"github.com/tu-usuario/clientes-api/internal/domain/entity"
)

// Filter criterios de consulta sobre contratos. Los campos nil no restringen;
// todos los criterios presentes se combinan con AND.
type Filter struct {
	CompanyID   *string
	PersonID    *string
	ActiveAt    *time.Time
	UpdatedFrom *time.Time
	UpdatedTo   *time.Time
}

// FilterBuilder construye un Filter por encadenamiento. Sin llamadas opcionales
// el resultado coincide con todos los contratos.
type FilterBuilder struct {
	f Filter
}

// NewFilterBuilder crea un builder vacío (coincide con todo).
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// WithCompany restringe a contratos cuya empresa dueña es companyID.
func (b *FilterBuilder) WithCompany(companyID string) *FilterBuilder {
	b.f.CompanyID = &companyID
	return b
}

// WithPerson restringe a contratos cuya persona dueña es personID.
func (b *FilterBuilder) WithPerson(personID string) *FilterBuilder {
	b.f.PersonID = &personID
	return b
}

// Active restringe a contratos vigentes en el instante dado: sin EndDate, o con
// EndDate estrictamente posterior a now. La misma política aplica en la suma de
// costos (ver ContractRepository.SumCostAmount).
func (b *FilterBuilder) Active(now time.Time) *FilterBuilder {
	b.f.ActiveAt = &now
	return b
}

// UpdatedBetween agrega un rango sobre UpdateDate (inclusivo en ambos extremos).
// Con solo from: UpdateDate >= from. Con solo to: UpdateDate <= to.
// Con ambos nil no agrega restricción.
func (b *FilterBuilder) UpdatedBetween(from, to *time.Time) *FilterBuilder {
	b.f.UpdatedFrom = from
	b.f.UpdatedTo = to
	return b
}

// Build devuelve el Filter compuesto.
func (b *FilterBuilder) Build() Filter {
	return b.f
}

// Matches evalúa el predicado sobre un contrato en memoria. Es la definición
// de referencia de la semántica que los adaptadores de almacenamiento deben
// reproducir en SQL.
func (f Filter) Matches(c *entity.Contract) bool {
	if f.CompanyID != nil && (c.CompanyID == nil || *c.CompanyID != *f.CompanyID) {
		return false
	}
	if f.PersonID != nil && (c.PersonID == nil || *c.PersonID != *f.PersonID) {
		return false
	}
	if f.ActiveAt != nil && !c.ActiveAt(*f.ActiveAt) {
		return false
	}
	if f.UpdatedFrom != nil && c.UpdateDate.Before(*f.UpdatedFrom) {
		return false
	}
	if f.UpdatedTo != nil && c.UpdateDate.After(*f.UpdatedTo) {
		return false
	}
	return true
}
