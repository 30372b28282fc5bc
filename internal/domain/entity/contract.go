package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-api/internal/domain"
)

// Contract acuerdo con costo asociado. Pertenece a exactamente uno de
// {Person, Company}. Un EndDate ausente significa que el contrato sigue vigente.
type Contract struct {
	ID           string
	StartDate    time.Time
	EndDate      *time.Time
	CostAmount   decimal.Decimal
	PersonID     *string
	CompanyID    *string
	CreationDate time.Time
	UpdateDate   time.Time
}

// Validate verifica el invariante de dueño exclusivo y los campos obligatorios.
// Devuelve domain.ErrInvalidContract si el contrato tiene ambos dueños o ninguno.
func (c *Contract) Validate() error {
	hasPerson := c.PersonID != nil && *c.PersonID != ""
	hasCompany := c.CompanyID != nil && *c.CompanyID != ""
	if hasPerson == hasCompany {
		return domain.ErrInvalidContract
	}
	if c.StartDate.IsZero() || c.CostAmount.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// ActiveAt informa si el contrato está vigente en el instante dado.
// Sin EndDate cuenta como vigente; con EndDate, vigente solo si es posterior a now.
func (c *Contract) ActiveAt(now time.Time) bool {
	return c.EndDate == nil || c.EndDate.After(now)
}
