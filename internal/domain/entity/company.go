package entity

import (
	"regexp"

	"github.com/tu-usuario/clientes-api/internal/domain"
)

// Identificador de empresa: tres letras minúsculas, guion, tres dígitos (ej. abc-123).
var companyIdentifierRe = regexp.MustCompile(`^[a-z]{3}-[0-9]{3}$`)

// Company cliente empresarial. CompanyIdentifier es inmutable por la vía de
// actualización; los datos de contacto viven en su ClientInfo (1:1 exclusiva).
type Company struct {
	ID                string
	CompanyIdentifier string
	ClientInfoID      string
}

// Validate verifica los campos obligatorios y el formato del identificador.
func (c *Company) Validate() error {
	if c.ClientInfoID == "" || !companyIdentifierRe.MatchString(c.CompanyIdentifier) {
		return domain.ErrInvalidInput
	}
	return nil
}
