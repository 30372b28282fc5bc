package entity

import (
	"time"

	"github.com/tu-usuario/clientes-api/internal/domain"
)

// Person cliente particular. BirthDate es inmutable por la vía de actualización;
// los datos de contacto viven en su ClientInfo (relación 1:1 exclusiva).
type Person struct {
	ID           string
	BirthDate    time.Time
	ClientInfoID string
}

// Validate verifica los campos obligatorios.
func (p *Person) Validate() error {
	if p.BirthDate.IsZero() || p.ClientInfoID == "" {
		return domain.ErrInvalidInput
	}
	return nil
}
