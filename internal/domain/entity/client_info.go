package entity

import (
	"regexp"
	"time"

	"github.com/tu-usuario/clientes-api/internal/domain"
)

// Formato suizo: +41 79 123 45 67, 0041 79 123 45 67, 079 123 45 67, con o sin espacios.
var swissPhoneRe = regexp.MustCompile(`^(?:\+41|0041|0)(?:\s?\(0\))?\s?[1-9]{2}\s?[0-9]{3}\s?[0-9]{2}\s?[0-9]{2}$`)

// ClientInfo datos de identidad y contacto compartidos por una persona o una empresa.
// Exactamente un dueño (Person o Company) lo referencia; Active pasa a false
// cuando ese dueño se da de baja y nunca vuelve a true.
type ClientInfo struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Active       bool
	CreationDate time.Time
	UpdateDate   time.Time
}

// Validate verifica los campos obligatorios y el formato del teléfono.
func (c *ClientInfo) Validate() error {
	if c.Name == "" {
		return domain.ErrInvalidInput
	}
	if c.Phone != "" && !swissPhoneRe.MatchString(c.Phone) {
		return domain.ErrInvalidInput
	}
	return nil
}
