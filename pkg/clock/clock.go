// Package clock abstrae la hora actual para que los casos de uso que estampan
// fechas (ciclo de vida de contratos, cascada de baja) sean deterministas en tests.
package clock

import "time"

// Clock fuente de la hora actual.
type Clock interface {
	Now() time.Time
}

// System usa time.Now.
type System struct{}

// Now devuelve la hora del sistema en UTC.
func (System) Now() time.Time { return time.Now().UTC() }

// Fixed devuelve siempre el mismo instante. Pensado para tests.
type Fixed struct {
	T time.Time
}

// Now devuelve el instante fijado.
func (f Fixed) Now() time.Time { return f.T }
