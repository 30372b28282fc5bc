package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/clientes-api/internal/domain/contract"
)

// Tests de la traducción Filter → SQL. La semántica de referencia es
// contract.Filter.Matches; aquí se verifica que el WHERE generado la reproduce.

var sqlNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestWhereClause_FiltroVacio(t *testing.T) {
	where, args := whereClause(contract.Filter{})
	assert.Empty(t, where, "sin criterios no se emite WHERE")
	assert.Empty(t, args)
}

func TestWhereClause_PorEmpresaVigente(t *testing.T) {
	f := contract.NewFilterBuilder().WithCompany("acme").Active(sqlNow).Build()
	where, args := whereClause(f)

	assert.Equal(t, " WHERE company_id = $1 AND (end_date IS NULL OR end_date > $2)", where)
	require.Len(t, args, 2)
	assert.Equal(t, "acme", args[0])
	assert.Equal(t, sqlNow, args[1])
}

func TestWhereClause_PorPersonaConRango(t *testing.T) {
	from := sqlNow.AddDate(0, 0, -7)
	to := sqlNow.AddDate(0, 0, 7)
	f := contract.NewFilterBuilder().WithPerson("p-1").UpdatedBetween(&from, &to).Build()
	where, args := whereClause(f)

	assert.Equal(t, " WHERE person_id = $1 AND update_date >= $2 AND update_date <= $3", where)
	require.Len(t, args, 3)
	assert.Equal(t, "p-1", args[0])
	assert.Equal(t, from, args[1])
	assert.Equal(t, to, args[2])
}

// Con un solo extremo del rango se emite una sola condición.
func TestWhereClause_RangoParcial(t *testing.T) {
	from := sqlNow.AddDate(0, 0, -7)

	where, args := whereClause(contract.NewFilterBuilder().UpdatedBetween(&from, nil).Build())
	assert.Equal(t, " WHERE update_date >= $1", where)
	assert.Len(t, args, 1)

	to := sqlNow
	where, args = whereClause(contract.NewFilterBuilder().UpdatedBetween(nil, &to).Build())
	assert.Equal(t, " WHERE update_date <= $1", where)
	assert.Len(t, args, 1)
}

// Los placeholders quedan numerados en orden de aparición, sin huecos, para que
// List pueda continuar la numeración con LIMIT/OFFSET.
func TestWhereClause_NumeracionDePlaceholders(t *testing.T) {
	from := sqlNow.AddDate(0, 0, -7)
	to := sqlNow.AddDate(0, 0, 7)
	f := contract.NewFilterBuilder().
		WithCompany("acme").
		Active(sqlNow).
		UpdatedBetween(&from, &to).
		Build()

	where, args := whereClause(f)
	assert.Equal(t,
		" WHERE company_id = $1 AND (end_date IS NULL OR end_date > $2) AND update_date >= $3 AND update_date <= $4",
		where)
	assert.Len(t, args, 4)
}
