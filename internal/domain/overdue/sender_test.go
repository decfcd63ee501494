package overdue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/overdue"
)

var fallback = entity.Sender{Name: "Cathy Cadigan", Email: "cobranzas@invorya.com"}

// TestChooseSender cubre la tabla de decisión del remitente: el vendedor de la
// primera factura solo cuando tiene id y está activo.
func TestChooseSender(t *testing.T) {
	cases := []struct {
		name       string
		repID      string
		inactive   bool
		wantRepID  string
		wantName   string
		esFallback bool
	}{
		{name: "sin vendedor asignado", repID: "", inactive: false, esFallback: true, wantName: "Cathy Cadigan"},
		{name: "vendedor inactivo", repID: "123", inactive: true, esFallback: true, wantName: "Cathy Cadigan"},
		{name: "vendedor activo", repID: "123", inactive: false, wantRepID: "123", wantName: "Laura Pérez"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := groupWith(entity.EnrichedInvoice{
				TranID:           "501",
				SalesRepID:       tc.repID,
				SalesRepName:     "Laura Pérez",
				SalesRepEmail:    "laura@invorya.com",
				SalesRepInactive: tc.inactive,
			})
			s := overdue.ChooseSender(g, fallback)

			assert.Equal(t, tc.esFallback, s.IsFallback())
			assert.Equal(t, tc.wantName, s.Name)
			if !tc.esFallback {
				assert.Equal(t, tc.wantRepID, s.RepID)
			}
		})
	}
}

// TestChooseSender_SoloMiraPrimeraFactura: la segunda factura tiene vendedor
// activo, pero la primera no tiene ninguno; gana la primera (regla histórica).
func TestChooseSender_SoloMiraPrimeraFactura(t *testing.T) {
	g := groupWith(
		entity.EnrichedInvoice{TranID: "501", SalesRepID: ""},
		entity.EnrichedInvoice{TranID: "502", SalesRepID: "55", SalesRepName: "Laura Pérez"},
	)

	s := overdue.ChooseSender(g, fallback)
	assert.True(t, s.IsFallback())
}

func TestChooseSender_GrupoVacio(t *testing.T) {
	s := overdue.ChooseSender(groupWith(), fallback)
	assert.True(t, s.IsFallback())
}

func TestMixedReps(t *testing.T) {
	assert.False(t, overdue.MixedReps(groupWith(
		entity.EnrichedInvoice{SalesRepID: "55"},
		entity.EnrichedInvoice{SalesRepID: "55"},
		entity.EnrichedInvoice{SalesRepID: ""},
	)), "mismo vendedor (y vacíos) no cuenta como mezcla")

	assert.True(t, overdue.MixedReps(groupWith(
		entity.EnrichedInvoice{SalesRepID: "55"},
		entity.EnrichedInvoice{SalesRepID: "77"},
	)))
}
