package overdue_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/overdue"
)

func groupWith(invoices ...entity.EnrichedInvoice) entity.CustomerGroup {
	g := entity.CustomerGroup{CustomerID: "9", CustomerName: "Acme", CustomerEmail: "pagos@acme.com"}
	g.Invoices = invoices
	return g
}

// TestRenderCSV_FilaPorFactura verifica encabezado + una fila de datos por factura.
func TestRenderCSV_FilaPorFactura(t *testing.T) {
	g := groupWith(
		entity.EnrichedInvoice{TranID: "501", CustomerName: "Acme", CustomerEmail: "pagos@acme.com", Amount: decimal.NewFromInt(1000), DaysOverdue: 30},
		entity.EnrichedInvoice{TranID: "502", CustomerName: "Acme", CustomerEmail: "pagos@acme.com", Amount: decimal.RequireFromString("250.50"), DaysOverdue: 61},
	)

	out, err := overdue.RenderCSV(g)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "encabezado + 2 filas de datos")
	assert.Equal(t, "Customer,Email,Invoice Number,Amount,Days Overdue", lines[0])
	assert.Equal(t, "Acme,pagos@acme.com,501,1000,30", lines[1])
	assert.Equal(t, "Acme,pagos@acme.com,502,250.50,61", lines[2])
}

// TestRenderCSV_EntrecomillaComas verifica que nombres con comas, comillas o
// saltos de línea no rompen el formato (round-trip con encoding/csv).
func TestRenderCSV_EntrecomillaComas(t *testing.T) {
	g := groupWith(entity.EnrichedInvoice{
		TranID:        "700",
		CustomerName:  `Acme, S.A. "La Grande"`,
		CustomerEmail: "pagos@acme.com",
		Amount:        decimal.NewFromInt(99),
		DaysOverdue:   5,
	})

	out, err := overdue.RenderCSV(g)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err, "el CSV generado debe ser parseable de vuelta")
	require.Len(t, records, 2)
	assert.Equal(t, `Acme, S.A. "La Grande"`, records[1][0])
	assert.Equal(t, "700", records[1][2])
}

// TestRenderCSV_GrupoVacio solo produce el encabezado.
func TestRenderCSV_GrupoVacio(t *testing.T) {
	out, err := overdue.RenderCSV(groupWith())
	require.NoError(t, err)
	assert.Equal(t, "Customer,Email,Invoice Number,Amount,Days Overdue\n", out)
}
