package overdue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cobranzas-api/internal/domain/overdue"
)

// TestDaysOverdue_TreintaDias verifica el caso base del reporte: una factura
// vencida exactamente 30 días atrás produce 30.
func TestDaysOverdue_TreintaDias(t *testing.T) {
	asOf := time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC)
	due := asOf.AddDate(0, 0, -30)

	assert.Equal(t, 30, overdue.DaysOverdue(asOf, due))
}

// TestDaysOverdue_SiempreNoNegativo verifica que una fecha futura produce el
// mismo valor absoluto que la pasada equivalente, nunca un negativo.
func TestDaysOverdue_SiempreNoNegativo(t *testing.T) {
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	pasada := overdue.DaysOverdue(asOf, asOf.AddDate(0, 0, -7))
	futura := overdue.DaysOverdue(asOf, asOf.AddDate(0, 0, 7))

	assert.Equal(t, 7, pasada)
	assert.Equal(t, 7, futura, "una fecha futura debe dar el mismo absoluto")
	assert.GreaterOrEqual(t, overdue.DaysOverdue(asOf, asOf), 0)
}

// TestDaysOverdue_FlooreaFracciones verifica el floor: 29 días y 20 horas
// siguen siendo 29 días de mora.
func TestDaysOverdue_FlooreaFracciones(t *testing.T) {
	asOf := time.Date(2025, 6, 30, 20, 0, 0, 0, time.UTC)
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) // 29 días y 20 horas

	assert.Equal(t, 29, overdue.DaysOverdue(asOf, due))
}

func TestDaysOverdue_MismoDia(t *testing.T) {
	asOf := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	due := time.Date(2025, 6, 30, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, overdue.DaysOverdue(asOf, due))
}

// TestCutoff verifica que el corte es el último instante del mes anterior.
func TestCutoff(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	cut := overdue.Cutoff(asOf)

	assert.Equal(t, time.May, cut.Month())
	assert.Equal(t, 31, cut.Day())
	assert.True(t, cut.Before(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))

	// 31 de mayo a cualquier hora queda dentro del corte; 1 de junio no.
	assert.True(t, time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC).Before(cut) ||
		time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC).Equal(cut))
	assert.True(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).After(cut))
}

// TestCutoff_Enero cruza el año: en enero el corte es el 31 de diciembre.
func TestCutoff_Enero(t *testing.T) {
	asOf := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	cut := overdue.Cutoff(asOf)

	assert.Equal(t, 2025, cut.Year())
	assert.Equal(t, time.December, cut.Month())
	assert.Equal(t, 31, cut.Day())
}
