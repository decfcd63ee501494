// Package overdue: reglas puras de cobranza — días de mora, corte de
// vencimiento, selección de remitente y render del estado de cuenta CSV.
package overdue

import "time"

// hoursPerDay para el cálculo de días transcurridos.
const hoursPerDay = 24

// DaysOverdue devuelve floor(abs(asOf - dueDate)) en días. Siempre >= 0:
// una fecha de vencimiento futura (que el filtro de la consulta no debería
// dejar pasar) produce el mismo valor que una pasada, nunca un negativo.
func DaysOverdue(asOf, dueDate time.Time) int {
	elapsed := asOf.Sub(dueDate)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return int(elapsed.Hours() / hoursPerDay)
}

// Cutoff devuelve el último día del mes calendario anterior a asOf, a las
// 23:59:59.999999999, en la zona horaria de asOf. Una factura está vencida
// para la corrida si su fecha de vencimiento es en o antes del corte.
func Cutoff(asOf time.Time) time.Time {
	firstOfMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	return firstOfMonth.Add(-time.Nanosecond)
}
