package overdue

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// StatementFileName nombre del adjunto CSV en el correo de recordatorio.
const StatementFileName = "Overdue_Invoices.csv"

// csvHeader columnas del estado de cuenta, en el orden del reporte histórico.
var csvHeader = []string{"Customer", "Email", "Invoice Number", "Amount", "Days Overdue"}

// RenderCSV genera el estado de cuenta de un grupo: una fila de encabezado y
// una fila por factura. Usa encoding/csv, así que comas, comillas y saltos de
// línea dentro del nombre del cliente quedan correctamente entrecomillados.
func RenderCSV(group entity.CustomerGroup) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("render csv header: %w", err)
	}
	for _, inv := range group.Invoices {
		row := []string{
			inv.CustomerName,
			inv.CustomerEmail,
			inv.TranID,
			inv.Amount.String(),
			fmt.Sprintf("%d", inv.DaysOverdue),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("render csv row %s: %w", inv.TranID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("render csv: %w", err)
	}
	return sb.String(), nil
}
