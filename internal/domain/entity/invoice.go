package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura relevantes para cobranza.
const (
	InvoiceStatusOpen = "OPEN" // abierta / pendiente de pago
	InvoiceStatusPaid = "PAID" // pagada en su totalidad
	InvoiceStatusVoid = "VOID" // anulada
)

// OverdueInvoice es la proyección de una factura vencida tal como la devuelve
// la consulta de cobranza: solo línea principal (mainline), cliente activo,
// estado abierto. Inmutable una vez leída.
type OverdueInvoice struct {
	TranID       string          // número de transacción visible (ej. "501")
	CustomerID   string
	CustomerName string
	SalesRepID   string // vendedor asignado en la factura; puede ser vacío
	Amount       decimal.Decimal
	DueDate      time.Time
}
