package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrichedInvoice es una factura vencida ya resuelta contra cliente y
// vendedor: lista para agrupar y notificar. Transitoria, vive solo durante
// una corrida del job.
type EnrichedInvoice struct {
	TranID           string
	CustomerID       string
	CustomerName     string
	CustomerEmail    string
	Amount           decimal.Decimal
	DueDate          time.Time
	DaysOverdue      int // siempre >= 0
	SalesRepID       string
	SalesRepName     string
	SalesRepEmail    string
	SalesRepInactive bool
}

// CustomerGroup agrupa las facturas vencidas de un mismo cliente. Todas las
// facturas del grupo comparten CustomerID. Genera exactamente una notificación.
type CustomerGroup struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	Invoices      []EnrichedInvoice // orden de llegada preservado
}

// Sender identidad remitente elegida para un grupo (vendedor activo o fallback).
type Sender struct {
	RepID string // vacío cuando se usó la identidad fallback
	Name  string
	Email string
}

// IsFallback indica si el remitente es la identidad administrativa.
func (s Sender) IsFallback() bool { return s.RepID == "" }

// RunSummary resumen de una corrida completa del job de recordatorios.
type RunSummary struct {
	RunID             string
	AsOf              time.Time
	InvoicesFetched   int
	CustomersNotified int
	GroupsSkipped     int
	EnrichErrors      int
	NotifyErrors      int
	Duration          time.Duration
}
