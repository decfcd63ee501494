package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de consulta de facturas para cobranza.
type InvoiceRepository interface {
	// ListOverdue devuelve todas las facturas abiertas de línea principal,
	// de clientes activos, con fecha de vencimiento en o antes del último
	// día del mes calendario anterior a asOf.
	ListOverdue(ctx context.Context, asOf time.Time) ([]entity.OverdueInvoice, error)
}
