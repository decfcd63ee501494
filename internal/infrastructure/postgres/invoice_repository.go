package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/overdue"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// ListOverdue devuelve las facturas de cobranza: solo línea principal,
// estado abierto, cliente activo y vencidas al corte (último día del mes
// anterior a asOf). Ordenadas por cliente y fecha de vencimiento para que
// los grupos salgan contiguos y deterministas.
func (r *InvoiceRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]entity.OverdueInvoice, error) {
	const query = `
		SELECT i.tran_id, i.customer_id, c.name,
		       COALESCE(i.sales_rep_id, ''),
		       i.amount, i.due_date
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.mainline = true
		  AND i.status = $1
		  AND c.active = true
		  AND i.due_date <= $2
		ORDER BY i.customer_id, i.due_date, i.tran_id`

	rows, err := r.q.Query(ctx, query, entity.InvoiceStatusOpen, overdue.Cutoff(asOf))
	if err != nil {
		return nil, fmt.Errorf("list overdue invoices: %w", err)
	}
	defer rows.Close()

	var list []entity.OverdueInvoice
	for rows.Next() {
		var inv entity.OverdueInvoice
		if err := rows.Scan(&inv.TranID, &inv.CustomerID, &inv.CustomerName,
			&inv.SalesRepID, &inv.Amount, &inv.DueDate); err != nil {
			return nil, fmt.Errorf("scan overdue invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}
