package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByID obtiene un cliente con su vendedor asignado. Devuelve (nil, nil)
// si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	const query = `
		SELECT c.id, c.name, COALESCE(c.email, ''),
		       COALESCE(c.sales_rep_id, ''),
		       COALESCE(e.name, ''),
		       c.active
		FROM customers c
		LEFT JOIN employees e ON e.id = c.sales_rep_id
		WHERE c.id = $1`

	var cust entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&cust.ID, &cust.Name, &cust.Email,
		&cust.SalesRepID, &cust.SalesRepName, &cust.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &cust, nil
}
