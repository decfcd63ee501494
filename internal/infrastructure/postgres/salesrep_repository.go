package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
)

var _ repository.SalesRepRepository = (*SalesRepRepo)(nil)

// SalesRepRepo implementación de SalesRepRepository sobre la tabla employees.
type SalesRepRepo struct {
	q Querier
}

// NewSalesRepRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepRepository(q Querier) *SalesRepRepo {
	return &SalesRepRepo{q: q}
}

// GetByID obtiene un vendedor por id. Devuelve (nil, nil) si no existe.
func (r *SalesRepRepo) GetByID(ctx context.Context, id string) (*entity.SalesRep, error) {
	const query = `
		SELECT id, name, COALESCE(email, ''), inactive
		FROM employees
		WHERE id = $1`

	var rep entity.SalesRep
	err := r.q.QueryRow(ctx, query, id).Scan(&rep.ID, &rep.Name, &rep.Email, &rep.Inactive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales rep: %w", err)
	}
	return &rep, nil
}
