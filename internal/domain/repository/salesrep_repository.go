package repository

import (
	"context"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// SalesRepRepository define el puerto de lectura puntual de vendedores (empleados).
type SalesRepRepository interface {
	// GetByID devuelve (nil, nil) si el vendedor no existe.
	GetByID(ctx context.Context, id string) (*entity.SalesRep, error)
}
