package repository

import (
	"context"

	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura puntual de clientes.
type CustomerRepository interface {
	// GetByID devuelve (nil, nil) si el cliente no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
}
