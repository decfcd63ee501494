package entity

// Customer representa un cliente (vista de cobranza: contacto y vendedor asignado).
type Customer struct {
	ID           string
	Name         string
	Email        string
	SalesRepID   string // vendedor asignado al cliente; puede ser vacío
	SalesRepName string
	Active       bool
}
