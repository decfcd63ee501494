package entity

// SalesRep representa un empleado con rol de vendedor, usado como identidad
// remitente de los recordatorios de cobranza.
type SalesRep struct {
	ID       string
	Name     string
	Email    string
	Inactive bool
}
