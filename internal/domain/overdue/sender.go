package overdue

import "github.com/jhoicas/cobranzas-api/internal/domain/entity"

// Valores sustitutos cuando el enriquecimiento no pudo resolver un dato.
const (
	EmailNotAvailable = "Not Available"
	LookupErrorValue  = "Error Retrieving Data"
)

// ChooseSender decide el remitente de la notificación de un grupo: el vendedor
// de la PRIMERA factura del grupo si tiene id y no está inactivo; en cualquier
// otro caso la identidad fallback. La regla de "primera factura" es el
// comportamiento histórico del proceso; MixedReps permite al caller detectar
// grupos con vendedores distintos y dejar rastro en el log.
func ChooseSender(group entity.CustomerGroup, fallback entity.Sender) entity.Sender {
	if len(group.Invoices) == 0 {
		return fallback
	}
	first := group.Invoices[0]
	if first.SalesRepID == "" || first.SalesRepInactive {
		return fallback
	}
	return entity.Sender{
		RepID: first.SalesRepID,
		Name:  first.SalesRepName,
		Email: first.SalesRepEmail,
	}
}

// MixedReps reporta si el grupo contiene facturas resueltas a más de un
// vendedor (ids distintos, ignorando vacíos).
func MixedReps(group entity.CustomerGroup) bool {
	seen := ""
	for _, inv := range group.Invoices {
		if inv.SalesRepID == "" {
			continue
		}
		if seen == "" {
			seen = inv.SalesRepID
			continue
		}
		if inv.SalesRepID != seen {
			return true
		}
	}
	return false
}
