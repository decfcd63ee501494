package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
)

// FailureMode política ante errores de una etapa del batch.
type FailureMode string

const (
	// FailureSkipAndLog registra el error y continúa con el siguiente
	// registro o grupo (comportamiento histórico del proceso).
	FailureSkipAndLog FailureMode = "skip_and_log"
	// FailureAbortBatch propaga el primer error y detiene la corrida.
	FailureAbortBatch FailureMode = "abort_batch"
)

// ParseFailureMode valida el valor de configuración.
func ParseFailureMode(s string) (FailureMode, error) {
	switch FailureMode(s) {
	case FailureSkipAndLog, FailureAbortBatch:
		return FailureMode(s), nil
	case "":
		return FailureSkipAndLog, nil
	}
	return "", fmt.Errorf("failure mode %q: %w", s, domain.ErrInvalidInput)
}

// Attachment adjunto de correo en memoria.
type Attachment struct {
	Name     string
	MIMEType string
	Content  []byte
}

// OutboundEmail correo listo para despachar. Fire-and-forget: no se consume
// confirmación de entrega.
type OutboundEmail struct {
	FromEmail   string
	FromName    string
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer puerto de transporte de correo.
type Mailer interface {
	Send(ctx context.Context, mail OutboundEmail) error
}

// StatementPDFGenerator puerto opcional: rendición PDF del estado de cuenta.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, group entity.CustomerGroup, asOf time.Time) ([]byte, error)
}

// Config parámetros de una corrida del job (sin estado global: todo entra
// explícito por aquí).
type Config struct {
	FallbackSender entity.Sender
	FailureMode    FailureMode
	AttachPDF      bool
	Now            func() time.Time // inyectable en tests; nil usa time.Now
}
