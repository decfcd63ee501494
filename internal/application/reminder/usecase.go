package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cobranzas-api/internal/domain"
	"github.com/jhoicas/cobranzas-api/internal/domain/entity"
	"github.com/jhoicas/cobranzas-api/internal/domain/overdue"
	"github.com/jhoicas/cobranzas-api/internal/domain/repository"
	"github.com/jhoicas/cobranzas-api/pkg/logger"
)

// EmailSubject asunto fijo del recordatorio mensual.
const EmailSubject = "Monthly Overdue Invoice Reminder"

const bodyTemplate = `Dear %s,

I hope this email finds you well.

Please find attached a list of overdue invoices for your review. Kindly go through the details and let us know if you have any questions or require any assistance.

We appreciate your prompt attention to this matter and request that payments be processed at the earliest to avoid further delays.

Best regards,
%s
`

// OverdueReminderUseCase ejecuta una corrida completa del recordatorio:
// consulta facturas vencidas, las enriquece con cliente y vendedor, las agrupa
// por cliente y despacha un correo por grupo con el estado de cuenta adjunto.
type OverdueReminderUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	repRepo      repository.SalesRepRepository
	mailer       Mailer
	pdfGen       StatementPDFGenerator // opcional (nil = sin adjunto PDF)
	cfg          Config
	log          *logger.Logger
}

// NewOverdueReminderUseCase construye el caso de uso.
func NewOverdueReminderUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	repRepo repository.SalesRepRepository,
	mailer Mailer,
	pdfGen StatementPDFGenerator,
	cfg Config,
	log *logger.Logger,
) *OverdueReminderUseCase {
	return &OverdueReminderUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		repRepo:      repRepo,
		mailer:       mailer,
		pdfGen:       pdfGen,
		cfg:          cfg,
		log:          log,
	}
}

type customerLookup struct {
	customer *entity.Customer
	err      error
}

type repLookup struct {
	rep *entity.SalesRep
	err error
}

// Run ejecuta la corrida. Bajo skip_and_log nunca retorna error: toda falla se
// registra y la corrida continúa; bajo abort_batch el primer error la detiene.
// El resumen se retorna siempre, incluso con cero facturas de entrada.
func (uc *OverdueReminderUseCase) Run(ctx context.Context) (entity.RunSummary, error) {
	now := uc.cfg.Now
	if now == nil {
		now = time.Now
	}
	started := now()
	summary := entity.RunSummary{RunID: uuid.New().String(), AsOf: started}
	log := uc.log.With().Str("run_id", summary.RunID).Logger()

	log.Info().Time("as_of", started).Msg("iniciando corrida de recordatorios de cobranza")

	// ── Fetch ────────────────────────────────────────────────────────────
	invoices, err := uc.invoiceRepo.ListOverdue(ctx, started)
	if err != nil {
		if uc.cfg.FailureMode == FailureAbortBatch {
			return summary, fmt.Errorf("consultar facturas vencidas: %w", err)
		}
		// Política histórica: la consulta fallida produce entrada vacía.
		log.Error().Err(err).Msg("consulta de facturas vencidas falló; corrida continúa sin entrada")
		invoices = nil
	}
	summary.InvoicesFetched = len(invoices)

	// ── Enrich + agrupación por cliente ──────────────────────────────────
	customers := make(map[string]customerLookup)
	reps := make(map[string]repLookup)
	groups := make(map[string]*entity.CustomerGroup)
	var order []string // clientes en orden de primera aparición

	for _, inv := range invoices {
		enriched, lookupErr := uc.enrich(ctx, inv, started, customers, reps)
		if lookupErr != nil {
			summary.EnrichErrors++
			if uc.cfg.FailureMode == FailureAbortBatch {
				return summary, fmt.Errorf("enriquecer factura %s: %w", inv.TranID, lookupErr)
			}
			log.Warn().Err(lookupErr).Str("tran_id", inv.TranID).
				Msg("enriquecimiento con error; se usan valores sustitutos")
		}

		g, ok := groups[enriched.CustomerID]
		if !ok {
			g = &entity.CustomerGroup{
				CustomerID:    enriched.CustomerID,
				CustomerName:  enriched.CustomerName,
				CustomerEmail: enriched.CustomerEmail,
			}
			groups[enriched.CustomerID] = g
			order = append(order, enriched.CustomerID)
		}
		g.Invoices = append(g.Invoices, enriched)
	}

	// ── Notify: un correo por grupo no vacío ─────────────────────────────
	for _, customerID := range order {
		g := groups[customerID]
		if err := uc.notify(ctx, *g, started, &log); err != nil {
			summary.NotifyErrors++
			summary.GroupsSkipped++
			if uc.cfg.FailureMode == FailureAbortBatch {
				return summary, fmt.Errorf("notificar cliente %s: %w", customerID, err)
			}
			log.Error().Err(err).Str("customer_id", customerID).
				Msg("notificación fallida; grupo omitido")
			continue
		}
		summary.CustomersNotified++
	}

	summary.Duration = now().Sub(started)
	log.Info().
		Int("invoices", summary.InvoicesFetched).
		Int("notified", summary.CustomersNotified).
		Int("skipped", summary.GroupsSkipped).
		Int("enrich_errors", summary.EnrichErrors).
		Dur("duration", summary.Duration).
		Msg("corrida de recordatorios completada")
	return summary, nil
}

// enrich resuelve cliente y vendedor para una factura. Los lookups se cachean
// por id durante la corrida: N facturas del mismo cliente cuestan un lookup.
// Retorna siempre un EnrichedInvoice usable; el error solo informa que se
// aplicaron valores sustitutos.
func (uc *OverdueReminderUseCase) enrich(
	ctx context.Context,
	inv entity.OverdueInvoice,
	asOf time.Time,
	customers map[string]customerLookup,
	reps map[string]repLookup,
) (entity.EnrichedInvoice, error) {
	enriched := entity.EnrichedInvoice{
		TranID:           inv.TranID,
		CustomerID:       inv.CustomerID,
		CustomerName:     inv.CustomerName,
		Amount:           inv.Amount,
		DueDate:          inv.DueDate,
		DaysOverdue:      overdue.DaysOverdue(asOf, inv.DueDate),
		SalesRepInactive: true, // hasta demostrar lo contrario
	}

	cl, ok := customers[inv.CustomerID]
	if !ok {
		c, err := uc.customerRepo.GetByID(ctx, inv.CustomerID)
		cl = customerLookup{customer: c, err: err}
		customers[inv.CustomerID] = cl
	}
	switch {
	case cl.err != nil:
		enriched.CustomerEmail = overdue.LookupErrorValue
		return enriched, cl.err
	case cl.customer == nil:
		enriched.CustomerEmail = overdue.LookupErrorValue
		return enriched, fmt.Errorf("cliente %s: %w", inv.CustomerID, domain.ErrNotFound)
	case cl.customer.Email == "":
		enriched.CustomerEmail = overdue.EmailNotAvailable
	default:
		enriched.CustomerEmail = cl.customer.Email
	}

	// El vendedor se toma del registro del CLIENTE (no de la factura),
	// igual que el proceso histórico.
	repID := cl.customer.SalesRepID
	if repID == "" {
		return enriched, nil
	}
	enriched.SalesRepID = repID
	enriched.SalesRepName = cl.customer.SalesRepName

	rl, ok := reps[repID]
	if !ok {
		rep, err := uc.repRepo.GetByID(ctx, repID)
		rl = repLookup{rep: rep, err: err}
		reps[repID] = rl
	}
	switch {
	case rl.err != nil:
		return enriched, rl.err // inactive ya quedó en true
	case rl.rep == nil:
		return enriched, fmt.Errorf("vendedor %s: %w", repID, domain.ErrNotFound)
	}
	enriched.SalesRepInactive = rl.rep.Inactive
	enriched.SalesRepEmail = rl.rep.Email
	if rl.rep.Name != "" {
		enriched.SalesRepName = rl.rep.Name
	}
	return enriched, nil
}

// notify renderiza el estado de cuenta y despacha el correo de un grupo.
func (uc *OverdueReminderUseCase) notify(ctx context.Context, g entity.CustomerGroup, asOf time.Time, log *zerolog.Logger) error {
	if len(g.Invoices) == 0 {
		return nil // no debería ocurrir: los grupos nacen con una factura
	}

	csvText, err := overdue.RenderCSV(g)
	if err != nil {
		return err
	}

	sender := overdue.ChooseSender(g, uc.cfg.FallbackSender)
	if overdue.MixedReps(g) {
		log.Warn().Str("customer_id", g.CustomerID).Str("sender_rep", sender.RepID).
			Msg("grupo con vendedores mezclados; se usa el de la primera factura")
	}

	mail := OutboundEmail{
		FromEmail: sender.Email,
		FromName:  sender.Name,
		To:        g.CustomerEmail,
		Subject:   EmailSubject,
		Body:      fmt.Sprintf(bodyTemplate, g.CustomerName, sender.Name),
		Attachments: []Attachment{{
			Name:     overdue.StatementFileName,
			MIMEType: "text/csv",
			Content:  []byte(csvText),
		}},
	}

	if uc.cfg.AttachPDF && uc.pdfGen != nil {
		pdfBytes, err := uc.pdfGen.GenerateStatementPDF(ctx, g, asOf)
		if err != nil {
			if uc.cfg.FailureMode == FailureAbortBatch {
				return fmt.Errorf("generar PDF: %w", err)
			}
			log.Warn().Err(err).Str("customer_id", g.CustomerID).
				Msg("PDF del estado de cuenta falló; se envía solo el CSV")
		} else {
			mail.Attachments = append(mail.Attachments, Attachment{
				Name:     "Overdue_Invoices.pdf",
				MIMEType: "application/pdf",
				Content:  pdfBytes,
			})
		}
	}

	if err := uc.mailer.Send(ctx, mail); err != nil {
		return err
	}
	log.Info().Str("customer_id", g.CustomerID).Str("to", g.CustomerEmail).
		Int("invoices", len(g.Invoices)).Bool("fallback_sender", sender.IsFallback()).
		Msg("recordatorio enviado")
	return nil
}
