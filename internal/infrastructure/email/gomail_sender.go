// Package email implementa el puerto Mailer sobre SMTP usando gomail.
// Fire-and-forget: no se consulta ningún estado de entrega posterior.
package email

import (
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/cobranzas-api/internal/application/reminder"
	"github.com/jhoicas/cobranzas-api/pkg/config"
)

var _ reminder.Mailer = (*SMTPSender)(nil)

// SMTPSender envía correos con adjuntos en memoria vía SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender construye el adaptador con la configuración SMTP de la app.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// Send despacha un correo. gomail no acepta context, así que solo se honra la
// cancelación previa al dial.
func (s *SMTPSender) Send(ctx context.Context, mail reminder.OutboundEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", mail.FromEmail, mail.FromName)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/plain", mail.Body)

	for _, att := range mail.Attachments {
		content := att.Content // capturada por el closure; el Send puede reintentar la copia
		m.Attach(att.Name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {fmt.Sprintf("%s; charset=utf-8; name=%q", att.MIMEType, att.Name)},
			}),
		)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", mail.To, err)
	}
	return nil
}
