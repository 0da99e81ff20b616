// Package smtp delivers outbound mail through an SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/gomail.v2"

	"github.com/kkuglocal/campus-backend/internal/domain/valueobject/mail"
	"github.com/kkuglocal/campus-backend/pkg/logging"
	"github.com/kkuglocal/campus-backend/pkg/otelx"
)

var (
	tracer = otel.Tracer("campus/internal/adapters/services/smtp")
	logger = otelslog.NewLogger("campus/internal/adapters/services/smtp")
)

type Mailer struct {
	tracer trace.Tracer
	logger *slog.Logger
	dialer *gomail.Dialer
	from   string
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	SSL      bool
	// From is the sender shown to recipients, e.g. `"캠퍼스앱" <noreply@kku.ac.kr>`.
	From string
}

func NewMailer(cfg Config) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.SSL

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &Mailer{
		tracer: tracer,
		logger: logger,
		dialer: dialer,
		from:   from,
	}
}

func (m *Mailer) SendMail(ctx context.Context, payload mail.Payload) error {
	ctx, span := m.tracer.Start(ctx, "Mailer.SendMail",
		trace.WithAttributes(
			attribute.String("mail.to", logging.RedactEmail(payload.To)),
			attribute.String("mail.subject", payload.Subject),
		))
	defer span.End()

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", payload.To)
	msg.SetHeader("Subject", payload.Subject)
	msg.SetBody("text/html", payload.Body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		otelx.RecordSpanError(span, err, "failed to send mail")
		m.logger.ErrorContext(ctx, "failed to send mail",
			slog.String("to", logging.RedactEmail(payload.To)),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
