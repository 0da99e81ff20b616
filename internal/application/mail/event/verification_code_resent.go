package mailevent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ARUMANDESU/validation"
	"github.com/ARUMANDESU/validation/is"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/internal/domain/valueobject/mail"
	"github.com/kkuglocal/campus-backend/pkg/errorx"
	"github.com/kkuglocal/campus-backend/pkg/logging"
	"github.com/kkuglocal/campus-backend/pkg/otelx"
)

const VerificationCodeResentSubject = "캠퍼스앱 인증번호 재전송 안내"

func (h *MailEventHandler) HandleVerificationCodeResent(ctx context.Context, e *user.VerificationCodeResent) error {
	if e == nil {
		return nil
	}
	const op = "mailevent.MailEventHandler.HandleVerificationCodeResent"

	l := h.logger.With(slog.String("event", "VerificationCodeResent"), slog.String("user.id", e.UserID.String()))
	ctx, span := h.tracer.Start(
		ctx,
		"MailEventHandler.HandleVerificationCodeResent",
		trace.WithNewRoot(),
		trace.WithLinks(trace.LinkFromContext(e.Extract())),
		trace.WithAttributes(
			attribute.String("event.user.id", e.UserID.String()),
			attribute.String("event.user.email", logging.RedactEmail(e.Email)),
		),
	)
	defer span.End()

	err := validation.ValidateStruct(e,
		validation.Field(&e.Email, validation.Required, is.EmailFormat),
		validation.Field(&e.VerificationCode, validation.Required),
	)
	if err != nil {
		otelx.RecordSpanError(span, err, "validation failed")
		l.ErrorContext(ctx, "validation failed", slog.Any("error", err))
		return errorx.Wrap(err, op)
	}

	payload := mail.Payload{
		To:      e.Email,
		Subject: VerificationCodeResentSubject,
		Body: fmt.Sprintf(`<p>안녕하세요, 캠퍼스앱입니다.</p>
<p>요청하신 인증번호를 재전송합니다. (10분 유효)</p>
<h2 style="letter-spacing:4px;">%s</h2>`, e.VerificationCode),
	}
	if err := h.mailsender.SendMail(ctx, payload); err != nil {
		otelx.RecordSpanError(span, err, "failed to resend email verification code")
		l.ErrorContext(ctx, "failed to resend email verification code", slog.Any("error", err))
		return errorx.Wrap(err, op)
	}

	return nil
}
