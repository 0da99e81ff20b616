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

// Product copy is Korean, the app's audience.
const UserRegisteredSubject = "캠퍼스앱 이메일 인증번호 안내"

func (h *MailEventHandler) HandleUserRegistered(ctx context.Context, e *user.UserRegistered) error {
	if e == nil {
		return nil
	}
	const op = "mailevent.MailEventHandler.HandleUserRegistered"

	l := h.logger.With(slog.String("event", "UserRegistered"), slog.String("user.id", e.UserID.String()))
	ctx, span := h.tracer.Start(
		ctx,
		"MailEventHandler.HandleUserRegistered",
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
		Subject: UserRegisteredSubject,
		Body: fmt.Sprintf(`<p>안녕하세요, 캠퍼스앱입니다.</p>
<p>회원가입을 위해 아래 <strong>6자리 인증번호</strong>를 입력해주세요. (10분 유효)</p>
<h2 style="letter-spacing:4px;">%s</h2>`, e.VerificationCode),
	}
	if err := h.mailsender.SendMail(ctx, payload); err != nil {
		otelx.RecordSpanError(span, err, "failed to send email verification code")
		l.ErrorContext(ctx, "failed to send email verification code", slog.Any("error", err))
		return errorx.Wrap(err, op)
	}

	return nil
}
