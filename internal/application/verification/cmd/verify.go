package cmd

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/pkg/errorx"
	"github.com/kkuglocal/campus-backend/pkg/logging"
	"github.com/kkuglocal/campus-backend/pkg/otelx"
)

type Verify struct {
	Email string
	Code  string
}

type VerifyHandler struct {
	tracer trace.Tracer
	logger *slog.Logger
	repo   Repo
}

type VerifyHandlerArgs struct {
	Tracer trace.Tracer
	Logger *slog.Logger
	Repo   Repo
}

func NewVerifyHandler(args VerifyHandlerArgs) *VerifyHandler {
	if args.Tracer == nil {
		args.Tracer = tracer
	}
	if args.Logger == nil {
		args.Logger = logger
	}

	return &VerifyHandler{
		tracer: args.Tracer,
		logger: args.Logger,
		repo:   args.Repo,
	}
}

func (h *VerifyHandler) Handle(ctx context.Context, cmd Verify) error {
	const op = "cmd.VerifyHandler.Handle"
	ctx, span := h.tracer.Start(ctx, "VerifyHandler.Handle",
		trace.WithAttributes(
			attribute.String("email", logging.RedactEmail(cmd.Email)),
		))
	defer span.End()

	// The row is locked for the whole check, so of two concurrent attempts
	// only one can consume the code; the loser re-reads a cleared code and
	// gets a mismatch.
	err := h.repo.UpdateUserByEmail(ctx, cmd.Email, func(ctx context.Context, u *user.User) error {
		span := trace.SpanFromContext(ctx)

		if err := u.VerifyCode(cmd.Code); err != nil {
			span.AddEvent("failed to verify code")
			return errorx.Wrap(err, op)
		}
		span.AddEvent("email verified")
		return nil
	})
	if err != nil {
		otelx.RecordSpanError(span, err, "failed to update user by email")
		return errorx.Wrap(err, op)
	}

	return nil
}
