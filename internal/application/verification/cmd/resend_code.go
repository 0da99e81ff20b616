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

type ResendCode struct {
	Email string
}

type ResendCodeHandler struct {
	tracer trace.Tracer
	logger *slog.Logger
	repo   Repo
}

type ResendCodeHandlerArgs struct {
	Tracer trace.Tracer
	Logger *slog.Logger
	Repo   Repo
}

func NewResendCodeHandler(args ResendCodeHandlerArgs) *ResendCodeHandler {
	if args.Tracer == nil {
		args.Tracer = tracer
	}
	if args.Logger == nil {
		args.Logger = logger
	}

	return &ResendCodeHandler{
		tracer: args.Tracer,
		logger: args.Logger,
		repo:   args.Repo,
	}
}

func (h *ResendCodeHandler) Handle(ctx context.Context, cmd ResendCode) error {
	const op = "cmd.ResendCodeHandler.Handle"
	ctx, span := h.tracer.Start(ctx, "ResendCodeHandler.Handle",
		trace.WithAttributes(
			attribute.String("email", logging.RedactEmail(cmd.Email)),
		))
	defer span.End()

	err := h.repo.UpdateUserByEmail(ctx, cmd.Email, func(ctx context.Context, u *user.User) error {
		span := trace.SpanFromContext(ctx)
		otelx.SetSpanAttrs(span, map[string]any{
			"user.id":       u.ID().String(),
			"user.verified": u.IsVerified(),
		})

		if err := u.RegenerateCode(); err != nil {
			span.AddEvent("failed to regenerate code")
			return errorx.Wrap(err, op)
		}
		span.AddEvent("code regenerated")
		return nil
	})
	if err != nil {
		otelx.RecordSpanError(span, err, "failed to update user by email")
		return errorx.Wrap(err, op)
	}

	return nil
}
