package cmd

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/pkg/errorx"
	"github.com/kkuglocal/campus-backend/pkg/logging"
	"github.com/kkuglocal/campus-backend/pkg/otelx"
)

var (
	tracer = otel.Tracer("campus/application/verification/cmd")
	logger = otelslog.NewLogger("campus/application/verification/cmd")
)

type Register struct {
	Name          string
	StudentNumber string
	Email         string
	Password      string
}

type RegisterHandler struct {
	tracer trace.Tracer
	logger *slog.Logger
	repo   Repo
}

type RegisterHandlerArgs struct {
	Tracer trace.Tracer
	Logger *slog.Logger
	Repo   Repo
}

func NewRegisterHandler(args RegisterHandlerArgs) *RegisterHandler {
	if args.Tracer == nil {
		args.Tracer = tracer
	}
	if args.Logger == nil {
		args.Logger = logger
	}

	return &RegisterHandler{
		tracer: args.Tracer,
		logger: args.Logger,
		repo:   args.Repo,
	}
}

func (h *RegisterHandler) Handle(ctx context.Context, cmd Register) error {
	const op = "cmd.RegisterHandler.Handle"
	ctx, span := h.tracer.Start(ctx, "RegisterHandler.Handle",
		trace.WithAttributes(
			attribute.String("email", logging.RedactEmail(cmd.Email)),
		))
	defer span.End()

	h.logger.DebugContext(ctx, "registering user")

	existing, err := h.repo.GetUserByEmail(ctx, cmd.Email)
	if err != nil && !errorx.IsNotFound(err) {
		otelx.RecordSpanError(span, err, "failed to get user by email")
		return errorx.Wrap(err, op)
	}
	if existing != nil {
		otelx.RecordSpanError(span, user.ErrEmailTaken, "user already exists with this email")
		return errorx.Wrap(user.ErrEmailTaken, op)
	}
	span.AddEvent("user not found, proceeding with registration")

	u, err := user.NewUser(user.NewUserArgs{
		Name:          cmd.Name,
		StudentNumber: cmd.StudentNumber,
		Email:         cmd.Email,
		Password:      cmd.Password,
	})
	if err != nil {
		otelx.RecordSpanError(span, err, "failed to create user")
		return errorx.Wrap(err, op)
	}

	// The unique index on email is the real arbiter; a concurrent insert
	// between the check above and this save still surfaces as a duplicate.
	if err := h.repo.SaveUser(ctx, u); err != nil {
		otelx.RecordSpanError(span, err, "failed to save user")
		return errorx.Wrap(err, op)
	}

	span.AddEvent("user saved", trace.WithAttributes(
		attribute.String("user.id", u.ID().String()),
	))

	return nil
}
