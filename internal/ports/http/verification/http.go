package verificationhttp

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ARUMANDESU/validation"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	verificationapp "github.com/kkuglocal/campus-backend/internal/application/verification"
	"github.com/kkuglocal/campus-backend/internal/application/verification/cmd"
	"github.com/kkuglocal/campus-backend/pkg/env"
	"github.com/kkuglocal/campus-backend/pkg/httpx"
	"github.com/kkuglocal/campus-backend/pkg/logging"
	"github.com/kkuglocal/campus-backend/pkg/otelx"
	"github.com/kkuglocal/campus-backend/pkg/sanitizex"
	"github.com/kkuglocal/campus-backend/pkg/validationx"
)

var (
	tracer = otel.Tracer("campus/internal/ports/http/verification")
	logger = otelslog.NewLogger("campus/internal/ports/http/verification")
)

type HTTP struct {
	tracer     trace.Tracer
	logger     *slog.Logger
	cmd        *verificationapp.Command
	query      *verificationapp.Query
	errhandler *httpx.ErrorHandler
}

type Args struct {
	Tracer     trace.Tracer
	Logger     *slog.Logger
	App        *verificationapp.App
	Errhandler *httpx.ErrorHandler
}

func NewHTTP(args Args) *HTTP {
	if args.Tracer == nil {
		args.Tracer = tracer
	}
	if args.Logger == nil {
		args.Logger = logger
	}
	if args.Errhandler == nil {
		args.Errhandler = httpx.NewErrorHandler()
	}

	return &HTTP{
		tracer:     args.Tracer,
		logger:     args.Logger,
		cmd:        &args.App.CMD,
		query:      &args.App.Query,
		errhandler: args.Errhandler,
	}
}

func (h *HTTP) Route(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/resend-code", h.ResendCode)
		r.Post("/verify-code", h.VerifyCode)
	})

	if env.Current() == env.Dev || env.Current() == env.Local || env.Current() == env.Test {
		r.Get("/dev/users/verification-code/{email}", h.GetVerificationCode)
	}
}

type RegisterRequest struct {
	Name          string `json:"name"`
	StudentNumber string `json:"student_number"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

func (r *RegisterRequest) Sanitized() {
	r.Name = sanitizex.CleanSingleLine(r.Name)
	r.StudentNumber = sanitizex.CleanSingleLine(r.StudentNumber)
	r.Email = sanitizex.CleanSingleLine(r.Email)
	r.Password = strings.TrimSpace(r.Password)
}

func (r *RegisterRequest) SetSpanAttrs(span trace.Span) {
	otelx.SetSpanAttrs(span, map[string]any{"email": logging.RedactEmail(r.Email)})
}

func (r *RegisterRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validationx.NameRules...),
		validation.Field(&r.StudentNumber, validationx.StudentNumberRules...),
		validation.Field(&r.Email, validationx.SchoolEmailRules...),
		validation.Field(&r.Password, validationx.PasswordRules...),
	)
}

func (h *HTTP) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Register")
	defer span.End()

	var req RegisterRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to read json")
		return
	}

	req.Sanitized()
	req.SetSpanAttrs(span)
	err := req.Validate()
	if err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to validate request body")
		return
	}

	if err := h.cmd.Register.Handle(ctx, cmd.Register{
		Name:          req.Name,
		StudentNumber: req.StudentNumber,
		Email:         req.Email,
		Password:      req.Password,
	}); err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to register user")
		return
	}

	httpx.Success(w, r, http.StatusCreated, nil)
}

type ResendCodeRequest struct {
	Email string `json:"email"`
}

func (r *ResendCodeRequest) Sanitized() {
	r.Email = sanitizex.CleanSingleLine(r.Email)
}

func (r *ResendCodeRequest) SetSpanAttrs(span trace.Span) {
	otelx.SetSpanAttrs(span, map[string]any{"email": logging.RedactEmail(r.Email)})
}

func (r *ResendCodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validationx.EmailRules...),
	)
}

func (h *HTTP) ResendCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ResendCode")
	defer span.End()

	var req ResendCodeRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to read json")
		return
	}

	req.Sanitized()
	req.SetSpanAttrs(span)
	err := req.Validate()
	if err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to validate request body")
		return
	}

	if err := h.cmd.ResendCode.Handle(ctx, cmd.ResendCode{Email: req.Email}); err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to resend verification code")
		return
	}

	httpx.Success(w, r, http.StatusOK, nil)
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (r *VerifyCodeRequest) Sanitized() {
	r.Email = sanitizex.CleanSingleLine(r.Email)
	r.Code = sanitizex.CleanSingleLine(r.Code)
}

func (r *VerifyCodeRequest) SetSpanAttrs(span trace.Span) {
	otelx.SetSpanAttrs(span, map[string]any{"email": logging.RedactEmail(r.Email)})
}

func (r *VerifyCodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validationx.EmailRules...),
		validation.Field(&r.Code, validationx.VerificationCodeRules...),
	)
}

func (h *HTTP) VerifyCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VerifyCode")
	defer span.End()

	var req VerifyCodeRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to read json")
		return
	}

	req.Sanitized()
	req.SetSpanAttrs(span)
	err := req.Validate()
	if err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to validate request body")
		return
	}

	if err := h.cmd.Verify.Handle(ctx, cmd.Verify{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to verify code")
		return
	}

	httpx.Success(w, r, http.StatusOK, nil)
}

func (h *HTTP) GetVerificationCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetVerificationCode")
	defer span.End()

	email := chi.URLParam(r, "email")
	email = sanitizex.CleanSingleLine(email)

	err := validation.Validate(email, validationx.EmailRules...)
	if err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to validate email")
		return
	}

	code, err := h.query.GetVerificationCode.Handle(ctx, email)
	if err != nil {
		h.errhandler.HandleError(w, r, span, err, "failed to get verification code")
		return
	}

	httpx.Success(w, r, http.StatusOK, httpx.Envelope{"verification_code": code})
}
