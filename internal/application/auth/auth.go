package authapp

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/pkg/errorx"
	"github.com/kkuglocal/campus-backend/pkg/logging"
)

const SessionTokenExpDuration = 1 * time.Hour

const tokenIssuer = "campus_auth"

var (
	tracer = otel.Tracer("campus/internal/application/auth")
	logger = otelslog.NewLogger("campus/internal/application/auth")
)

type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
}

type App struct {
	tracer     trace.Tracer
	logger     *slog.Logger
	usergetter UserGetter

	sessionTokenExpDuration time.Duration
	sessionTokenSecretKey   []byte
	signingMethod           *jwt.SigningMethodHMAC
}

type Args struct {
	Tracer     trace.Tracer
	Logger     *slog.Logger
	UserGetter UserGetter

	SessionTokenSecretKey   string
	SessionTokenExpDuration *time.Duration
}

func NewApp(args Args) *App {
	app := &App{
		tracer:     tracer,
		logger:     logger,
		usergetter: args.UserGetter,

		sessionTokenExpDuration: SessionTokenExpDuration,
		sessionTokenSecretKey:   []byte(args.SessionTokenSecretKey),
		signingMethod:           jwt.SigningMethodHS256,
	}

	if args.SessionTokenExpDuration != nil {
		app.sessionTokenExpDuration = *args.SessionTokenExpDuration
	}
	if args.Tracer != nil {
		app.tracer = args.Tracer
	}
	if args.Logger != nil {
		app.logger = args.Logger
	}

	return app
}

type Login struct {
	Email    string
	Password string
}

type LoginResponse struct {
	Token    string
	TokenExp time.Duration
}

// LoginHandle checks the credentials and returns a signed session token.
// An unknown email answers the same as a wrong password, so the endpoint
// cannot be used to probe which addresses are registered.
func (a *App) LoginHandle(ctx context.Context, cmd Login) (LoginResponse, error) {
	ctx, span := a.tracer.Start(
		ctx,
		"App.LoginHandle",
		trace.WithAttributes(
			attribute.String("user.email", logging.RedactEmail(cmd.Email)),
			attribute.String("signing_method", a.signingMethod.Alg()),
			attribute.String("session_token_exp_duration", a.sessionTokenExpDuration.String()),
		),
	)
	defer span.End()

	u, err := a.usergetter.GetUserByEmail(ctx, cmd.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get user")
		if errorx.IsNotFound(err) {
			return LoginResponse{}, user.ErrWrongEmailOrPassword.WithCause(err)
		}
		return LoginResponse{}, err
	}

	if !u.IsVerified() {
		span.AddEvent("login attempt on unverified account")
		span.SetStatus(codes.Error, "email not verified")
		return LoginResponse{}, user.ErrEmailNotVerified
	}

	err = u.ComparePassword(cmd.Password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to compare password")
		return LoginResponse{}, user.ErrWrongEmailOrPassword.WithCause(err)
	}

	sessionToken := jwt.NewWithClaims(a.signingMethod, jwt.MapClaims{
		"iss": tokenIssuer,
		"sub": "user",
		"exp": time.Now().Add(a.sessionTokenExpDuration).Unix(),
		"iat": time.Now().Unix(),
		"uid": u.ID().String(),
	})

	sessionjwt, err := sessionToken.SignedString(a.sessionTokenSecretKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to sign session token")
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token:    sessionjwt,
		TokenExp: a.sessionTokenExpDuration,
	}, nil
}

type JWTTokenAssertion struct {
	token    string
	jwttoken *jwt.Token
	claims   jwt.MapClaims
	t        *testing.T
}

func NewJWTTokenAssertion(t *testing.T, token string, secretkey []byte) *JWTTokenAssertion {
	t.Helper()

	jwttoken, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return secretkey, nil
	})
	require.NoError(t, err)

	claims, ok := jwttoken.Claims.(jwt.MapClaims)
	require.True(t, ok, "jwt token claims must be type jwt.MapClaims")

	return &JWTTokenAssertion{
		t:        t,
		token:    token,
		jwttoken: jwttoken,
		claims:   claims,
	}
}

func (a *JWTTokenAssertion) AssertValid() *JWTTokenAssertion {
	a.t.Helper()
	assert.NotNil(a.t, a.jwttoken, "jwt token should not be nil")
	assert.True(a.t, a.jwttoken.Valid, "jwt token should be valid")
	return a
}

func (a *JWTTokenAssertion) AssertISS(expected string) *JWTTokenAssertion {
	a.t.Helper()
	assert.Equal(a.t, a.claims["iss"], expected)
	return a
}

func (a *JWTTokenAssertion) AssertSub(expected string) *JWTTokenAssertion {
	a.t.Helper()
	assert.Equal(a.t, a.claims["sub"], expected)
	return a
}

func (a *JWTTokenAssertion) AssertExp(expected time.Time) *JWTTokenAssertion {
	a.t.Helper()
	exp, ok := a.claims["exp"].(float64)
	require.True(a.t, ok, "exp claim must be of type float64, got %T", a.claims["exp"])
	assert.NotZero(a.t, exp, "exp claim should not be zero")
	expTime := time.Unix(int64(exp), 0)
	assert.WithinDuration(a.t, expected, expTime, time.Second, "exp claim should be within 1 second of expected time")
	return a
}

func (a *JWTTokenAssertion) AssertIAT(expected time.Time) *JWTTokenAssertion {
	a.t.Helper()
	iat, ok := a.claims["iat"].(float64)
	require.True(a.t, ok, "iat claim must be of type float64, got %T", a.claims["iat"])

	assert.NotZero(a.t, iat, "iat claim should not be zero")
	iatTime := time.Unix(int64(iat), 0)

	assert.WithinDuration(a.t, expected, iatTime, time.Second, "iat claim should be within 1 second of expected time")
	return a
}

func (a *JWTTokenAssertion) AssertUID(expected string) *JWTTokenAssertion {
	a.t.Helper()
	assert.Equal(a.t, a.claims["uid"], expected)
	return a
}
