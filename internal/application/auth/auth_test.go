package authapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/tests/builders"
	"github.com/kkuglocal/campus-backend/tests/fixtures"
	"github.com/kkuglocal/campus-backend/tests/mocks"
)

const testSecretKey = "test-session-secret"

type LoginSuite struct {
	App      *App
	MockRepo *mocks.UserRepo
}

func NewLoginSuite() *LoginSuite {
	mockRepo := mocks.NewUserRepo()
	app := NewApp(Args{
		UserGetter:            mockRepo,
		SessionTokenSecretKey: testSecretKey,
	})

	return &LoginSuite{
		App:      app,
		MockRepo: mockRepo,
	}
}

func TestLoginHandle_HappyPath(t *testing.T) {
	t.Parallel()

	s := NewLoginSuite()
	u := builders.NewUserBuilder().
		WithEmail(fixtures.ValidStudentEmail).
		WithPassword(fixtures.ValidPassword).
		Verified().
		Build()
	s.MockRepo.SeedUser(t, u)

	resp, err := s.App.LoginHandle(t.Context(), Login{
		Email:    fixtures.ValidStudentEmail,
		Password: fixtures.ValidPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, SessionTokenExpDuration, resp.TokenExp)

	NewJWTTokenAssertion(t, resp.Token, []byte(testSecretKey)).
		AssertValid().
		AssertISS(tokenIssuer).
		AssertSub("user").
		AssertUID(u.ID().String()).
		AssertIAT(time.Now()).
		AssertExp(time.Now().Add(SessionTokenExpDuration))
}

func TestLoginHandle_UnknownEmail_ShouldReturnInvalidCredentials(t *testing.T) {
	t.Parallel()

	s := NewLoginSuite()

	_, err := s.App.LoginHandle(t.Context(), Login{
		Email:    fixtures.ValidStudentEmail,
		Password: fixtures.ValidPassword,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrWrongEmailOrPassword)
}

func TestLoginHandle_WrongPassword_ShouldReturnInvalidCredentials(t *testing.T) {
	t.Parallel()

	s := NewLoginSuite()
	u := builders.NewUserBuilder().
		WithEmail(fixtures.ValidStudentEmail).
		WithPassword(fixtures.ValidPassword).
		Verified().
		Build()
	s.MockRepo.SeedUser(t, u)

	_, err := s.App.LoginHandle(t.Context(), Login{
		Email:    fixtures.ValidStudentEmail,
		Password: fixtures.WrongPassword,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrWrongEmailOrPassword)
}

func TestLoginHandle_UnverifiedEmail_ShouldReturnForbidden(t *testing.T) {
	t.Parallel()

	s := NewLoginSuite()
	u := builders.NewUserBuilder().
		WithEmail(fixtures.ValidStudentEmail).
		WithPassword(fixtures.ValidPassword).
		Build()
	s.MockRepo.SeedUser(t, u)

	_, err := s.App.LoginHandle(t.Context(), Login{
		Email:    fixtures.ValidStudentEmail,
		Password: fixtures.ValidPassword,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrEmailNotVerified)
}

func TestLoginHandle_UnverifiedEmail_WrongPassword_StillReportsUnverified(t *testing.T) {
	t.Parallel()

	s := NewLoginSuite()
	u := builders.NewUserBuilder().
		WithEmail(fixtures.ValidStudentEmail).
		WithPassword(fixtures.ValidPassword).
		Build()
	s.MockRepo.SeedUser(t, u)

	_, err := s.App.LoginHandle(t.Context(), Login{
		Email:    fixtures.ValidStudentEmail,
		Password: fixtures.WrongPassword,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrEmailNotVerified)
}
