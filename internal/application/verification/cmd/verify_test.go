package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/tests/builders"
	"github.com/kkuglocal/campus-backend/tests/fixtures"
	"github.com/kkuglocal/campus-backend/tests/mocks"
)

type VerifySuite struct {
	Handler  *VerifyHandler
	MockRepo *mocks.UserRepo
}

func NewVerifySuite() *VerifySuite {
	mockRepo := mocks.NewUserRepo()
	handler := NewVerifyHandler(VerifyHandlerArgs{
		Repo: mockRepo,
	})

	return &VerifySuite{
		Handler:  handler,
		MockRepo: mockRepo,
	}
}

func TestVerifyHandler_HappyPath(t *testing.T) {
	t.Parallel()

	s := NewVerifySuite()
	u := builders.NewUserBuilder().
		WithEmail(fixtures.ValidStudentEmail).
		WithVerifyCode(fixtures.ValidVerificationCode).
		Build()
	s.MockRepo.SeedUser(t, u)

	err := s.Handler.Handle(t.Context(), Verify{
		Email: u.Email(),
		Code:  fixtures.ValidVerificationCode,
	})
	require.NoError(t, err)

	s.MockRepo.
		AssertUserExistsByEmail(t, u.Email()).
		AssertVerified(t)

	s.MockRepo.AssertEventCount(t, 1)
	e := mocks.RequireEventExists(t, s.MockRepo.EventRepo, &user.EmailVerified{})
	require.NotNil(t, e)
	assert.Equal(t, u.ID(), e.UserID)
	assert.Equal(t, u.Email(), e.Email)
}

func TestVerifyHandler_UnknownEmail_ShouldReturnError(t *testing.T) {
	t.Parallel()

	s := NewVerifySuite()
	u := builders.NewUserBuilder().WithEmail(fixtures.ValidStudentEmail).Build()
	s.MockRepo.SeedUser(t, u)

	err := s.Handler.Handle(t.Context(), Verify{
		Email: fixtures.AnotherStudentEmail,
		Code:  fixtures.ValidVerificationCode,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestVerifyHandler_WrongCode_ShouldReturnError(t *testing.T) {
	t.Parallel()

	s := NewVerifySuite()
	u := builders.NewUserBuilder().
		WithEmail(fixtures.ValidStudentEmail).
		WithVerifyCode(fixtures.ValidVerificationCode).
		Build()
	s.MockRepo.SeedUser(t, u)

	err := s.Handler.Handle(t.Context(), Verify{
		Email: u.Email(),
		Code:  fixtures.WrongVerificationCode,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrVerificationCodeMismatch)

	s.MockRepo.
		AssertUserExistsByEmail(t, u.Email()).
		AssertNotVerified(t).
		AssertVerifyCode(t, fixtures.ValidVerificationCode)
	s.MockRepo.AssertEventCount(t, 0)
}

func TestVerifyHandler_ExpiredCode_ShouldReturnError(t *testing.T) {
	t.Parallel()

	s := NewVerifySuite()
	u := builders.NewUserBuilder().
		WithEmail(fixtures.ValidStudentEmail).
		WithVerifyCode(fixtures.ValidVerificationCode).
		WithExpiredCode().
		Build()
	s.MockRepo.SeedUser(t, u)

	err := s.Handler.Handle(t.Context(), Verify{
		Email: u.Email(),
		Code:  fixtures.ValidVerificationCode,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrVerificationCodeExpired)

	s.MockRepo.
		AssertUserExistsByEmail(t, u.Email()).
		AssertNotVerified(t)
	s.MockRepo.AssertEventCount(t, 0)
}

func TestVerifyHandler_AlreadyVerified_ReadsAsMismatch(t *testing.T) {
	t.Parallel()

	s := NewVerifySuite()
	u := builders.NewUserBuilder().
		WithEmail(fixtures.ValidStudentEmail).
		Verified().
		Build()
	s.MockRepo.SeedUser(t, u)

	err := s.Handler.Handle(t.Context(), Verify{
		Email: u.Email(),
		Code:  fixtures.ValidVerificationCode,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrVerificationCodeMismatch)

	s.MockRepo.AssertEventCount(t, 0)
}
