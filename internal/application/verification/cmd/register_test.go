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

type RegisterSuite struct {
	Handler  *RegisterHandler
	MockRepo *mocks.UserRepo
}

func NewRegisterSuite() *RegisterSuite {
	mockRepo := mocks.NewUserRepo()
	handler := NewRegisterHandler(RegisterHandlerArgs{
		Repo: mockRepo,
	})

	return &RegisterSuite{
		Handler:  handler,
		MockRepo: mockRepo,
	}
}

func TestRegisterHandler_HappyPath(t *testing.T) {
	t.Parallel()

	s := NewRegisterSuite()

	err := s.Handler.Handle(t.Context(), Register{
		Name:          fixtures.ValidName,
		StudentNumber: fixtures.ValidStudentNumber,
		Email:         fixtures.ValidStudentEmail,
		Password:      fixtures.ValidPassword,
	})
	require.NoError(t, err)

	s.MockRepo.
		AssertUserExistsByEmail(t, fixtures.ValidStudentEmail).
		AssertNotVerified(t).
		AssertPassword(t, fixtures.ValidPassword)

	s.MockRepo.AssertEventCount(t, 1)
	e := mocks.RequireEventExists(t, s.MockRepo.EventRepo, &user.UserRegistered{})
	require.NotNil(t, e)
	assert.Equal(t, fixtures.ValidStudentEmail, e.Email)
	assert.Equal(t, fixtures.ValidName, e.Name)
	assert.Len(t, e.VerificationCode, user.VerificationCodeLength)
}

func TestRegisterHandler_ExternalEmail_ShouldReturnError(t *testing.T) {
	t.Parallel()

	s := NewRegisterSuite()

	err := s.Handler.Handle(t.Context(), Register{
		Name:          fixtures.ValidName,
		StudentNumber: fixtures.ValidStudentNumber,
		Email:         fixtures.ValidExternalEmail,
		Password:      fixtures.ValidPassword,
	})
	require.Error(t, err)

	s.MockRepo.AssertUserNotExistsByEmail(t, fixtures.ValidExternalEmail)
	s.MockRepo.AssertEventCount(t, 0)
}

func TestRegisterHandler_DuplicateEmail_ShouldReturnError(t *testing.T) {
	t.Parallel()

	s := NewRegisterSuite()
	existing := builders.NewUserBuilder().WithEmail(fixtures.ValidStudentEmail).Build()
	s.MockRepo.SeedUser(t, existing)

	err := s.Handler.Handle(t.Context(), Register{
		Name:          fixtures.ValidName,
		StudentNumber: fixtures.ValidStudentNumber,
		Email:         fixtures.ValidStudentEmail,
		Password:      fixtures.ValidPassword,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	s.MockRepo.AssertEventCount(t, 0)
}

func TestRegisterHandler_InvalidArgs_ShouldReturnError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		arg  Register
	}{
		{
			name: "empty name",
			arg: Register{
				Name:          "",
				StudentNumber: fixtures.ValidStudentNumber,
				Email:         fixtures.ValidStudentEmail,
				Password:      fixtures.ValidPassword,
			},
		},
		{
			name: "empty email",
			arg: Register{
				Name:          fixtures.ValidName,
				StudentNumber: fixtures.ValidStudentNumber,
				Email:         "",
				Password:      fixtures.ValidPassword,
			},
		},
		{
			name: "short password",
			arg: Register{
				Name:          fixtures.ValidName,
				StudentNumber: fixtures.ValidStudentNumber,
				Email:         fixtures.ValidStudentEmail,
				Password:      "short",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewRegisterSuite()
			err := s.Handler.Handle(t.Context(), tt.arg)
			require.Error(t, err)

			s.MockRepo.AssertEventCount(t, 0)
		})
	}
}
