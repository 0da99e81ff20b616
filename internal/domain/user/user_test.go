package user_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkuglocal/campus-backend/internal/domain/user"
	"github.com/kkuglocal/campus-backend/tests/builders"
	"github.com/kkuglocal/campus-backend/tests/fixtures"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	args := builders.NewUserBuilder().BuildNewUserArgs()

	u, err := user.NewUser(args)
	require.NoError(t, err)

	user.NewUserAssertions(u).AssertByNewUserArgs(t, args)

	code := u.VerifyCodeValue()
	require.Len(t, code, user.VerificationCodeLength)
	n, err := strconv.Atoi(code)
	require.NoError(t, err, "code must be numeric")
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)

	assert.WithinDuration(t, time.Now().Add(user.VerificationCodeTTL), u.CodeExpiresAt(), time.Minute)
}

func TestNewUser_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args user.NewUserArgs
	}{
		{
			name: "external email",
			args: builders.NewUserBuilder().WithEmail(fixtures.ValidExternalEmail).BuildNewUserArgs(),
		},
		{
			name: "empty email",
			args: builders.NewUserBuilder().WithEmail("").BuildNewUserArgs(),
		},
		{
			name: "empty name",
			args: builders.NewUserBuilder().WithName("").BuildNewUserArgs(),
		},
		{
			name: "short password",
			args: builders.NewUserBuilder().WithPassword("short").BuildNewUserArgs(),
		},
		{
			name: "non-numeric student number",
			args: builders.NewUserBuilder().WithStudentNumber("20AB123").BuildNewUserArgs(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := user.NewUser(tt.args)
			require.Error(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestUser_VerifyCode(t *testing.T) {
	t.Parallel()

	t.Run("matching code verifies and clears", func(t *testing.T) {
		t.Parallel()

		u := builders.NewUserBuilder().WithVerifyCode(fixtures.ValidVerificationCode).Build()

		err := u.VerifyCode(fixtures.ValidVerificationCode)
		require.NoError(t, err)

		user.NewUserAssertions(u).
			AssertVerified(t).
			AssertEventsCount(t, 1)

		evts := u.GetUncommittedEvents()
		require.Len(t, evts, 1)
		verified, ok := evts[0].(*user.EmailVerified)
		require.True(t, ok)
		assert.Equal(t, u.ID(), verified.UserID)
		assert.Equal(t, u.Email(), verified.Email)
	})

	t.Run("wrong code is a mismatch", func(t *testing.T) {
		t.Parallel()

		u := builders.NewUserBuilder().WithVerifyCode(fixtures.ValidVerificationCode).Build()

		err := u.VerifyCode(fixtures.WrongVerificationCode)
		require.Error(t, err)
		assert.ErrorIs(t, err, user.ErrVerificationCodeMismatch)

		user.NewUserAssertions(u).
			AssertNotVerified(t).
			AssertEventsCount(t, 0)
	})

	t.Run("expired code", func(t *testing.T) {
		t.Parallel()

		u := builders.NewUserBuilder().
			WithVerifyCode(fixtures.ValidVerificationCode).
			WithExpiredCode().
			Build()

		err := u.VerifyCode(fixtures.ValidVerificationCode)
		require.Error(t, err)
		assert.ErrorIs(t, err, user.ErrVerificationCodeExpired)

		user.NewUserAssertions(u).AssertNotVerified(t)
	})

	t.Run("verified user has no code to match", func(t *testing.T) {
		t.Parallel()

		u := builders.NewUserBuilder().Verified().Build()

		err := u.VerifyCode(fixtures.ValidVerificationCode)
		require.Error(t, err)
		assert.ErrorIs(t, err, user.ErrVerificationCodeMismatch)
	})
}

func TestUser_RegenerateCode(t *testing.T) {
	t.Parallel()

	t.Run("replaces code and restarts expiry", func(t *testing.T) {
		t.Parallel()

		u := builders.NewUserBuilder().
			WithVerifyCode(fixtures.ValidVerificationCode).
			WithExpiredCode().
			Build()

		err := u.RegenerateCode()
		require.NoError(t, err)

		assert.Len(t, u.VerifyCodeValue(), user.VerificationCodeLength)
		assert.WithinDuration(t, time.Now().Add(user.VerificationCodeTTL), u.CodeExpiresAt(), time.Minute)

		evts := u.GetUncommittedEvents()
		require.Len(t, evts, 1)
		resent, ok := evts[0].(*user.VerificationCodeResent)
		require.True(t, ok)
		assert.Equal(t, u.Email(), resent.Email)
		assert.Equal(t, u.VerifyCodeValue(), resent.VerificationCode)
	})

	t.Run("previous code no longer verifies", func(t *testing.T) {
		t.Parallel()

		u := builders.NewUserBuilder().
			WithVerifyCode(fixtures.ValidVerificationCode).
			Build()

		require.NoError(t, u.RegenerateCode())

		err := u.VerifyCode(fixtures.ValidVerificationCode)
		require.Error(t, err)
		assert.ErrorIs(t, err, user.ErrVerificationCodeMismatch)

		user.NewUserAssertions(u).AssertNotVerified(t)

		require.NoError(t, u.VerifyCode(u.VerifyCodeValue()))
		user.NewUserAssertions(u).AssertVerified(t)
	})

	t.Run("verified account is rejected", func(t *testing.T) {
		t.Parallel()

		u := builders.NewUserBuilder().Verified().Build()

		err := u.RegenerateCode()
		require.Error(t, err)
		assert.ErrorIs(t, err, user.ErrAlreadyVerified)

		user.NewUserAssertions(u).AssertEventsCount(t, 0)
	})
}

func TestUser_ComparePassword(t *testing.T) {
	t.Parallel()

	u := builders.NewUserBuilder().WithPassword(fixtures.ValidPassword).Build()

	assert.NoError(t, u.ComparePassword(fixtures.ValidPassword))
	assert.Error(t, u.ComparePassword(fixtures.WrongPassword))
}
