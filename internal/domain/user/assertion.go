package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kkuglocal/campus-backend/internal/domain/event"
)

type UserAssertions struct {
	ID            ID
	Name          string
	StudentNumber string
	Email         string
	PassHash      []byte
	IsVerified    bool
	VerifyCode    string
	CodeExpiresAt time.Time
	Events        []event.Event
}

func NewUserAssertions(u *User) *UserAssertions {
	return &UserAssertions{
		ID:            u.ID(),
		Name:          u.Name(),
		StudentNumber: u.StudentNumber(),
		Email:         u.Email(),
		PassHash:      u.PassHash(),
		IsVerified:    u.IsVerified(),
		VerifyCode:    u.VerifyCodeValue(),
		CodeExpiresAt: u.CodeExpiresAt(),
		Events:        u.GetUncommittedEvents(),
	}
}

func (s *UserAssertions) AssertByNewUserArgs(t *testing.T, args NewUserArgs) *UserAssertions {
	t.Helper()
	assert.Equal(t, args.Name, s.Name, "Name mismatch")
	assert.Equal(t, args.StudentNumber, s.StudentNumber, "StudentNumber mismatch")
	assert.Equal(t, args.Email, s.Email, "Email mismatch")
	assert.False(t, s.IsVerified, "new user must start unverified")
	assert.Len(t, s.VerifyCode, VerificationCodeLength, "VerifyCode length mismatch")

	assert.NoError(t, bcrypt.CompareHashAndPassword(s.PassHash, []byte(args.Password)), "PassHash mismatch")

	require.Len(t, s.Events, 1, "expected one event")
	assert.IsType(t, &UserRegistered{}, s.Events[0], "expected UserRegistered event type")
	registeredEvent := s.Events[0].(*UserRegistered)
	assert.Equal(t, s.ID, registeredEvent.UserID, "UserID in event mismatch")
	assert.Equal(t, args.Email, registeredEvent.Email, "Email in event mismatch")
	assert.Equal(t, args.Name, registeredEvent.Name, "Name in event mismatch")
	assert.Equal(t, s.VerifyCode, registeredEvent.VerificationCode, "VerificationCode in event mismatch")

	return s
}

func (s *UserAssertions) AssertID(t *testing.T, expected ID) *UserAssertions {
	t.Helper()
	assert.Equal(t, expected, s.ID, "ID mismatch")
	return s
}

func (s *UserAssertions) AssertEmail(t *testing.T, expected string) *UserAssertions {
	t.Helper()
	assert.Equal(t, expected, s.Email, "Email mismatch")
	return s
}

func (s *UserAssertions) AssertVerified(t *testing.T) *UserAssertions {
	t.Helper()
	assert.True(t, s.IsVerified, "expected user to be verified")
	assert.Empty(t, s.VerifyCode, "verified user must not keep a code")
	assert.True(t, s.CodeExpiresAt.IsZero(), "verified user must not keep a code expiry")
	return s
}

func (s *UserAssertions) AssertNotVerified(t *testing.T) *UserAssertions {
	t.Helper()
	assert.False(t, s.IsVerified, "expected user to be unverified")
	return s
}

func (s *UserAssertions) AssertVerifyCode(t *testing.T, expected string) *UserAssertions {
	t.Helper()
	assert.Equal(t, expected, s.VerifyCode, "VerifyCode mismatch")
	return s
}

func (s *UserAssertions) AssertPassword(t *testing.T, expected string) *UserAssertions {
	t.Helper()
	err := bcrypt.CompareHashAndPassword(s.PassHash, []byte(expected))
	assert.NoError(t, err, "PassHash mismatch")
	return s
}

func (s *UserAssertions) AssertEventsCount(t *testing.T, expected int) *UserAssertions {
	t.Helper()
	assert.Len(t, s.Events, expected, "uncommitted events count mismatch")
	return s
}
