package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestI18nError_CodeMatching(t *testing.T) {
	t.Parallel()

	err := NewVerificationCodeMismatch().WithCause(errors.New("stored code differs"))

	assert.True(t, IsCode(err, CodeVerificationCodeMismatch))
	assert.False(t, IsCode(err, CodeVerificationCodeExpired))
	assert.ErrorIs(t, err, NewVerificationCodeMismatch())
}

func TestI18nError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	inner := NewNotFound()
	wrapped := Wrap(fmt.Errorf("lookup by email: %w", inner), "cmd.ResendCode.Handle")

	assert.True(t, IsNotFound(wrapped))

	var i18nErr *I18nError
	require.ErrorAs(t, wrapped, &i18nErr)
	assert.Equal(t, CodeNotFound, i18nErr.Code)
	assert.Equal(t, http.StatusNotFound, i18nErr.HTTPStatusCode())
}

func TestI18nError_WithCauseDoesNotMutate(t *testing.T) {
	t.Parallel()

	base := NewAlreadyVerified()
	withCause := base.WithCause(errors.New("user row already flagged"))

	assert.NoError(t, base.Unwrap())
	assert.Error(t, withCause.Unwrap())
	assert.ErrorIs(t, withCause, base)
}

func TestHTTPStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *I18nError
		want int
	}{
		{NewValidationFailed(), http.StatusBadRequest},
		{NewEmailDomainNotAllowed(), http.StatusBadRequest},
		{NewDuplicateEntry(), http.StatusConflict},
		{NewNotFound(), http.StatusNotFound},
		{NewAlreadyVerified(), http.StatusBadRequest},
		{NewVerificationCodeMismatch(), http.StatusBadRequest},
		{NewVerificationCodeExpired(), http.StatusBadRequest},
		{NewEmailNotVerified(), http.StatusForbidden},
		{NewInvalidCredentials(), http.StatusUnauthorized},
		{NewInternalError(), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.HTTPStatusCode())
		})
	}
}

func TestPersistable(t *testing.T) {
	t.Parallel()

	err := NewPersistable(NewVerificationCodeExpired())

	assert.True(t, IsPersistable(err))
	assert.True(t, IsCode(err, CodeVerificationCodeExpired))
	assert.False(t, IsPersistable(NewVerificationCodeExpired()))
	assert.False(t, IsPersistable(nil))
}
