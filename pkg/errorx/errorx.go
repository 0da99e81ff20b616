package errorx

import (
	"errors"
	"fmt"
	"maps"
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// I18nError is the error type crossing the application boundary: a stable
// machine-readable Code, a message key resolved against the locale bundle,
// and a cause that stays server-side.
type I18nError struct {
	cause       error
	MessageKey  string
	MessageArgs map[string]any
	HTTPCode    int
	Code        Code
}

func (e *I18nError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.MessageKey)
	}

	return fmt.Sprintf("[%s] %s: %s", e.Code, e.MessageKey, e.cause)
}

func (e *I18nError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match two I18nErrors by their stable code, so sentinel
// errors like ErrAlreadyVerified survive WithCause copies.
func (e *I18nError) Is(target error) bool {
	var other *I18nError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code && e.MessageKey == other.MessageKey
}

func (e *I18nError) Localize(localizer *i18n.Localizer) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    e.MessageKey,
		TemplateData: e.MessageArgs,
	})
	if err != nil {
		return e.MessageKey
	}
	return msg
}

func (e *I18nError) HTTPStatusCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}

	return http.StatusInternalServerError
}

func (e *I18nError) WithHTTPCode(code int) *I18nError {
	c := *e
	c.HTTPCode = code
	return &c
}

func (e *I18nError) WithArgs(args map[string]any) *I18nError {
	c := *e
	c.MessageArgs = make(map[string]any, len(args))
	maps.Copy(c.MessageArgs, e.MessageArgs)
	maps.Copy(c.MessageArgs, args)
	return &c
}

func (e *I18nError) WithCause(cause error) *I18nError {
	c := *e
	c.cause = cause
	return &c
}

// Wrap adds operation context while keeping the I18nError reachable for
// errors.As/Is at the HTTP boundary.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}

	var i18nErr *I18nError
	if errors.As(err, &i18nErr) {
		return i18nErr.Code == code
	}

	return false
}

func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}

func IsDuplicateEntry(err error) bool {
	return IsCode(err, CodeDuplicateEntry)
}

func NewValidationFailed() *I18nError {
	return &I18nError{
		MessageKey: "validation_failed",
		Code:       CodeValidationFailed,
		HTTPCode:   http.StatusBadRequest,
	}
}

func NewMalformedJSON() *I18nError {
	return &I18nError{
		MessageKey: "malformed_json",
		Code:       CodeMalformedJSON,
		HTTPCode:   http.StatusBadRequest,
	}
}

func NewEmailDomainNotAllowed() *I18nError {
	return &I18nError{
		MessageKey: "email_domain_not_allowed",
		Code:       CodeEmailDomainNotAllowed,
		HTTPCode:   http.StatusBadRequest,
	}
}

func NewDuplicateEntry() *I18nError {
	return &I18nError{
		MessageKey: "duplicate_entry",
		Code:       CodeDuplicateEntry,
		HTTPCode:   http.StatusConflict,
	}
}

func NewNotFound() *I18nError {
	return &I18nError{
		MessageKey: "not_found",
		Code:       CodeNotFound,
		HTTPCode:   http.StatusNotFound,
	}
}

func NewAlreadyVerified() *I18nError {
	return &I18nError{
		MessageKey: "already_verified",
		Code:       CodeAlreadyVerified,
		HTTPCode:   http.StatusBadRequest,
	}
}

func NewVerificationCodeMismatch() *I18nError {
	return &I18nError{
		MessageKey: "verification_code_mismatch",
		Code:       CodeVerificationCodeMismatch,
		HTTPCode:   http.StatusBadRequest,
	}
}

func NewVerificationCodeExpired() *I18nError {
	return &I18nError{
		MessageKey: "verification_code_expired",
		Code:       CodeVerificationCodeExpired,
		HTTPCode:   http.StatusBadRequest,
	}
}

func NewEmailNotVerified() *I18nError {
	return &I18nError{
		MessageKey: "email_not_verified",
		Code:       CodeEmailNotVerified,
		HTTPCode:   http.StatusForbidden,
	}
}

func NewInvalidCredentials() *I18nError {
	return &I18nError{
		MessageKey: "invalid_credentials",
		Code:       CodeInvalidCredentials,
		HTTPCode:   http.StatusUnauthorized,
	}
}

func NewInternalError() *I18nError {
	return &I18nError{
		MessageKey: "internal_error",
		Code:       CodeInternal,
		HTTPCode:   http.StatusInternalServerError,
	}
}
