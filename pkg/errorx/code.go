package errorx

type Code string

func (c Code) String() string {
	return string(c)
}

const (
	// Client errors (4xx)
	CodeInvalid                  Code = "INVALID"
	CodeValidationFailed         Code = "VALIDATION_FAILED"
	CodeMalformedJSON            Code = "MALFORMED_JSON"
	CodeEmailDomainNotAllowed    Code = "EMAIL_DOMAIN_NOT_ALLOWED"
	CodeDuplicateEntry           Code = "DUPLICATE_ENTRY"
	CodeNotFound                 Code = "NOT_FOUND"
	CodeAlreadyVerified          Code = "ALREADY_VERIFIED"
	CodeVerificationCodeMismatch Code = "VERIFICATION_CODE_MISMATCH"
	CodeVerificationCodeExpired  Code = "VERIFICATION_CODE_EXPIRED"
	CodeEmailNotVerified         Code = "EMAIL_NOT_VERIFIED"
	CodeInvalidCredentials       Code = "INVALID_CREDENTIALS"
	CodeUnauthorized             Code = "UNAUTHORIZED"

	// Server errors (5xx)
	CodeInternal Code = "INTERNAL_ERROR"
)
