package user

import "github.com/kkuglocal/campus-backend/pkg/errorx"

var (
	ErrNotFound                 = errorx.NewNotFound()
	ErrEmailTaken               = errorx.NewDuplicateEntry()
	ErrEmailDomainNotAllowed    = errorx.NewEmailDomainNotAllowed()
	ErrAlreadyVerified          = errorx.NewAlreadyVerified()
	ErrVerificationCodeMismatch = errorx.NewVerificationCodeMismatch()
	ErrVerificationCodeExpired  = errorx.NewVerificationCodeExpired()
	ErrEmailNotVerified         = errorx.NewEmailNotVerified()
	ErrWrongEmailOrPassword     = errorx.NewInvalidCredentials()
)
