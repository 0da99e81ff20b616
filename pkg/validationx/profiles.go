package validationx

import (
	"github.com/ARUMANDESU/validation"
	"github.com/ARUMANDESU/validation/is"
)

var (
	EmailRules = []validation.Rule{
		validation.Required,
		is.Email,
		validation.Length(5, 255),
	}

	SchoolEmailRules = []validation.Rule{
		validation.Required,
		is.Email,
		validation.Length(5, 255),
		IsSchoolEmail,
	}

	NameRules = []validation.Rule{
		validation.Required,
		validation.Length(1, 150),
	}

	StudentNumberRules = []validation.Rule{
		validation.Required,
		validation.Length(6, 20),
		IsStudentNumber,
	}

	PasswordRules = []validation.Rule{
		validation.Required,
		validation.Length(8, 128),
	}

	VerificationCodeRules = []validation.Rule{
		validation.Required,
		validation.Length(6, 6),
		IsNumericCode,
	}
)
