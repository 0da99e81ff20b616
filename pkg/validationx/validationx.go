package validationx

import (
	"errors"
	"regexp"

	"github.com/ARUMANDESU/validation"
)

var ErrNotSchoolEmail = validation.NewError(
	"email_domain_not_allowed",
	"must be a Konkuk University Glocal Campus email address",
)

var (
	// Case-sensitive local part, fixed institutional domain suffix.
	schoolEmailRegex   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@kku\.ac\.kr$`)
	studentNumberRegex = regexp.MustCompile(`^[0-9]{6,20}$`)
	numericCodeRegex   = regexp.MustCompile(`^[0-9]+$`)
)

// IsSchoolEmail accepts only addresses on the kku.ac.kr domain.
var IsSchoolEmail = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required handles emptiness
	}

	if !schoolEmailRegex.MatchString(s) {
		return ErrNotSchoolEmail
	}
	return nil
})

var IsStudentNumber = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	if !studentNumberRegex.MatchString(s) {
		return errors.New("must be a valid student number")
	}
	return nil
})

var IsNumericCode = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	if !numericCodeRegex.MatchString(s) {
		return errors.New("must contain digits only")
	}
	return nil
})
