package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator"
)

var (
	global *validator.Validate

	nameRegex  = regexp.MustCompile(`^[A-Za-z][A-Za-z '\-]*$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	// 3 digits, 2 letters, 2 digits, 1 digit/letter, 2 digits, e.g. 123AB45C67.
	regNoRegex = regexp.MustCompile(`^[0-9]{3}[a-zA-Z]{2}[0-9]{2}[0-9a-zA-Z][0-9]{2}$`)

	allowedYears = map[string]struct{}{
		"1": {}, "2": {}, "3": {}, "4": {},
		"1st": {}, "2nd": {}, "3rd": {}, "4th": {},
	}
)

const (
	ErrFieldRequired     = "Field is required"
	ErrInvalidFormat     = "Invalid format"
	ErrUnknownValidation = "Unknown validation error"

	MsgNameRequired   = "Student name is required."
	MsgNameFormat     = "Name may contain only letters, spaces, hyphens, or apostrophes (max 50 characters)."
	MsgEmailRequired  = "Email is required."
	MsgEmailFormat    = "Invalid email format."
	MsgRegNoRequired  = "Registration number is required."
	MsgRegNoFormat    = "Registration number format should be: 3 digits, 2 letters, 2 digits, 1 digit/letter, 2 digits (e.g., 123AB45C67)."
	MsgPhoneRequired  = "Phone number is required."
	MsgPhoneFormat    = "Phone number must be exactly 10 digits."
	MsgSectionReq     = "Section is required."
	MsgYearRequired   = "Year is required."
	MsgYearFormat     = "Year must be one of 1st, 2nd, 3rd or 4th."
	MsgTeamNameReq    = "Team name is required."
	MsgTeamNameFormat = "Team name must be 2-50 characters."
)

func init() {
	SetValidator(New())
}

func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("regno", validateRegNo)
	_ = v.RegisterValidation("phone10", validatePhone)
	_ = v.RegisterValidation("year", validateYear)
	return v
}

func SetValidator(v *validator.Validate) {
	global = v
}

func Validator() *validator.Validate {
	return global
}

func validateRegNo(fl validator.FieldLevel) bool {
	return regNoRegex.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateYear(fl validator.FieldLevel) bool {
	_, ok := allowedYears[strings.TrimSpace(fl.Field().String())]
	return ok
}

// Validate runs struct-tag validation and translates the first failure into a
// human-readable error.
func Validate(ctx context.Context, structure any) error {
	return parseValidationErrors(Validator().StructCtx(ctx, structure))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	vErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(vErrors) == 0 {
		return nil
	}
	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required":
		msg = ErrFieldRequired
	case "regno":
		msg = MsgRegNoFormat
	case "phone10":
		msg = MsgPhoneFormat
	case "year":
		msg = MsgYearFormat
	case "min", "max", "email":
		msg = ErrInvalidFormat
	default:
		msg = ErrUnknownValidation
	}
	return errors.New(msg + ": " + ve.Namespace())
}

// Field validators below are pure checks shared by every registration path.
// A nil return means the value is valid; otherwise the error text is the
// user-facing message.

func Name(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New(MsgNameRequired)
	}
	if len(s) > 50 || !nameRegex.MatchString(s) {
		return errors.New(MsgNameFormat)
	}
	return nil
}

func Email(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New(MsgEmailRequired)
	}
	if !emailRegex.MatchString(s) {
		return errors.New(MsgEmailFormat)
	}
	return nil
}

func RegistrationNo(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New(MsgRegNoRequired)
	}
	if !regNoRegex.MatchString(s) {
		return errors.New(MsgRegNoFormat)
	}
	return nil
}

func PhoneNo(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New(MsgPhoneRequired)
	}
	if !phoneRegex.MatchString(s) {
		return errors.New(MsgPhoneFormat)
	}
	return nil
}

func Section(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New(MsgSectionReq)
	}
	return nil
}

func Year(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New(MsgYearRequired)
	}
	if _, ok := allowedYears[s]; !ok {
		return errors.New(MsgYearFormat)
	}
	return nil
}

func TeamName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New(MsgTeamNameReq)
	}
	if len(s) < 2 || len(s) > 50 {
		return errors.New(MsgTeamNameFormat)
	}
	return nil
}
