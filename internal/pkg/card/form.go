package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form is the payment card form as typed by the user. Only presence and length
// are checked; number plausibility is left to the payment backend.
type Form struct {
	Number string `json:"number" validate:"required,min=12,max=19,numeric"`
	Expiry string `json:"expiry" validate:"required,len=4,numeric"`
	CVV    string `json:"cvv" validate:"required,min=3,max=4,numeric"`
	Name   string `json:"name" validate:"required"`
}

var validate = validator.New()

// FieldError names the first offending field of a form
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid card %s (%s)", strings.ToLower(e.Field), e.Rule)
}

// Normalize strips the display formatting added by FormatCardNumber and FormatExpiry
func (f Form) Normalize() Form {
	return Form{
		Number: digitsOnly(f.Number),
		Expiry: digitsOnly(f.Expiry),
		CVV:    strings.TrimSpace(f.CVV),
		Name:   strings.TrimSpace(f.Name),
	}
}

// ValidateForm reports whether the form may be submitted
func ValidateForm(f Form) error {
	err := validate.Struct(f.Normalize())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: verrs[0].Field(), Rule: verrs[0].Tag()}
	}
	return err
}
