package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("genre", validateGenre)
	validator.RegisterValidation("positive_amount", validatePositiveAmount)

	return validator
}

// Any genre is accepted by the recommendation strategies, but it must be
// a single word.
func validateGenre(fl validator.FieldLevel) bool {
	genre := fl.Field().String()
	return genre != "" && !strings.ContainsAny(genre, " \t\n")
}

func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return amount.IsPositive()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", err.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "url":
		return "must be a valid URL"
	case "hostname_port":
		return "must be in host:port form"
	case "genre":
		return "must be a single word"
	case "positive_amount":
		return "must be a number greater than zero"
	default:
		return "is invalid"
	}
}

// FormatErrors joins the messages of a validator.ValidationErrors into a
// single error. Other errors are returned unchanged.
func FormatErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s %s", fe.Namespace(), ValidationMessage(fe))
	}

	return errors.New(strings.Join(msgs, "; "))
}
