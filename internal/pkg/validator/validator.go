// Package validator wraps go-playground/validator with the project's custom
// tags and a standardized error format.
//
// Besides the stock tags it registers:
//
//   - eth_checksum: the field must be a checksum-cased Ethereum address.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"

	"github.com/gabapcia/ethtracker/internal/pkg/address"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value '0x' does not meet the requirements for the 'eth_checksum' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// TagEthChecksum is the tag name for checksum-cased Ethereum addresses.
const TagEthChecksum = "eth_checksum"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	if err := validator.RegisterValidation(TagEthChecksum, validateEthChecksum); err != nil {
		panic(err)
	}
}

func validateEthChecksum(fl gvalidator.FieldLevel) bool {
	return address.IsValid(fl.Field().String())
}

// formatError transforms a raw validator error into a multi-error chain rooted
// at ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var validates a single value against tag, e.g. Var(addr, "required,eth_checksum").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
