package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	mobileRegex  = regexp.MustCompile(`^\d{10}$`)
	zipcodeRegex = regexp.MustCompile(`^\d{5}$`)
)

// registerCustomRules wires the portal-specific field rules.
// These mirror the checks the eligibility evaluator applies, so a request
// rejected here would have produced the matching reason anyway.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRegex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobileRegex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipcodeRegex.MatchString(fl.Field().String())
	})
}
