package validator

import (
	"errors"
	"fmt"
	"strings"

	"careerdesk/pkg/logger"
	"careerdesk/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type CareerValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCareerValidator(log *logger.Logger) *CareerValidator {
	v := validator.New()

	log.Info("Career validator initialized successfully")

	return &CareerValidator{
		validate: v,
		logger:   log,
	}
}

func (v *CareerValidator) Validate(c *model.Career) error {
	if err := v.validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if err := validateSalaryBounds(c); err != nil {
		return err
	}

	return nil
}

// validateSalaryBounds rejects inverted salary ranges. Negotiable postings
// skip the check since the range is advisory there.
func validateSalaryBounds(c *model.Career) error {
	if c.SalaryNegotiable {
		return nil
	}
	if c.MinimumSalary == nil || c.MaximumSalary == nil {
		return nil
	}
	if *c.MinimumSalary > *c.MaximumSalary {
		return ValidationErrors{{
			Field:   "minimumSalary",
			Message: "minimumSalary must not exceed maximumSalary",
		}}
	}
	return nil
}

func (v *CareerValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "len":
			message = fmt.Sprintf("%s must be exactly %s characters", err.Field(), err.Param())
		case "hexadecimal":
			message = fmt.Sprintf("%s must contain only hexadecimal characters", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of [%s]", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid object id", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
