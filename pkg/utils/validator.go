package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"taskmanager/domain/models"
	"taskmanager/pkg/apperror"
)

var validate = newValidator()

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// Letters, digits and underscores only.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	// At least one upper, one lower, one digit and one special character.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var upper, lower, digit, special bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			default:
				special = true
			}
		}
		return upper && lower && digit && special
	})

	// Enum tags defer to the model parsers so the boundary and the
	// services accept exactly the same tokens, case included.
	_ = v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTaskStatus(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("taskpriority", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTaskPriority(fl.Field().String())
		return err == nil
	})

	return v
}

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens a validator error into one entry per
// violated field, so responses enumerate every violation.
func GetValidationErrors(err error) []apperror.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "request", Message: "Invalid request"}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "taskstatus":
		return fmt.Sprintf("%s must be one of: PENDING, IN_PROGRESS, COMPLETED, CANCELLED", fe.Field())
	case "taskpriority":
		return fmt.Sprintf("%s must be one of: LOW, MEDIUM, HIGH, URGENT", fe.Field())
	case "username":
		return fmt.Sprintf("%s can only contain letters, numbers, and underscores", fe.Field())
	case "password":
		return fmt.Sprintf("%s must contain an uppercase letter, a lowercase letter, a number, and a special character", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
