package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// The email pattern is deliberately loose (no TLD requirement); it mirrors
// the rule the account data was created under, so tightening it would lock
// existing accounts out of profile updates.
var (
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
	mobilePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`[0-9]`)
	passwordSymbol  = regexp.MustCompile(`[@$!%*?&]`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]+$`)
)

// MinimumAgeYears is the registration age floor.
const MinimumAgeYears = 13

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidMobile accepts 10-15 digits with an optional leading +.
func IsValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// IsValidPassword enforces the strength rule: at least 8 characters with one
// lowercase, one uppercase, one digit and one of @$!%*?&, drawn only from
// letters, digits and those symbols.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return passwordCharset.MatchString(password) &&
		passwordLower.MatchString(password) &&
		passwordUpper.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSymbol.MatchString(password)
}

// ParseBirthDate parses a YYYY-MM-DD date. The ok result is false when the
// string does not parse.
func ParseBirthDate(birthDate string) (time.Time, bool) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(birthDate))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// IsOldEnough reports whether birth lies at least MinimumAgeYears full years
// before now.
func IsOldEnough(birth, now time.Time) bool {
	return !birth.After(now.AddDate(-MinimumAgeYears, 0, 0))
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}
