package registration

import (
	"fmt"
	"regexp"
	"strings"

	"fixnow/models"
)

// Hourly rates are capped; anything above this is assumed to be a typo.
const maxHourlyRate = 10000

var (
	fullNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRe    = regexp.MustCompile(`^\+?[\d\s()-]{10,14}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hoursRe    = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s*(AM|PM)\s*-\s*\d{1,2}:\d{2}\s*(AM|PM)$`)

	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*]`)
)

// passwordProblems lists what a password is missing, empty when compliant.
func passwordProblems(password string) []string {
	var problems []string
	if len(password) < 8 {
		problems = append(problems, "at least 8 characters")
	}
	if !lowerRe.MatchString(password) {
		problems = append(problems, "a lowercase letter")
	}
	if !upperRe.MatchString(password) {
		problems = append(problems, "an uppercase letter")
	}
	if !digitRe.MatchString(password) {
		problems = append(problems, "a number")
	}
	if !specialRe.MatchString(password) {
		problems = append(problems, "a special character")
	}
	return problems
}

// ValidateField checks a single field of the draft and returns a
// human-readable message, or "" when the field passes. It is a pure
// function of the draft; touched state only affects visibility, not
// validity.
func ValidateField(field Field, form models.ProviderForm) string {
	switch field {
	case FieldFullName:
		name := strings.TrimSpace(form.FullName)
		if name == "" {
			return "Full name is required"
		}
		if len(name) < 2 {
			return "Full name must be at least 2 characters"
		}
		if !fullNameRe.MatchString(name) {
			return "Full name should only contain letters and spaces"
		}
	case FieldPhoneNumber:
		if strings.TrimSpace(form.PhoneNumber) == "" {
			return "Phone number is required"
		}
		if !phoneRe.MatchString(form.PhoneNumber) {
			return "Enter a valid phone number (e.g., +1234567890 or (123) 456-7890)"
		}
	case FieldEmail:
		if strings.TrimSpace(form.Email) == "" {
			return "Email is required"
		}
		if !emailRe.MatchString(form.Email) {
			return "Enter a valid email address"
		}
	case FieldPassword:
		if form.Password == "" {
			return "Password is required"
		}
		if problems := passwordProblems(form.Password); len(problems) > 0 {
			return fmt.Sprintf("Password must contain %s", strings.Join(problems, ", "))
		}
	case FieldConfirmPassword:
		if form.Password != form.ConfirmPassword {
			return "Passwords do not match"
		}
	case FieldServiceTypes:
		if len(form.ServiceTypes) == 0 {
			return "Please select at least one service type"
		}
		for _, st := range form.ServiceTypes {
			if !models.IsValidServiceType(st) {
				return fmt.Sprintf("Unknown service type %q", st)
			}
		}
	case FieldBusinessName:
		if strings.TrimSpace(form.BusinessName) == "" {
			return "Business name is required"
		}
	case FieldHourlyRate:
		if form.HourlyRate <= 0 {
			return "Hourly rate must be greater than 0"
		}
		if form.HourlyRate > maxHourlyRate {
			return fmt.Sprintf("Hourly rate cannot exceed %d", maxHourlyRate)
		}
	case FieldAddress:
		address := strings.TrimSpace(form.Address)
		if address == "" {
			return "Address is required"
		}
		if len(address) < 5 {
			return "Address must be at least 5 characters"
		}
	case FieldAvailableHours:
		if strings.TrimSpace(form.AvailableHours) == "" {
			return "Available hours are required"
		}
		if !hoursRe.MatchString(form.AvailableHours) {
			return "Enter valid hours (e.g., 8:00 AM - 6:00 PM)"
		}
	}
	return ""
}

// ValidateStep reports whether every field belonging to the step passes.
func ValidateStep(step Step, form models.ProviderForm) bool {
	for _, f := range step.Fields() {
		if ValidateField(f, form) != "" {
			return false
		}
	}
	return true
}

// ValidateForm reports whether the whole draft is submittable.
func ValidateForm(form models.ProviderForm) bool {
	for _, f := range validatedFields {
		if ValidateField(f, form) != "" {
			return false
		}
	}
	return true
}
