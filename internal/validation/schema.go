// Package validation implements the declarative schema layer: per-form rule
// tables producing blocking errors, an independent warnings pass producing
// advisory messages, and a simulated async email-availability check.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/formlab/formlab/internal/utils"
)

// Field limits shared by the rule tables.
const (
	NameMin         = 2
	NameMax         = 50
	PasswordMin     = 8
	SubjectMin      = 5
	SubjectMax      = 100
	MessageMin      = 10
	MessageMax      = 1000
	FeedbackMin     = 20
	FeedbackMax     = 500
	ImprovementsMin = 10
	ImprovementsMax = 300
	AgeMin          = 13
	AgeMax          = 120
	RatingMin       = 1
	RatingMax       = 5
	SatisfactionMin = 1
	SatisfactionMax = 10
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
)

// Message builders matching the UI copy.
func requiredMsg(field string) string {
	return fmt.Sprintf("%s is required", field)
}

func minLengthMsg(field string, min int) string {
	return fmt.Sprintf("%s must be at least %d characters", field, min)
}

func maxLengthMsg(field string, max int) string {
	return fmt.Sprintf("%s must be less than %d characters", field, max)
}

const (
	msgEmailInvalid     = "Please enter a valid email address"
	msgPhoneFormat      = "Phone must be in format (123) 456-7890"
	msgPasswordsMatch   = "Passwords must match"
	msgTermsRequired    = "You must agree to the terms and conditions"
	msgPasswordLower    = "Password must contain at least one lowercase letter"
	msgPasswordUpper    = "Password must contain at least one uppercase letter"
	msgPasswordDigit    = "Password must contain at least one number"
	msgPasswordSpecial  = "Password must contain at least one special character"
	msgConfirmPassword  = "Please confirm your password"
	msgEmailTaken       = "This email address is already registered"
	passwordSpecialsSet = "@$!%*?&"
)

// FieldRule is one declarative constraint: it inspects the whole value struct
// (cross-field rules need the sibling values) and returns an error message,
// or "" when satisfied.
type FieldRule[T any] struct {
	Field string
	Check func(values T) string
}

// Evaluate runs a rule table in order. The first failing rule per field wins;
// fields without a failing rule are absent from the result.
func Evaluate[T any](rules []FieldRule[T], values T) map[string]string {
	errs := make(map[string]string)
	for _, r := range rules {
		if _, seen := errs[r.Field]; seen {
			continue
		}
		if msg := r.Check(values); msg != "" {
			errs[r.Field] = msg
		}
	}
	return errs
}

// Shared predicates used by the rule tables.

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func trimmedLen(s string) int {
	return len(strings.TrimSpace(s))
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// checkName applies the shared name rules (required, trimmed length 2..50)
// with the given display label.
func checkName(value, label string) string {
	if isBlank(value) {
		return requiredMsg(label)
	}
	if trimmedLen(value) < NameMin {
		return minLengthMsg(label, NameMin)
	}
	if trimmedLen(value) > NameMax {
		return maxLengthMsg(label, NameMax)
	}
	return ""
}

// checkEmail applies the shared email rules (required, local@domain.tld shape).
func checkEmail(value string) string {
	if isBlank(value) {
		return requiredMsg("Email")
	}
	if !validEmail(value) {
		return msgEmailInvalid
	}
	return ""
}

// checkPassword applies the plain password rules (required, minimum length).
func checkPassword(value string) string {
	if value == "" {
		return requiredMsg("Password")
	}
	if len(value) < PasswordMin {
		return minLengthMsg("Password", PasswordMin)
	}
	return ""
}

// checkStrongPassword layers the character-class rules on top of checkPassword.
func checkStrongPassword(value string) string {
	if msg := checkPassword(value); msg != "" {
		return msg
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return msgPasswordLower
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return msgPasswordUpper
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return msgPasswordDigit
	}
	if !strings.ContainsAny(value, passwordSpecialsSet) {
		return msgPasswordSpecial
	}
	return ""
}

// IsWeakButValid reports whether a password clears the plain minimum but not
// the strong predicate. Used by the warnings pass.
func IsWeakButValid(password string) bool {
	return len(password) >= PasswordMin && !utils.IsStrongPassword(password)
}
