package validation

import (
	"strings"

	"github.com/formlab/formlab/types"
)

// Warning thresholds. Warnings are advisory only and never block submission;
// a field's warning is displayed only when it has no error.
const (
	shortSubjectThreshold = 10
	targetAgeMin          = 18
	targetAgeMax          = 65
	beginnerTechLimit     = 5
	lowRatingThreshold    = 3
)

// commonEmailDomains are the providers the deliverability warning trusts.
var commonEmailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"outlook.com": true,
	"hotmail.com": true,
	"icloud.com":  true,
	"example.com": true,
}

const (
	warnWeakPassword  = "Consider adding uppercase letters, numbers, and special characters for better security"
	warnEmailDomain   = "This email domain looks uncommon - double-check for typos"
	warnMissingPhone  = "Adding a phone number helps us get back to you faster"
	warnShortSubject  = "A more descriptive subject helps us route your message"
	warnAgeRange      = "This survey is aimed at ages 18-65, but your feedback is still welcome"
	warnTechFocus     = "Focusing on fewer technologies is usually more effective when starting out"
	warnLowRating     = "Sorry to hear that! Please consider sharing what went wrong in your feedback"
)

// uncommonEmailDomain reports whether the address has a valid shape but a
// domain outside the common-provider list.
func uncommonEmailDomain(email string) bool {
	if !validEmail(email) {
		return false
	}
	at := strings.LastIndex(email, "@")
	domain := strings.ToLower(email[at+1:])
	return !commonEmailDomains[domain]
}

// RegistrationWarnings returns advisory messages for the registration form.
func RegistrationWarnings(v types.RegistrationForm) map[string]string {
	warnings := make(map[string]string)
	if IsWeakButValid(v.Password) {
		warnings["password"] = warnWeakPassword
	}
	if uncommonEmailDomain(v.Email) {
		warnings["email"] = warnEmailDomain
	}
	return warnings
}

// ContactWarnings returns advisory messages for the contact form.
func ContactWarnings(v types.ContactForm) map[string]string {
	warnings := make(map[string]string)
	if uncommonEmailDomain(v.Email) {
		warnings["email"] = warnEmailDomain
	}
	if isBlank(v.Phone) {
		warnings["phone"] = warnMissingPhone
	}
	if !isBlank(v.Subject) && trimmedLen(v.Subject) >= SubjectMin && trimmedLen(v.Subject) < shortSubjectThreshold {
		warnings["subject"] = warnShortSubject
	}
	return warnings
}

// SurveyWarnings returns advisory messages for the survey form.
func SurveyWarnings(v types.SurveyForm) map[string]string {
	warnings := make(map[string]string)
	if uncommonEmailDomain(v.Email) {
		warnings["email"] = warnEmailDomain
	}
	if v.Age >= AgeMin && v.Age <= AgeMax && (v.Age < targetAgeMin || v.Age > targetAgeMax) {
		warnings["age"] = warnAgeRange
	}
	if v.Experience == types.ExperienceBeginner && len(v.Technologies) > beginnerTechLimit {
		warnings["technologies"] = warnTechFocus
	}
	if v.Rating >= RatingMin && v.Rating < lowRatingThreshold {
		warnings["rating"] = warnLowRating
	}
	return warnings
}

// Warnings dispatches on form type. Only registration, contact, and survey
// define warning rules; every other form type returns an empty map.
func Warnings(formType types.FormType, values any) map[string]string {
	switch formType {
	case types.FormTypeRegistration:
		if v, ok := values.(types.RegistrationForm); ok {
			return RegistrationWarnings(v)
		}
	case types.FormTypeContact:
		if v, ok := values.(types.ContactForm); ok {
			return ContactWarnings(v)
		}
	case types.FormTypeSurvey:
		if v, ok := values.(types.SurveyForm); ok {
			return SurveyWarnings(v)
		}
	}
	return map[string]string{}
}
