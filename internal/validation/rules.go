package validation

import (
	"github.com/formlab/formlab/types"
)

// Rule tables, one per form variant. Each is evaluated uniformly by Evaluate;
// the table order pins which message wins when several rules fail.

// LoginRules returns the login form rule table.
func LoginRules() []FieldRule[types.LoginForm] {
	return []FieldRule[types.LoginForm]{
		{Field: "email", Check: func(v types.LoginForm) string { return checkEmail(v.Email) }},
		{Field: "password", Check: func(v types.LoginForm) string { return checkPassword(v.Password) }},
	}
}

// RegistrationRules returns the registration form rule table.
func RegistrationRules() []FieldRule[types.RegistrationForm] {
	return []FieldRule[types.RegistrationForm]{
		{Field: "firstName", Check: func(v types.RegistrationForm) string { return checkName(v.FirstName, "Name") }},
		{Field: "lastName", Check: func(v types.RegistrationForm) string { return checkName(v.LastName, "Name") }},
		{Field: "email", Check: func(v types.RegistrationForm) string { return checkEmail(v.Email) }},
		{Field: "password", Check: func(v types.RegistrationForm) string { return checkStrongPassword(v.Password) }},
		{Field: "confirmPassword", Check: func(v types.RegistrationForm) string {
			if v.ConfirmPassword == "" {
				return msgConfirmPassword
			}
			if v.ConfirmPassword != v.Password {
				return msgPasswordsMatch
			}
			return ""
		}},
		{Field: "phone", Check: func(v types.RegistrationForm) string {
			if isBlank(v.Phone) {
				return requiredMsg("Phone number")
			}
			if !validPhone(v.Phone) {
				return msgPhoneFormat
			}
			return ""
		}},
		{Field: "agreeToTerms", Check: func(v types.RegistrationForm) string {
			if !v.AgreeToTerms {
				return msgTermsRequired
			}
			return ""
		}},
	}
}

// ContactRules returns the contact form rule table. Phone is optional and
// validated only when present; the attachment is checked server-side by the
// upload endpoint.
func ContactRules() []FieldRule[types.ContactForm] {
	return []FieldRule[types.ContactForm]{
		{Field: "name", Check: func(v types.ContactForm) string { return checkName(v.Name, "Name") }},
		{Field: "email", Check: func(v types.ContactForm) string { return checkEmail(v.Email) }},
		{Field: "phone", Check: func(v types.ContactForm) string {
			if isBlank(v.Phone) {
				return ""
			}
			if !validPhone(v.Phone) {
				return msgPhoneFormat
			}
			return ""
		}},
		{Field: "subject", Check: func(v types.ContactForm) string {
			if isBlank(v.Subject) {
				return requiredMsg("Subject")
			}
			if trimmedLen(v.Subject) < SubjectMin {
				return minLengthMsg("Subject", SubjectMin)
			}
			if trimmedLen(v.Subject) > SubjectMax {
				return maxLengthMsg("Subject", SubjectMax)
			}
			return ""
		}},
		{Field: "message", Check: func(v types.ContactForm) string {
			if isBlank(v.Message) {
				return requiredMsg("Message")
			}
			if trimmedLen(v.Message) < MessageMin {
				return minLengthMsg("Message", MessageMin)
			}
			if trimmedLen(v.Message) > MessageMax {
				return maxLengthMsg("Message", MessageMax)
			}
			return ""
		}},
	}
}

// SurveyRules returns the survey form rule table.
func SurveyRules() []FieldRule[types.SurveyForm] {
	return []FieldRule[types.SurveyForm]{
		{Field: "name", Check: func(v types.SurveyForm) string { return checkName(v.Name, "Name") }},
		{Field: "email", Check: func(v types.SurveyForm) string { return checkEmail(v.Email) }},
		{Field: "age", Check: func(v types.SurveyForm) string {
			if v.Age == 0 {
				return requiredMsg("Age")
			}
			if v.Age < AgeMin {
				return "You must be at least 13 years old"
			}
			if v.Age > AgeMax {
				return "Please enter a valid age"
			}
			return ""
		}},
		{Field: "experience", Check: func(v types.SurveyForm) string {
			if isBlank(v.Experience) {
				return requiredMsg("Experience level")
			}
			if !oneOf(v.Experience, types.ExperienceBeginner, types.ExperienceIntermediate, types.ExperienceAdvanced) {
				return "Please select your experience level"
			}
			return ""
		}},
		{Field: "technologies", Check: func(v types.SurveyForm) string {
			if len(v.Technologies) < 1 {
				return "Please select at least one technology"
			}
			return ""
		}},
		{Field: "feedback", Check: func(v types.SurveyForm) string {
			if isBlank(v.Feedback) {
				return requiredMsg("Feedback")
			}
			if trimmedLen(v.Feedback) < FeedbackMin {
				return "Please provide at least 20 characters of feedback"
			}
			if trimmedLen(v.Feedback) > FeedbackMax {
				return maxLengthMsg("Feedback", FeedbackMax)
			}
			return ""
		}},
		{Field: "rating", Check: func(v types.SurveyForm) string {
			if v.Rating == 0 {
				return requiredMsg("Rating")
			}
			if v.Rating < RatingMin || v.Rating > RatingMax {
				return "Rating must be between 1 and 5"
			}
			return ""
		}},
	}
}

// ProductFeedbackRules returns the product feedback form rule table.
func ProductFeedbackRules() []FieldRule[types.ProductFeedbackForm] {
	return []FieldRule[types.ProductFeedbackForm]{
		{Field: "productName", Check: func(v types.ProductFeedbackForm) string {
			if isBlank(v.ProductName) {
				return requiredMsg("Product name")
			}
			if trimmedLen(v.ProductName) < NameMin {
				return minLengthMsg("Product name", NameMin)
			}
			if trimmedLen(v.ProductName) > NameMax {
				return maxLengthMsg("Product name", NameMax)
			}
			return ""
		}},
		{Field: "category", Check: func(v types.ProductFeedbackForm) string {
			if isBlank(v.Category) {
				return requiredMsg("Category")
			}
			if !oneOf(v.Category, types.CategorySoftware, types.CategoryHardware, types.CategoryService, types.CategoryOther) {
				return "Please select a valid category"
			}
			return ""
		}},
		{Field: "usageFrequency", Check: func(v types.ProductFeedbackForm) string {
			if isBlank(v.UsageFrequency) {
				return requiredMsg("Usage frequency")
			}
			if !oneOf(v.UsageFrequency, types.FrequencyDaily, types.FrequencyWeekly, types.FrequencyMonthly, types.FrequencyRarely) {
				return "Please select usage frequency"
			}
			return ""
		}},
		{Field: "satisfaction", Check: func(v types.ProductFeedbackForm) string {
			if v.Satisfaction == 0 {
				return requiredMsg("Satisfaction rating")
			}
			if v.Satisfaction < SatisfactionMin || v.Satisfaction > SatisfactionMax {
				return "Satisfaction rating must be between 1 and 10"
			}
			return ""
		}},
		{Field: "features", Check: func(v types.ProductFeedbackForm) string {
			if len(v.Features) < 1 {
				return "Please select at least one feature"
			}
			return ""
		}},
		{Field: "improvements", Check: func(v types.ProductFeedbackForm) string {
			if isBlank(v.Improvements) {
				return "Improvement suggestions are required"
			}
			if trimmedLen(v.Improvements) < ImprovementsMin {
				return "Please provide at least 10 characters for improvements"
			}
			if trimmedLen(v.Improvements) > ImprovementsMax {
				return maxLengthMsg("Improvements", ImprovementsMax)
			}
			return ""
		}},
		{Field: "recommendToFriend", Check: func(v types.ProductFeedbackForm) string {
			// Presence, not value, is the constraint.
			if v.RecommendToFriend == nil {
				return "Please indicate if you would recommend this product"
			}
			return ""
		}},
	}
}

// Typed entry points used by the form runtime.

func ValidateLogin(v types.LoginForm) map[string]string {
	return Evaluate(LoginRules(), v)
}

func ValidateRegistration(v types.RegistrationForm) map[string]string {
	return Evaluate(RegistrationRules(), v)
}

func ValidateContact(v types.ContactForm) map[string]string {
	return Evaluate(ContactRules(), v)
}

func ValidateSurvey(v types.SurveyForm) map[string]string {
	return Evaluate(SurveyRules(), v)
}

func ValidateProductFeedback(v types.ProductFeedbackForm) map[string]string {
	return Evaluate(ProductFeedbackRules(), v)
}

// Validate dispatches on the concrete value type. Unknown types validate
// clean; the typed entry points above are preferred.
func Validate(values any) map[string]string {
	switch v := values.(type) {
	case types.LoginForm:
		return ValidateLogin(v)
	case types.RegistrationForm:
		return ValidateRegistration(v)
	case types.ContactForm:
		return ValidateContact(v)
	case types.SurveyForm:
		return ValidateSurvey(v)
	case types.ProductFeedbackForm:
		return ValidateProductFeedback(v)
	default:
		return map[string]string{}
	}
}
