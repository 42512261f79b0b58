package types

// FormType identifies one of the demo form variants.
type FormType string

const (
	FormTypeLogin           FormType = "login"
	FormTypeRegistration    FormType = "registration"
	FormTypeContact         FormType = "contact"
	FormTypeSurvey          FormType = "survey"
	FormTypeProductFeedback FormType = "product-feedback"
)

// Experience levels accepted by the survey form.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// Product categories accepted by the product feedback form.
const (
	CategorySoftware = "software"
	CategoryHardware = "hardware"
	CategoryService  = "service"
	CategoryOther    = "other"
)

// Usage frequencies accepted by the product feedback form.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyRarely  = "rarely"
)

// LoginForm holds the login form values.
type LoginForm struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// RegistrationForm holds the registration form values.
type RegistrationForm struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
	Newsletter      bool   `json:"newsletter"`
}

// ContactForm holds the contact form values. Phone and Attachment are optional.
type ContactForm struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Subject    string      `json:"subject"`
	Message    string      `json:"message"`
	Attachment *FileUpload `json:"attachFile,omitempty"`
}

// SurveyForm holds the survey form values.
type SurveyForm struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Age          int      `json:"age"`
	Experience   string   `json:"experience"`
	Technologies []string `json:"technologies"`
	Feedback     string   `json:"feedback"`
	Rating       int      `json:"rating"`
}

// ProductFeedbackForm holds the product feedback form values.
// RecommendToFriend uses a pointer so that "not answered" is distinguishable
// from an explicit "no".
type ProductFeedbackForm struct {
	ProductName       string   `json:"productName"`
	Category          string   `json:"category"`
	UsageFrequency    string   `json:"usageFrequency"`
	Satisfaction      int      `json:"satisfaction"`
	Features          []string `json:"features"`
	Improvements      string   `json:"improvements"`
	RecommendToFriend *bool    `json:"recommendToFriend"`
}

// FileUpload carries an in-memory file attachment for the simulated upload endpoint.
type FileUpload struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Content []byte `json:"-"`
}
