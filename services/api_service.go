package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/formlab/formlab/config"
	apperrors "github.com/formlab/formlab/errors"
	"github.com/formlab/formlab/internal/auth"
	"github.com/formlab/formlab/internal/store"
	"github.com/formlab/formlab/internal/utils"
	"github.com/formlab/formlab/logger"
	"github.com/formlab/formlab/types"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// Hardcoded demo credentials the simulated login resolves against.
const (
	demoAdminEmail    = "admin@example.com"
	demoAdminPassword = "admin123"
	demoUserEmail     = "user@example.com"
	demoUserPassword  = "password123"
)

// existingEmails is the ValidateEmail availability denylist. It differs from
// the realtime checker's list in the validation package (user@example.com vs
// user@demo.com); the inconsistency is inherited and intentional.
var existingEmails = []string{
	"admin@example.com",
	"user@example.com",
	"test@test.com",
}

// spamMarkers trip the contact endpoint's content filter.
var spamMarkers = []string{"spam", "advertisement"}

// allowedUploadTypes are the MIME types the upload endpoint accepts. The type
// is sniffed from content, never trusted from the file name.
var allowedUploadTypes = []string{"image/jpeg", "image/png", "application/pdf", "text/plain"}

// ApiService simulates a remote backend. Every endpoint first waits a
// randomized network delay, then (for the submit-style endpoints) rolls an
// independent failure-injection gate before any business rule runs. Returned
// Go errors mean the call itself broke (context cancellation); modeled
// failures live in the response envelope.
type ApiService struct {
	log    *zap.SugaredLogger
	store  store.UserStore
	cfg    config.SimulatorConfig
	minter *auth.TokenMinter

	mu  sync.Mutex
	rng *rand.Rand

	sleep func(ctx context.Context, d time.Duration) error

	metrics *metrics
}

// ApiOption customizes an ApiService, mainly for tests.
type ApiOption func(*ApiService)

// WithRand injects a seeded random source so tests can force both sides of
// the failure gate deterministically.
func WithRand(rng *rand.Rand) ApiOption {
	return func(s *ApiService) { s.rng = rng }
}

// WithSleep replaces the latency sleeper; tests pass a no-op.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) ApiOption {
	return func(s *ApiService) { s.sleep = sleep }
}

// NewApiService creates the simulated API over the given user store.
func NewApiService(userStore store.UserStore, cfg config.SimulatorConfig, minter *auth.TokenMinter, opts ...ApiOption) *ApiService {
	s := &ApiService{
		log:     logger.GetLogger().Named("api_service"),
		store:   userStore,
		cfg:     cfg,
		minter:  minter,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:   utils.Sleep,
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// simulateNetworkDelay waits the base delay plus uniform jitter.
func (s *ApiService) simulateNetworkDelay(ctx context.Context) error {
	delay := s.cfg.BaseDelay
	if s.cfg.JitterMax > 0 {
		s.mu.Lock()
		jitter := time.Duration(s.rng.Int63n(int64(s.cfg.JitterMax) + 1))
		s.mu.Unlock()
		delay += jitter
	}
	return s.sleep(ctx, delay)
}

// shouldSimulateError rolls the transient-failure gate.
func (s *ApiService) shouldSimulateError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < s.cfg.FailureRate
}

// Login checks the demo credential pairs. The admin pair resolves to the
// stored admin record; the user pair synthesizes a fresh account each call.
// Any other combination fails with identical errors on both fields - the
// endpoint deliberately does not reveal which one was wrong.
func (s *ApiService) Login(ctx context.Context, credentials types.LoginForm) (types.ApiResponse[types.Session], error) {
	if err := s.simulateNetworkDelay(ctx); err != nil {
		return types.ApiResponse[types.Session]{}, err
	}

	if s.shouldSimulateError() {
		s.metrics.apiCalls.WithLabelValues("login", outcomeInjected).Inc()
		return types.Fail[types.Session]("Network error occurred. Please try again."), nil
	}

	var user *types.User
	switch {
	case credentials.Email == demoAdminEmail && credentials.Password == demoAdminPassword:
		stored, err := s.store.GetUserByEmail(ctx, demoAdminEmail)
		if errors.Is(err, store.ErrNotFound) {
			return types.ApiResponse[types.Session]{}, apperrors.NotFound("User", demoAdminEmail)
		}
		if err != nil {
			return types.ApiResponse[types.Session]{}, apperrors.Wrap(err, apperrors.ServerError, "Failed to load admin account")
		}
		user = stored
	case credentials.Email == demoUserEmail && credentials.Password == demoUserPassword:
		user = &types.User{
			ID:    utils.GenerateID(),
			Name:  "Demo User",
			Email: credentials.Email,
			Role:  types.RoleUser,
		}
	default:
		s.log.Debugw("Login rejected", "email", logger.MaskEmail(credentials.Email))
		s.metrics.apiCalls.WithLabelValues("login", outcomeRejected).Inc()
		return types.Fail[types.Session]("Invalid email or password",
			types.ErrorMessage("email", "Invalid credentials"),
			types.ErrorMessage("password", "Invalid credentials"),
		), nil
	}

	token, err := s.minter.Mint(*user)
	if err != nil {
		return types.ApiResponse[types.Session]{}, err
	}

	s.log.Infow("Login successful",
		"email", logger.MaskEmail(user.Email),
		"role", user.Role,
		"token", logger.MaskToken(token),
	)
	s.metrics.apiCalls.WithLabelValues("login", outcomeOK).Inc()
	return types.OK(types.Session{Token: token, User: *user}, "Login successful"), nil
}

// Register creates a user unless the email is already taken.
func (s *ApiService) Register(ctx context.Context, data types.RegistrationForm) (types.ApiResponse[types.User], error) {
	if err := s.simulateNetworkDelay(ctx); err != nil {
		return types.ApiResponse[types.User]{}, err
	}

	if s.shouldSimulateError() {
		s.metrics.apiCalls.WithLabelValues("register", outcomeInjected).Inc()
		return types.Fail[types.User]("Registration failed due to server error. Please try again."), nil
	}

	user, err := s.store.CreateUser(ctx, types.User{
		Name:  data.FirstName + " " + data.LastName,
		Email: data.Email,
		Phone: data.Phone,
		Role:  types.RoleUser,
	})
	if errors.Is(err, store.ErrEmailExists) {
		s.metrics.apiCalls.WithLabelValues("register", outcomeRejected).Inc()
		return types.Fail[types.User]("Registration failed",
			types.ErrorMessage("email", "Email address is already registered"),
		), nil
	}
	if err != nil {
		return types.ApiResponse[types.User]{}, apperrors.Wrap(err, apperrors.ServerError, "Failed to create user")
	}

	s.log.Infow("User registered", "email", logger.MaskEmail(user.Email), "id", user.ID)
	s.metrics.apiCalls.WithLabelValues("register", outcomeOK).Inc()
	return types.OK(user, "Registration successful! Welcome aboard!"), nil
}

// SubmitContact accepts a contact message unless the content filter trips.
func (s *ApiService) SubmitContact(ctx context.Context, data types.ContactForm) (types.ApiResponse[types.Empty], error) {
	if err := s.simulateNetworkDelay(ctx); err != nil {
		return types.ApiResponse[types.Empty]{}, err
	}

	if s.shouldSimulateError() {
		s.metrics.apiCalls.WithLabelValues("submit_contact", outcomeInjected).Inc()
		return types.Fail[types.Empty]("Failed to send message. Please try again later."), nil
	}

	lower := strings.ToLower(data.Message)
	for _, marker := range spamMarkers {
		if strings.Contains(lower, marker) {
			s.metrics.apiCalls.WithLabelValues("submit_contact", outcomeRejected).Inc()
			return types.Fail[types.Empty]("Message appears to be spam",
				types.ErrorMessage("message", "Message content not allowed"),
			), nil
		}
	}

	s.log.Infow("Contact form submitted", "subject", data.Subject)
	s.metrics.apiCalls.WithLabelValues("submit_contact", outcomeOK).Inc()
	return types.OKMessage[types.Empty](
		fmt.Sprintf("Thank you %s! We'll get back to you within 24 hours.", data.Name)), nil
}

// SubmitSurvey records a survey response. No business rules beyond the gate.
func (s *ApiService) SubmitSurvey(ctx context.Context, data types.SurveyForm) (types.ApiResponse[types.Empty], error) {
	if err := s.simulateNetworkDelay(ctx); err != nil {
		return types.ApiResponse[types.Empty]{}, err
	}

	if s.shouldSimulateError() {
		s.metrics.apiCalls.WithLabelValues("submit_survey", outcomeInjected).Inc()
		return types.Fail[types.Empty]("Survey submission failed. Please try again."), nil
	}

	s.log.Infow("Survey submitted", "experience", data.Experience, "rating", data.Rating)
	s.metrics.apiCalls.WithLabelValues("submit_survey", outcomeOK).Inc()
	return types.OKMessage[types.Empty]("Thank you for your feedback! Your response has been recorded."), nil
}

// SubmitProductFeedback records product feedback. No business rules beyond
// the gate.
func (s *ApiService) SubmitProductFeedback(ctx context.Context, data types.ProductFeedbackForm) (types.ApiResponse[types.Empty], error) {
	if err := s.simulateNetworkDelay(ctx); err != nil {
		return types.ApiResponse[types.Empty]{}, err
	}

	if s.shouldSimulateError() {
		s.metrics.apiCalls.WithLabelValues("submit_product_feedback", outcomeInjected).Inc()
		return types.Fail[types.Empty]("Product feedback submission failed. Please try again."), nil
	}

	s.log.Infow("Product feedback submitted", "product", data.ProductName, "satisfaction", data.Satisfaction)
	s.metrics.apiCalls.WithLabelValues("submit_product_feedback", outcomeOK).Inc()
	return types.OKMessage[types.Empty]("Thank you for your product feedback! We appreciate your input."), nil
}

// ValidateEmail is the lightweight availability probe used while typing.
// Shorter fixed delay, no failure gate.
func (s *ApiService) ValidateEmail(ctx context.Context, email string) (types.ApiResponse[types.EmailAvailability], error) {
	if err := s.sleep(ctx, s.cfg.ValidateEmailDelay); err != nil {
		return types.ApiResponse[types.EmailAvailability]{}, err
	}

	available := true
	for _, existing := range existingEmails {
		if strings.EqualFold(email, existing) {
			available = false
			break
		}
	}

	message := "Email is available"
	if !available {
		message = "Email is already registered"
	}
	s.metrics.apiCalls.WithLabelValues("validate_email", outcomeOK).Inc()
	return types.OK(types.EmailAvailability{Available: available}, message), nil
}

// UploadFile accepts an attachment under the size limit whose sniffed MIME
// type is allowed, returning a synthesized URL and id.
func (s *ApiService) UploadFile(ctx context.Context, file types.FileUpload) (types.ApiResponse[types.UploadResult], error) {
	if err := s.simulateNetworkDelay(ctx); err != nil {
		return types.ApiResponse[types.UploadResult]{}, err
	}

	if s.shouldSimulateError() {
		s.metrics.apiCalls.WithLabelValues("upload_file", outcomeInjected).Inc()
		return types.Fail[types.UploadResult]("Upload failed. Please try again."), nil
	}

	if file.Size > s.cfg.MaxUploadBytes {
		s.metrics.apiCalls.WithLabelValues("upload_file", outcomeRejected).Inc()
		return types.Fail[types.UploadResult]("File size exceeds 5MB limit",
			types.ErrorMessage("attachFile", "File too large"),
		), nil
	}

	mtype := mimetype.Detect(file.Content)
	allowed := false
	for _, t := range allowedUploadTypes {
		if mtype.Is(t) {
			allowed = true
			break
		}
	}
	if !allowed {
		s.log.Debugw("Upload rejected", "name", file.Name, "detected_type", mtype.String())
		s.metrics.apiCalls.WithLabelValues("upload_file", outcomeRejected).Inc()
		return types.Fail[types.UploadResult]("File type not allowed",
			types.ErrorMessage("attachFile", "Only JPEG, PNG, PDF, and TXT files are allowed"),
		), nil
	}

	result := types.UploadResult{
		URL: fmt.Sprintf("https://example.com/uploads/%s-%s", utils.GenerateID(), file.Name),
		ID:  utils.GenerateID(),
	}
	s.metrics.apiCalls.WithLabelValues("upload_file", outcomeOK).Inc()
	return types.OK(result, "File uploaded successfully"), nil
}

// HealthCheck always succeeds after a short fixed delay.
func (s *ApiService) HealthCheck(ctx context.Context) (types.ApiResponse[types.Empty], error) {
	if err := s.sleep(ctx, s.cfg.HealthCheckDelay); err != nil {
		return types.ApiResponse[types.Empty]{}, err
	}

	s.metrics.apiCalls.WithLabelValues("health_check", outcomeOK).Inc()
	return types.OKMessage[types.Empty]("API is healthy"), nil
}
