package main

import (
	"context"
	"sync"

	"github.com/formlab/formlab/config"
	"github.com/formlab/formlab/internal/auth"
	"github.com/formlab/formlab/internal/events"
	"github.com/formlab/formlab/internal/store"
	"github.com/formlab/formlab/internal/validation"
	"github.com/formlab/formlab/logger"
	"github.com/formlab/formlab/models/form"
	"github.com/formlab/formlab/services"
	"github.com/formlab/formlab/types"
)

// Walks every form through the submission workflow against the simulated
// backend, printing the toast stream as a UI layer would render it.
func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	userStore := store.NewSeededUserStore()
	broker := events.NewBroker(events.Config{EventBufferSize: cfg.Events.BufferSize})
	defer broker.Close()

	minter := auth.NewTokenMinter(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	api := services.NewApiService(userStore, cfg.Simulator, minter)
	submitter := services.NewSubmissionService(broker)
	health := services.NewHealthService(api, userStore, cfg.Version)

	// Render toasts until the broker closes.
	toastCh, unsubscribe := broker.Subscribe()
	defer unsubscribe()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for event := range toastCh {
			log.Infow("toast", "type", event.Type, "message", event.Message)
		}
	}()

	ctx := context.Background()

	report := health.CheckHealth(ctx)
	log.Infow("Health check", "status", report.Status, "version", report.Version)

	runLoginDemo(ctx, submitter, api)
	runRegistrationDemo(ctx, submitter, api)
	runContactDemo(ctx, submitter, api)
	runSurveyDemo(ctx, submitter, api)
	runProductFeedbackDemo(ctx, submitter, api)

	broker.Close()
	wg.Wait()
}

func runLoginDemo(ctx context.Context, submitter *services.SubmissionService, api *services.ApiService) {
	st := form.NewState(types.LoginForm{}, validation.ValidateLogin, nil)

	// First attempt submits an empty form so validation blocks it.
	_ = services.Submit(ctx, submitter, st, api.Login, "Login")

	st.Update(func(f *types.LoginForm) {
		f.Email = "user@example.com"
		f.Password = "password123"
		f.RememberMe = true
	})
	_ = services.Submit(ctx, submitter, st, api.Login, "Login")
}

func runRegistrationDemo(ctx context.Context, submitter *services.SubmissionService, api *services.ApiService) {
	st := form.NewState(types.RegistrationForm{},
		validation.ValidateRegistration, validation.RegistrationWarnings)

	// Realtime availability probe, as a field's on-blur handler would run it.
	checker := validation.EmailChecker{}
	if msg, err := checker.Check(ctx, "grace@navy.mil"); err == nil && msg != "" {
		st.SetFieldError("email", msg)
	}

	st.Update(func(f *types.RegistrationForm) {
		f.FirstName = "Grace"
		f.LastName = "Hopper"
		f.Email = "grace@navy.mil"
		f.Phone = "(555) 867-5309"
		f.Password = "C0mpiler@1952"
		f.ConfirmPassword = "C0mpiler@1952"
		f.AgreeToTerms = true
	})
	_ = services.Submit(ctx, submitter, st, api.Register, "Registration")
}

func runContactDemo(ctx context.Context, submitter *services.SubmissionService, api *services.ApiService) {
	st := form.NewState(types.ContactForm{},
		validation.ValidateContact, validation.ContactWarnings)

	st.Update(func(f *types.ContactForm) {
		f.Name = "Ada Lovelace"
		f.Email = "ada@example.org"
		f.Subject = "Question about the analytical engine"
		f.Message = "I have some notes on your latest release that I would like to discuss."
	})
	_ = services.Submit(ctx, submitter, st, api.SubmitContact, "Contact")
}

func runSurveyDemo(ctx context.Context, submitter *services.SubmissionService, api *services.ApiService) {
	st := form.NewState(types.SurveyForm{},
		validation.ValidateSurvey, validation.SurveyWarnings)

	st.Update(func(f *types.SurveyForm) {
		f.Name = "Alan Turing"
		f.Email = "alan@bletchley.org"
		f.Age = 34
		f.Experience = types.ExperienceAdvanced
		f.Technologies = []string{"Go", "PostgreSQL", "Redis"}
		f.Rating = 4
		f.Feedback = "Solid product, the new release fixed my main complaints."
	})
	_ = services.Submit(ctx, submitter, st, api.SubmitSurvey, "Survey")
}

func runProductFeedbackDemo(ctx context.Context, submitter *services.SubmissionService, api *services.ApiService) {
	st := form.NewState(types.ProductFeedbackForm{}, validation.ValidateProductFeedback, nil)

	recommend := true
	st.Update(func(f *types.ProductFeedbackForm) {
		f.ProductName = "Widget Pro"
		f.Category = types.CategorySoftware
		f.UsageFrequency = types.FrequencyDaily
		f.Satisfaction = 8
		f.Improvements = "Dark mode would be nice, and faster exports."
		f.RecommendToFriend = &recommend
	})
	_ = services.Submit(ctx, submitter, st, api.SubmitProductFeedback, "Product Feedback")
}
