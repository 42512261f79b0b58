package services

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/formlab/formlab/config"
	"github.com/formlab/formlab/internal/auth"
	"github.com/formlab/formlab/internal/store"
	"github.com/formlab/formlab/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func testSimulatorConfig(failureRate float64) config.SimulatorConfig {
	return config.SimulatorConfig{
		BaseDelay:          time.Second,
		JitterMax:          500 * time.Millisecond,
		ValidateEmailDelay: 300 * time.Millisecond,
		HealthCheckDelay:   100 * time.Millisecond,
		FailureRate:        failureRate,
		MaxUploadBytes:     5 * 1024 * 1024,
	}
}

func newTestApiService(t *testing.T, failureRate float64) *ApiService {
	t.Helper()
	return NewApiService(
		store.NewSeededUserStore(),
		testSimulatorConfig(failureRate),
		auth.NewTokenMinter("test-secret", time.Hour),
		WithSleep(noSleep),
		WithRand(rand.New(rand.NewSource(1))),
	)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin credentials resolve to stored admin", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.Login(ctx, types.LoginForm{Email: "admin@example.com", Password: "admin123"})
		require.NoError(t, err)
		require.True(t, resp.Success)
		require.NotNil(t, resp.Data)
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, types.RoleAdmin, resp.Data.User.Role)
		assert.Equal(t, "Admin User", resp.Data.User.Name)
		assert.NotEmpty(t, resp.Data.Token)
	})

	t.Run("user credentials synthesize a fresh account", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.Login(ctx, types.LoginForm{Email: "user@example.com", Password: "password123"})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, types.RoleUser, resp.Data.User.Role)
		assert.Equal(t, "Demo User", resp.Data.User.Name)

		again, err := svc.Login(ctx, types.LoginForm{Email: "user@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEqual(t, resp.Data.User.ID, again.Data.User.ID)
	})

	t.Run("wrong password fails on both fields", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.Login(ctx, types.LoginForm{Email: "admin@example.com", Password: "wrong"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
		fieldErrs := resp.FieldErrors()
		assert.Equal(t, "Invalid credentials", fieldErrs["email"])
		assert.Equal(t, "Invalid credentials", fieldErrs["password"])
	})

	t.Run("injected failure", func(t *testing.T) {
		svc := newTestApiService(t, 1)
		resp, err := svc.Login(ctx, types.LoginForm{Email: "admin@example.com", Password: "admin123"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Network error occurred. Please try again.", resp.Message)
		assert.Empty(t, resp.Errors)
	})

	t.Run("cancelled context surfaces as error", func(t *testing.T) {
		svc := NewApiService(
			store.NewSeededUserStore(),
			testSimulatorConfig(0),
			auth.NewTokenMinter("test-secret", time.Hour),
			WithRand(rand.New(rand.NewSource(1))),
		)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.Login(cancelled, types.LoginForm{Email: "admin@example.com", Password: "admin123"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates user", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.Register(ctx, types.RegistrationForm{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane@corp.com",
			Phone:     "(555) 123-4567",
			Password:  "Str0ng@pass",
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "Registration successful! Welcome aboard!", resp.Message)
		assert.Equal(t, "Jane Smith", resp.Data.Name)
		assert.NotEmpty(t, resp.Data.ID)

		exists, err := svc.store.EmailExists(ctx, "jane@corp.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.Register(ctx, types.RegistrationForm{
			FirstName: "John",
			LastName:  "Again",
			Email:     "john@example.com",
		})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Registration failed", resp.Message)
		assert.Equal(t, "Email address is already registered", resp.FieldErrors()["email"])
	})

	t.Run("injected failure", func(t *testing.T) {
		svc := newTestApiService(t, 1)
		resp, err := svc.Register(ctx, types.RegistrationForm{Email: "new@corp.com"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Registration failed due to server error. Please try again.", resp.Message)
	})
}

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("success greets by name", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.SubmitContact(ctx, types.ContactForm{
			Name:    "Alice",
			Subject: "Question about pricing",
			Message: "How much does the pro plan cost per seat?",
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Thank you Alice! We'll get back to you within 24 hours.", resp.Message)
	})

	t.Run("spam content rejected", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		for _, message := range []string{
			"This is definitely not SPAM I promise",
			"Great advertisement opportunity for your site",
		} {
			resp, err := svc.SubmitContact(ctx, types.ContactForm{Name: "Bob", Message: message})
			require.NoError(t, err)
			assert.False(t, resp.Success, message)
			assert.Equal(t, "Message appears to be spam", resp.Message)
			assert.Equal(t, "Message content not allowed", resp.FieldErrors()["message"])
		}
	})

	t.Run("injected failure", func(t *testing.T) {
		svc := newTestApiService(t, 1)
		resp, err := svc.SubmitContact(ctx, types.ContactForm{Name: "Alice", Message: "Hello there friends"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Failed to send message. Please try again later.", resp.Message)
	})
}

func TestSubmitSurvey(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.SubmitSurvey(ctx, types.SurveyForm{
			Age:        30,
			Experience: types.ExperienceIntermediate,
			Rating:     8,
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Thank you for your feedback! Your response has been recorded.", resp.Message)
	})

	t.Run("injected failure", func(t *testing.T) {
		svc := newTestApiService(t, 1)
		resp, err := svc.SubmitSurvey(ctx, types.SurveyForm{})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Survey submission failed. Please try again.", resp.Message)
	})
}

func TestSubmitProductFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.SubmitProductFeedback(ctx, types.ProductFeedbackForm{
			ProductName:  "Widget Pro",
			Satisfaction: 9,
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Thank you for your product feedback! We appreciate your input.", resp.Message)
	})

	t.Run("injected failure", func(t *testing.T) {
		svc := newTestApiService(t, 1)
		resp, err := svc.SubmitProductFeedback(ctx, types.ProductFeedbackForm{})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Product feedback submission failed. Please try again.", resp.Message)
	})
}

func TestValidateEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("known emails unavailable", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		for _, email := range []string{"admin@example.com", "user@example.com", "test@test.com", "ADMIN@EXAMPLE.COM"} {
			resp, err := svc.ValidateEmail(ctx, email)
			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.False(t, resp.Data.Available, email)
			assert.Equal(t, "Email is already registered", resp.Message)
		}
	})

	t.Run("unknown email available", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.ValidateEmail(ctx, "fresh@corp.com")
		require.NoError(t, err)
		assert.True(t, resp.Data.Available)
		assert.Equal(t, "Email is available", resp.Message)
	})

	t.Run("exempt from failure injection", func(t *testing.T) {
		svc := newTestApiService(t, 1)
		resp, err := svc.ValidateEmail(ctx, "fresh@corp.com")
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})
}

func TestUploadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("plain text accepted", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.UploadFile(ctx, types.FileUpload{
			Name:    "notes.txt",
			Size:    11,
			Content: []byte("hello world"),
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "File uploaded successfully", resp.Message)
		assert.True(t, strings.HasPrefix(resp.Data.URL, "https://example.com/uploads/"))
		assert.True(t, strings.HasSuffix(resp.Data.URL, "-notes.txt"))
		assert.NotEmpty(t, resp.Data.ID)
	})

	t.Run("png accepted", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
		resp, err := svc.UploadFile(ctx, types.FileUpload{Name: "pic.png", Size: int64(len(png)), Content: png})
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		resp, err := svc.UploadFile(ctx, types.FileUpload{
			Name:    "big.txt",
			Size:    6 * 1024 * 1024,
			Content: []byte("too big"),
		})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "File size exceeds 5MB limit", resp.Message)
		assert.Equal(t, "File too large", resp.FieldErrors()["attachFile"])
	})

	t.Run("disallowed type rejected", func(t *testing.T) {
		svc := newTestApiService(t, 0)
		zip := []byte{'P', 'K', 0x03, 0x04, 0, 0, 0, 0}
		resp, err := svc.UploadFile(ctx, types.FileUpload{Name: "archive.zip", Size: int64(len(zip)), Content: zip})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "File type not allowed", resp.Message)
		assert.Equal(t, "Only JPEG, PNG, PDF, and TXT files are allowed", resp.FieldErrors()["attachFile"])
	})

	t.Run("injected failure", func(t *testing.T) {
		svc := newTestApiService(t, 1)
		resp, err := svc.UploadFile(ctx, types.FileUpload{Name: "notes.txt", Size: 5, Content: []byte("hello")})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Upload failed. Please try again.", resp.Message)
	})
}

func TestHealthCheck(t *testing.T) {
	svc := newTestApiService(t, 1)
	resp, err := svc.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "API is healthy", resp.Message)
}
