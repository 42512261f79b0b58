// Package utils holds small pure helpers shared by the validation layer and
// the simulated API: phone formatting, password strength, id generation, and
// a cancellation-aware sleep.
package utils

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const passwordSpecials = "@$!%*?&"

// FormatPhone formats an input containing exactly ten digits as (DDD) DDD-DDDD.
// Any other input is returned unchanged; formatting never fails.
func FormatPhone(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 10 {
		return input
	}
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}

// IsStrongPassword reports whether a password is at least eight characters and
// contains a lowercase letter, an uppercase letter, a digit, and one of @$!%*?&.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// GenerateID creates a unique identifier for users, uploads, and toast handles.
func GenerateID() string {
	return uuid.New().String()
}

// RandomString produces a random string of the specified length (max 36).
func RandomString(length int) string {
	return uuid.New().String()[:length]
}

// Sleep blocks for d or until ctx is cancelled, returning the context error
// in the latter case. Simulated endpoints use it for artificial latency.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
