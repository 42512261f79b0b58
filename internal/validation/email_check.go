package validation

import (
	"context"
	"strings"
	"time"

	"github.com/formlab/formlab/internal/utils"
)

// takenEmails is the availability denylist used by the realtime email check.
// It deliberately differs from the ValidateEmail endpoint's list; the two
// checks were never consistent upstream and the divergence is preserved.
var takenEmails = []string{
	"admin@example.com",
	"test@test.com",
	"user@demo.com",
}

const defaultEmailCheckDelay = 500 * time.Millisecond

// EmailChecker simulates a server-side availability probe for an email
// address while the user is still typing.
type EmailChecker struct {
	// Delay is the simulated round trip; zero means the default 500ms.
	Delay time.Duration
}

// Check returns a non-empty message when the email is already registered.
// Empty input short-circuits without delay.
func (c EmailChecker) Check(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", nil
	}

	delay := c.Delay
	if delay == 0 {
		delay = defaultEmailCheckDelay
	}
	if err := utils.Sleep(ctx, delay); err != nil {
		return "", err
	}

	for _, taken := range takenEmails {
		if strings.EqualFold(email, taken) {
			return msgEmailTaken, nil
		}
	}
	return "", nil
}
