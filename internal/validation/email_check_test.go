package validation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailCheckerEmptyInputSkipsDelay(t *testing.T) {
	checker := EmailChecker{Delay: 5 * time.Second}

	start := time.Now()
	msg, err := checker.Check(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEmailCheckerTaken(t *testing.T) {
	checker := EmailChecker{Delay: time.Millisecond}

	for _, email := range []string{"admin@example.com", "ADMIN@EXAMPLE.COM", "test@test.com", "user@demo.com"} {
		msg, err := checker.Check(context.Background(), email)
		require.NoError(t, err)
		assert.Equal(t, "This email address is already registered", msg, "email %q", email)
	}
}

func TestEmailCheckerAvailable(t *testing.T) {
	checker := EmailChecker{Delay: time.Millisecond}

	msg, err := checker.Check(context.Background(), "fresh@example.com")
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestEmailCheckerCancelled(t *testing.T) {
	checker := EmailChecker{Delay: 5 * time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checker.Check(ctx, "fresh@example.com")
	assert.ErrorIs(t, err, context.Canceled)
}
