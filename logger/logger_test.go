package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func init() {
	IsTest = true
}

func TestMaskSensitiveString(t *testing.T) {
	assert.Equal(t, "", MaskSensitiveString("", 2, 2))
	assert.Equal(t, "***", MaskSensitiveString("abc", 2, 2))
	assert.Equal(t, "ab...ij", MaskSensitiveString("abcdefghij", 2, 2))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "", MaskEmail(""))
	assert.Equal(t, "jo...e@example.com", MaskEmail("john.doe@example.com"))
	// Invalid format falls back to generic masking.
	assert.Equal(t, "no...il", MaskEmail("not-an-email"))
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "", MaskToken(""))
	assert.Equal(t, "*********", MaskToken("shorttok1"))

	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.payload.signature"
	masked := MaskToken(token)
	assert.Equal(t, "eyJ...ure", masked)
	assert.NotContains(t, masked, "payload")
}
