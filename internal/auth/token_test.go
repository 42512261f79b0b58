package auth

import (
	"testing"
	"time"

	"github.com/formlab/formlab/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoUser = types.User{
	ID:    "2",
	Name:  "Admin User",
	Email: "admin@example.com",
	Role:  types.RoleAdmin,
}

func TestMintAndParse(t *testing.T) {
	m := NewTokenMinter("unit-test-secret-that-is-long-enough", time.Hour)

	token, err := m.Mint(demoUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "2", claims.Subject)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, types.RoleAdmin, claims.Role)
	assert.Equal(t, "formlab", claims.Issuer)
}

func TestMintedTokensAreUnique(t *testing.T) {
	m := NewTokenMinter("unit-test-secret-that-is-long-enough", time.Hour)
	frozen := time.Now()
	m.now = func() time.Time { return frozen }

	first, err := m.Mint(demoUser)
	require.NoError(t, err)
	second, err := m.Mint(demoUser)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	c1, err := m.Parse(first)
	require.NoError(t, err)
	c2, err := m.Parse(second)
	require.NoError(t, err)
	assert.NotEmpty(t, c1.ID)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m1 := NewTokenMinter("secret-one-that-is-long-enough!!", time.Hour)
	m2 := NewTokenMinter("secret-two-that-is-long-enough!!", time.Hour)

	token, err := m1.Mint(demoUser)
	require.NoError(t, err)

	_, err = m2.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewTokenMinter("unit-test-secret-that-is-long-enough", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.Mint(demoUser)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewTokenMinter("", 0)
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
