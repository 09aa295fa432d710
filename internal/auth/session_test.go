package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh1703/cars/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminEmail:    "owner@dealership.test",
		AdminPassword: "a-strong-password",
		AdminName:     "Owner",
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		CookieName:    "admin_session",
	}
}

func TestNewSessionManagerRequiresSecretAndPassword(t *testing.T) {
	cfg := testAuthConfig()
	cfg.SessionSecret = ""
	_, err := NewSessionManager(cfg)
	require.Error(t, err)

	cfg = testAuthConfig()
	cfg.AdminPassword = ""
	_, err = NewSessionManager(cfg)
	require.Error(t, err)
}

func TestAuthenticateAndVerifyRoundTrip(t *testing.T) {
	m, err := NewSessionManager(testAuthConfig())
	require.NoError(t, err)

	token, err := m.Authenticate("owner@dealership.test", "a-strong-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@dealership.test", claims.Email)
	assert.Equal(t, "Owner", claims.Name)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	m, err := NewSessionManager(testAuthConfig())
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "owner@dealership.test", "nope"},
		{"wrong email", "someone@else.test", "a-strong-password"},
		{"empty form", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Authenticate(tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	cfg.SessionTTL = -time.Minute
	m, err := NewSessionManager(cfg)
	require.NoError(t, err)

	token, err := m.Authenticate("owner@dealership.test", "a-strong-password")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	m, err := NewSessionManager(testAuthConfig())
	require.NoError(t, err)

	other := testAuthConfig()
	other.SessionSecret = "different-secret"
	m2, err := NewSessionManager(other)
	require.NoError(t, err)

	token, err := m2.Authenticate("owner@dealership.test", "a-strong-password")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}
