package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/vansh1703/cars/internal/config"
)

// SessionClaims is the payload carried in the admin session cookie.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies the signed session cookie for the
// back-office. There is one admin identity, configured via environment;
// this gate keeps the admin surface private, it is not multi-user auth.
type SessionManager struct {
	cfg config.AuthConfig
}

func NewSessionManager(cfg config.AuthConfig) (*SessionManager, error) {
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret must be configured")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password must be configured")
	}
	return &SessionManager{cfg: cfg}, nil
}

// Authenticate checks the login form against the configured admin account
// and returns a signed session token on success.
func (m *SessionManager) Authenticate(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("email and password required")
	}
	if email != m.cfg.AdminEmail || password != m.cfg.AdminPassword {
		return "", fmt.Errorf("invalid credentials")
	}
	return m.issue(m.cfg.AdminEmail, m.cfg.AdminName)
}

func (m *SessionManager) issue(email, name string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning its claims.
func (m *SessionManager) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(m.cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired session")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected session claims")
	}
	return claims, nil
}

// CookieName returns the configured session cookie name.
func (m *SessionManager) CookieName() string { return m.cfg.CookieName }

// CookieMaxAge returns the session lifetime in seconds for Set-Cookie.
func (m *SessionManager) CookieMaxAge() int { return int(m.cfg.SessionTTL.Seconds()) }

// CookieSecure reports whether the cookie should be HTTPS-only.
func (m *SessionManager) CookieSecure() bool { return m.cfg.CookieSecure }
