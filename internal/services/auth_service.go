package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/localnerve/staffdir/internal/config"
	"github.com/localnerve/staffdir/internal/models"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown users and bad passwords
// alike, so login responses do not reveal which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNoSession is returned when a cookie does not resolve to a live session.
var ErrNoSession = errors.New("no session established")

// Session is the server-side state behind one login cookie. The selected
// employee is the single slot of navigation state: a peer pivot overwrites
// it rather than stacking.
type Session struct {
	ID       string
	Username string
	Name     string
	Email    string

	mu       sync.Mutex
	selected *models.EmployeeRef
}

// Select replaces the currently selected employee.
func (s *Session) Select(ref models.EmployeeRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &ref
}

// Selected returns the currently selected employee, if any.
func (s *Session) Selected() (models.EmployeeRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return models.EmployeeRef{}, false
	}
	return *s.selected, true
}

// Authenticator validates credentials and manages cookie-backed sessions.
// The cookie value is a signed JWT carrying the server-side session ID; the
// session store expires entries after the configured cookie lifetime.
type Authenticator struct {
	credentials config.CredentialTable
	cookie      config.CookieSettings
	sessions    *cache.Cache
}

// NewAuthenticator builds an Authenticator from the loaded configuration.
func NewAuthenticator(cfg *config.Config) *Authenticator {
	ttl := time.Duration(cfg.Cookie.ExpiryDays.Uint64()) * 24 * time.Hour
	return &Authenticator{
		credentials: cfg.Credentials,
		cookie:      cfg.Cookie,
		sessions:    cache.New(ttl, time.Hour),
	}
}

// CookieName returns the configured session cookie name.
func (a *Authenticator) CookieName() string {
	return a.cookie.Name
}

// Expiry returns the configured session lifetime.
func (a *Authenticator) Expiry() time.Duration {
	return time.Duration(a.cookie.ExpiryDays.Uint64()) * 24 * time.Hour
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Login verifies a username/password pair against the credential table and,
// on success, mints a session and its signed cookie value.
func (a *Authenticator) Login(username, password string) (string, *Session, error) {
	credential, ok := a.credentials.Usernames[username]
	if !ok {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(credential.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	session := &Session{
		ID:       uuid.NewString(),
		Username: username,
		Name:     credential.Name,
		Email:    credential.Email,
	}
	a.sessions.Set(session.ID, session, cache.DefaultExpiration)

	now := time.Now()
	claims := sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.Expiry())),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cookie.Key))
	if err != nil {
		a.sessions.Delete(session.ID)
		return "", nil, fmt.Errorf("failed to sign session cookie: %w", err)
	}

	return token, session, nil
}

// Validate resolves a cookie value to its live session. Forged, expired and
// unknown cookies all fail.
func (a *Authenticator) Validate(cookieValue string) (*Session, error) {
	if cookieValue == "" {
		return nil, ErrNoSession
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(cookieValue, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(a.cookie.Key), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session cookie: %w", err)
	}

	entry, ok := a.sessions.Get(claims.SessionID)
	if !ok {
		return nil, ErrNoSession
	}
	return entry.(*Session), nil
}

// Logout drops the server-side session behind a cookie value, clearing all
// its state including the selected employee. Unknown or malformed cookies
// are a no-op.
func (a *Authenticator) Logout(cookieValue string) {
	if session, err := a.Validate(cookieValue); err == nil {
		a.sessions.Delete(session.ID)
	}
}
