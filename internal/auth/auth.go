// Package auth gates the admin API behind a username and password. A
// successful login yields a random session token that expires after a TTL.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidCredentials is returned by Login on a username or password mismatch.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// DefaultTTL is how long a session lasts when no TTL is configured.
const DefaultTTL = 12 * time.Hour

// Credentials is the single admin account.
type Credentials struct {
	Username string
	Password string
}

// Authenticator issues and checks admin session tokens. Safe for
// concurrent use.
type Authenticator struct {
	creds Credentials
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
}

// New creates an authenticator. A non-positive ttl selects DefaultTTL.
func New(creds Credentials, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Authenticator{
		creds:    creds,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]time.Time),
	}
}

// TTL returns the session lifetime.
func (a *Authenticator) TTL() time.Duration {
	return a.ttl
}

// Login checks the credentials and starts a session.
func (a *Authenticator) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.pruneLocked()
	a.sessions[token] = a.now().Add(a.ttl)
	return token, nil
}

// Valid reports whether token belongs to a live session.
func (a *Authenticator) Valid(token string) bool {
	if token == "" {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	expiry, ok := a.sessions[token]
	if !ok {
		return false
	}
	if !a.now().Before(expiry) {
		delete(a.sessions, token)
		return false
	}
	return true
}

// Logout ends a session. Unknown tokens are ignored.
func (a *Authenticator) Logout(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, token)
}

// Sessions returns the number of live sessions.
func (a *Authenticator) Sessions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pruneLocked()
	return len(a.sessions)
}

func (a *Authenticator) pruneLocked() {
	now := a.now()
	for token, expiry := range a.sessions {
		if !now.Before(expiry) {
			delete(a.sessions, token)
		}
	}
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("auth: generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
