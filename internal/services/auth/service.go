package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/courtqueue/internal/dependencies/clock"
	"github.com/mcoot/courtqueue/internal/dependencies/random"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

const tokenLength = 32

// Session represents an authenticated admin session
type Session struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service guards mutating operations behind a single admin password.
// Sessions live in memory only; a restart logs every admin out.
type Service struct {
	clock  clock.Clock
	random random.Random

	passwordHash []byte // nil when no admin password is configured

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	// PasswordHash is a bcrypt hash of the admin password. It wins over Password.
	PasswordHash string

	// Password is the plain admin password, hashed once at startup
	Password string

	SessionDuration time.Duration

	// BcryptCost is used when hashing Password
	BcryptCost int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 12 * time.Hour,
		BcryptCost:      bcrypt.DefaultCost,
	}
}

// New creates a new auth Service. With neither a password nor a hash
// configured every login fails.
func New(clk clock.Clock, rnd random.Random, cfg Config) (*Service, error) {
	defaults := DefaultConfig()
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = defaults.SessionDuration
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = defaults.BcryptCost
	}

	var hash []byte
	switch {
	case cfg.PasswordHash != "":
		if _, err := bcrypt.Cost([]byte(cfg.PasswordHash)); err != nil {
			return nil, err
		}
		hash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	return &Service{
		clock:           clk,
		random:          rnd,
		passwordHash:    hash,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}, nil
}

// Enabled reports whether an admin password is configured
func (s *Service) Enabled() bool {
	return s.passwordHash != nil
}

// CheckPassword verifies the admin password without creating a session
func (s *Service) CheckPassword(password string) error {
	if s.passwordHash == nil || password == "" {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login checks the admin password and creates a session
func (s *Service) Login(ctx context.Context, password string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.CheckPassword(password); err != nil {
		return nil, err
	}
	return s.createSession(), nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.InvalidateSession(token)
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// CleanExpiredSessions removes expired sessions and returns how many were
// removed (call periodically)
func (s *Service) CleanExpiredSessions() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

func (s *Service) createSession() *Session {
	now := s.clock.Now()
	session := &Session{
		Token:     "sess_" + s.random.String(tokenLength, random.TokenAlphabet),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}
