package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"chatbot-backend/models"
	"chatbot-backend/repository"

	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// ErrInvalidCredentials is returned on a failed login or a bad token.
// Deliberately the same error for unknown user and wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the user read capability the auth service consumes
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionStore is the session persistence capability
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// AuthService issues and verifies bearer tokens gating admin mutations
type AuthService struct {
	users    UserStore
	sessions SessionStore
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserStore sets the user store
func AuthWithUserStore(store UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = store
	}
}

// AuthWithSessionStore sets the session store
func AuthWithSessionStore(store SessionStore) AuthServiceOption {
	return func(s *AuthService) {
		s.sessions = store
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string
	Password string
}

// LoginResult carries the issued bearer token
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// Login verifies the password and issues a session token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.users == nil || s.sessions == nil {
		return nil, errors.New("auth stores not set")
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &LoginResult{Token: session.Token, ExpiresAt: session.ExpiresAt}, nil
}

// VerifyToken resolves a bearer token to its session
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.Session, error) {
	if s.sessions == nil {
		return nil, errors.New("auth stores not set")
	}
	if token == "" {
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if session.Expired(time.Now()) {
		return nil, ErrInvalidCredentials
	}

	return session, nil
}

// Logout invalidates a session token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.sessions == nil {
		return errors.New("auth stores not set")
	}
	return s.sessions.Delete(ctx, token)
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
