// Package processor issues and validates the session tokens behind the
// demo login. Any non-empty credentials are accepted; nothing is stored.
package processor

import (
	"agent-server/internal/observability"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer       = "agent-server"
	defaultTTL   = 24 * time.Hour
	authTypeMock = "mock"
)

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrFirstNameRequired  = errors.New("first name is required")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrParseJWTToken      = errors.New("failed to parse jwt token")
	ErrExpiredToken       = errors.New("token expired")
	ErrFailedSignIn       = errors.New("failed to sign in")
)

// userNamespace derives a stable user ID from an email address.
var userNamespace = uuid.MustParse("6f1c3b0e-4d7a-4e55-9a51-4b8f7c2d9e10")

type AuthProcessor struct {
	jwtSecret string
	tokenTTL  time.Duration
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, tokenTTL time.Duration, logger *observability.Logger) AuthProcessor {
	if tokenTTL <= 0 {
		tokenTTL = defaultTTL
	}
	return AuthProcessor{
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
}

// Session is returned by login and signup.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type BaseClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	AuthType  string `json:"auth_type"`
}

func userFor(email, firstName, lastName string) User {
	email = strings.ToLower(strings.TrimSpace(email))
	return User{
		ID:        uuid.NewSHA1(userNamespace, []byte(email)),
		Email:     email,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
}

// Login accepts any non-empty email and password.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user := userFor(email, "", "")
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID.String()})

	session, err := p.issue(ctx, user)
	if err != nil {
		return Session{}, err
	}
	p.logger.Info(ctx, "user logged in")
	return session, nil
}

// Signup accepts any non-empty email, password and first name.
func (p *AuthProcessor) Signup(ctx context.Context, firstName, lastName, email, password string) (Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}
	if strings.TrimSpace(firstName) == "" {
		return Session{}, ErrFirstNameRequired
	}

	user := userFor(email, firstName, lastName)
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID.String()})

	session, err := p.issue(ctx, user)
	if err != nil {
		return Session{}, err
	}
	p.logger.Info(ctx, "user signed up")
	return session, nil
}
