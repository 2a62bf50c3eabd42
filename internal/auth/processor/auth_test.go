package processor

import (
	"agent-server/internal/observability"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newProcessor(ttl time.Duration) AuthProcessor {
	return New("test-secret", ttl, observability.NewLogger())
}

func TestLogin_AnyNonEmptyCredentials(t *testing.T) {
	processor := newProcessor(time.Hour)
	ctx := context.Background()

	session, err := processor.Login(ctx, "Agent@Example.com", "x")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a token")
	}
	if session.User.Email != "agent@example.com" {
		t.Errorf("expected normalised email, got %s", session.User.Email)
	}

	again, err := processor.Login(ctx, "agent@example.com", "different")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if again.User.ID != session.User.ID {
		t.Error("expected the same user ID for the same email")
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "no email", email: " ", password: "secret"},
		{name: "no password", email: "a@b.co", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := newProcessor(time.Hour)
			_, err := processor.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestSignup_RequiresFirstName(t *testing.T) {
	processor := newProcessor(time.Hour)

	_, err := processor.Signup(context.Background(), "", "Doe", "a@b.co", "pw")
	if !errors.Is(err, ErrFirstNameRequired) {
		t.Errorf("expected ErrFirstNameRequired, got %v", err)
	}

	session, err := processor.Signup(context.Background(), "Jane", "Doe", "a@b.co", "pw")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.User.FirstName != "Jane" {
		t.Errorf("expected first name Jane, got %s", session.User.FirstName)
	}
}

func TestValidateJWTToken_RoundTrip(t *testing.T) {
	processor := newProcessor(time.Hour)
	ctx := context.Background()

	session, err := processor.Signup(ctx, "Jane", "Doe", "jane@example.com", "pw")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	claims, err := processor.ValidateJWTToken(ctx, session.Token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	user, err := UserFromClaims(claims)
	if err != nil {
		t.Fatalf("expected user from claims, got %v", err)
	}
	if user != session.User {
		t.Errorf("expected %+v, got %+v", session.User, user)
	}
}

func TestValidateJWTToken_Expired(t *testing.T) {
	processor := newProcessor(time.Minute)
	issuedAt := time.Now().Add(-time.Hour)
	processor.now = func() time.Time { return issuedAt }

	session, err := processor.Login(context.Background(), "a@b.co", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	processor.now = time.Now
	if _, err := processor.ValidateJWTToken(context.Background(), session.Token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateJWTToken_WrongSecret(t *testing.T) {
	other := New("other-secret", time.Hour, observability.NewLogger())
	session, err := other.Login(context.Background(), "a@b.co", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	processor := newProcessor(time.Hour)
	if _, err := processor.ValidateJWTToken(context.Background(), session.Token); !errors.Is(err, ErrParseJWTToken) {
		t.Errorf("expected ErrParseJWTToken, got %v", err)
	}
}

func TestValidateJWTToken_RejectsNonHMAC(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x", Issuer: issuer})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	processor := newProcessor(time.Hour)
	if _, err := processor.ValidateJWTToken(context.Background(), signed); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}
