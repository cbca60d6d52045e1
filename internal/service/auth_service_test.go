package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", nil)
	userID := primitive.NewObjectID()

	token, err := svc.GenerateToken(userID, "student")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Errorf("expected user id %s, got %s", userID.Hex(), claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("expected role student, got %s", claims.Role)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 6*24*time.Hour || remaining > 7*24*time.Hour {
		t.Errorf("expected roughly 7 days of validity, got %v", remaining)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-one", nil)
	verifier := NewAuthService(nil, "secret-two", nil)

	token, err := issuer.GenerateToken(primitive.NewObjectID(), "teacher")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", nil)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", nil)

	testCases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@b.c", Password: "pw", Role: "student"}},
		{"missing email", RegisterInput{Name: "a", Password: "pw", Role: "student"}},
		{"missing password", RegisterInput{Name: "a", Email: "a@b.c", Role: "student"}},
		{"missing role", RegisterInput{Name: "a", Email: "a@b.c", Password: "pw"}},
		{"unknown role", RegisterInput{Name: "a", Email: "a@b.c", Password: "pw", Role: "admin"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tc.input)
			if !IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", nil)

	_, _, err := svc.Login(context.Background(), "", "pw")
	if !IsValidation(err) {
		t.Errorf("expected a validation error for missing email, got %v", err)
	}

	_, _, err = svc.Login(context.Background(), "a@b.c", "")
	if !IsValidation(err) {
		t.Errorf("expected a validation error for missing password, got %v", err)
	}
}
