package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	sid := uuid.New()
	token, err := GenerateSessionToken("secret", sid, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	claims, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if claims.SessionID != sid {
		t.Fatalf("session id = %s, want %s", claims.SessionID, sid)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected expiry for positive ttl")
	}
}

func TestSessionTokenWithoutExpiry(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken("secret", uuid.New(), 0)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	claims, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expires at = %v, want none", claims.ExpiresAt)
	}
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken("secret", uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("other", token); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("err = %v, want ErrInvalidSessionToken", err)
	}
}

func TestSessionTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	claims := SessionClaims{
		SessionID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseSessionToken("secret", token); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("err = %v, want ErrInvalidSessionToken", err)
	}
	if _, err := ParseSessionToken("secret", "not-a-token"); !errors.Is(err, ErrInvalidSessionToken) {
		t.Fatalf("err = %v, want ErrInvalidSessionToken", err)
	}
}

func TestGetTokenFromHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := GetTokenFromHeader(tt.header); got != tt.want {
			t.Errorf("GetTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestToInt64(t *testing.T) {
	t.Parallel()

	if n, ok := ToInt64("42"); !ok || n != 42 {
		t.Fatalf("ToInt64(42) = %d, %v", n, ok)
	}
	for _, in := range []string{"", "0", "-3", "x"} {
		if _, ok := ToInt64(in); ok {
			t.Errorf("ToInt64(%q) ok = true, want false", in)
		}
	}
}
