package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const secret = "test-secret-with-enough-bytes-1234"

func TestIssueAndVerify(t *testing.T) {
	v, err := NewVerifier(secret, "kosmi")
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	id := uuid.New()
	token, err := NewIssuer(secret, "kosmi", time.Hour).Issue(id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	got, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != id {
		t.Errorf("profile id = %s, want %s", got, id)
	}
}

func TestVerifyRejects(t *testing.T) {
	v, _ := NewVerifier(secret, "kosmi")
	id := uuid.New()

	expired, _ := NewIssuer(secret, "kosmi", -time.Hour).Issue(id)
	forged, _ := NewIssuer("another-secret-another-secret-123", "kosmi", time.Hour).Issue(id)
	wrongIssuer, _ := NewIssuer(secret, "elders", time.Hour).Issue(id)
	badSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "lotte",
		Issuer:    "kosmi",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}).SignedString([]byte(secret))
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: id.String(),
		Issuer:  "kosmi",
	}}).SignedString([]byte(secret))
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   id.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMissingToken},
		{"garbage", "not.a.jwt", ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"forged", forged, ErrInvalidToken},
		{"wrong issuer", wrongIssuer, ErrInvalidToken},
		{"subject not uuid", badSubject, ErrInvalidToken},
		{"no expiry", noExpiry, ErrInvalidToken},
		{"alg none", noneAlg, ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.Verify(tt.token); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewVerifierNeedsSecret(t *testing.T) {
	if _, err := NewVerifier("", ""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header, want string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc", "abc"},
		{"Basic dXNlcg==", ""},
		{"Bearer ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := BearerToken(tt.header); got != tt.want {
			t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestProfileIDContext(t *testing.T) {
	if _, ok := ProfileIDFrom(context.Background()); ok {
		t.Fatal("empty context should carry no profile id")
	}
	id := uuid.New()
	got, ok := ProfileIDFrom(WithProfileID(context.Background(), id))
	if !ok || got != id {
		t.Errorf("ProfileIDFrom = %s, %v", got, ok)
	}
}
