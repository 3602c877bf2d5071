package api

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lunelabs/cyclefem/internal/models"
)

func newTokenTestHandler(secret string) *Handler {
	return &Handler{secretKey: []byte(secret)}
}

func TestBuildTokenRoundTrip(t *testing.T) {
	t.Parallel()

	handler := newTokenTestHandler(testSecretKey)
	user := models.User{ID: 42, Email: "ana@example.com"}

	token, err := handler.buildToken(&user, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := handler.parseAuthToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42 in claims, got %d", claims.UserID)
	}
	if claims.Email != "ana@example.com" {
		t.Fatalf("expected email in claims, got %q", claims.Email)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
}

func TestBuildTokenFallsBackToDefaultTTL(t *testing.T) {
	t.Parallel()

	handler := newTokenTestHandler(testSecretKey)
	token, err := handler.buildToken(&models.User{ID: 1}, -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := handler.parseAuthToken(token); err != nil {
		t.Fatalf("expected default-TTL token to parse, got %v", err)
	}
}

func TestParseAuthTokenRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	handler := newTokenTestHandler(testSecretKey)

	claims := authClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := handler.parseAuthToken(expired); !errors.Is(err, errInvalidToken) {
		t.Fatalf("expected errInvalidToken for expired token, got %v", err)
	}
}

func TestParseAuthTokenRejectsWrongKey(t *testing.T) {
	t.Parallel()

	signer := newTokenTestHandler(testSecretKey)
	verifier := newTokenTestHandler("some-other-secret")

	token, err := signer.buildToken(&models.User{ID: 7}, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := verifier.parseAuthToken(token); !errors.Is(err, errInvalidToken) {
		t.Fatalf("expected errInvalidToken, got %v", err)
	}
}

func TestParseAuthTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	handler := newTokenTestHandler(testSecretKey)
	if _, err := handler.parseAuthToken("definitely.not.ajwt"); !errors.Is(err, errInvalidToken) {
		t.Fatalf("expected errInvalidToken, got %v", err)
	}
}
