package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/lunelabs/cyclefem/internal/models"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrWeakPassword           = errors.New("weak password")
	ErrInvalidCycleLength     = errors.New("invalid cycle length")
)

const minPasswordLength = 6

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func ValidateCycleLength(length int) error {
	if length < models.MinCycleLength || length > models.MaxCycleLength {
		return ErrInvalidCycleLength
	}
	return nil
}
