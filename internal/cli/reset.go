package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/lunelabs/cyclefem/internal/db"
	"github.com/lunelabs/cyclefem/internal/security"
	"github.com/lunelabs/cyclefem/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand is the local admin escape hatch: there is no
// email-based reset flow, so a locked-out user is recovered on the host
// itself. The operator is prompted for a new password; an empty prompt
// falls back to a generated temporary one.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return errors.New("a valid email address is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	repos := db.NewRepositories(database)

	user, err := repos.Users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("no account for %s", normalizedEmail)
		}
		return fmt.Errorf("load account: %w", err)
	}

	password, generated, err := resolveNewPassword()
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := repos.Users.UpdateByID(user.ID, map[string]any{"password_hash": string(passwordHash)}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	fmt.Printf("Password reset for %s\n", normalizedEmail)
	if generated {
		fmt.Printf("Temporary password: %s\n", password)
		fmt.Println("Ask the user to change it after logging in.")
	}
	return nil
}

func resolveNewPassword() (string, bool, error) {
	fmt.Print("New password (leave empty to generate one): ")
	entered, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}

	if len(entered) == 0 {
		generatedPassword, err := generateTemporaryPassword(12)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return generatedPassword, true, nil
	}

	password := string(entered)
	if err := services.ValidatePasswordStrength(password); err != nil {
		return "", false, errors.New("password must be at least 6 characters")
	}
	return password, false, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	// Ambiguous characters (0/O, 1/l/I) are left out since the value is
	// read aloud or retyped by a human.
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
