// Package auth implements the access control gate: who is logged in, and
// which views their role lets them enter.
package auth

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mmynk/housepoints/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrRoleNotPermitted   = errors.New("role is not permitted to access this area")
	ErrLoginRequired      = errors.New("login required")
	ErrAccessDenied       = errors.New("access denied: your role cannot open this area")
)

// CredentialVerifier isolates how a supplied password is checked against the
// stored credential, so a stronger scheme can replace it without touching
// call sites.
type CredentialVerifier interface {
	// Verify reports whether supplied matches the stored credential.
	Verify(stored, supplied string) bool

	// Prepare converts a new password into its stored form.
	Prepare(password string) (string, error)
}

// Authenticator checks credential pairs against a user directory.
// It keeps no state: no lockout, no rate limiting.
type Authenticator struct {
	verifier CredentialVerifier
}

// NewAuthenticator creates an authenticator using the given verifier.
func NewAuthenticator(verifier CredentialVerifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

// Verifier returns the credential verifier in use.
func (a *Authenticator) Verifier() CredentialVerifier {
	return a.verifier
}

// Authenticate scans users for an exact (case-folded) email match whose
// credential verifies against password.
func (a *Authenticator) Authenticate(users []models.User, email, password string) (models.User, error) {
	email = NormalizeEmail(email)
	password = strings.TrimSpace(password)

	for _, u := range users {
		if NormalizeEmail(u.Email) != email {
			continue
		}
		if a.verifier.Verify(u.Password, password) {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// NormalizeEmail trims and case-folds an email address.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}
