package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	_ CredentialVerifier = PlaintextVerifier{}
	_ CredentialVerifier = BcryptVerifier{}
)

// PlaintextVerifier compares passwords as stored, byte for byte.
//
// This is the scheme the user directory has always used. It offers no
// protection for the stored credentials; BcryptVerifier is the drop-in
// replacement.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func (PlaintextVerifier) Prepare(password string) (string, error) {
	return password, nil
}

// BcryptVerifier stores bcrypt hashes and compares against them.
type BcryptVerifier struct {
	// Cost is the bcrypt work factor; zero means bcrypt.DefaultCost.
	Cost int
}

func (v BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

func (v BcryptVerifier) Prepare(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// IsBcryptHash reports whether stored already looks like a bcrypt hash.
func IsBcryptHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// NewVerifier returns the verifier for a scheme name: "plaintext" or "bcrypt".
func NewVerifier(scheme string) (CredentialVerifier, error) {
	switch scheme {
	case "", "plaintext":
		return PlaintextVerifier{}, nil
	case "bcrypt":
		return BcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown credential scheme %q", scheme)
	}
}
