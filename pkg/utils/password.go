package utils

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	HashSchemeBcrypt = "bcrypt"
	// HashSchemeSHA512 is the legacy scheme: a single unsalted SHA-512,
	// base64-encoded. Kept so existing hashes keep verifying; new
	// deployments should stay on bcrypt.
	HashSchemeSHA512 = "sha512"
)

type PasswordHasher struct {
	scheme string
}

func NewPasswordHasher(scheme string) *PasswordHasher {
	if scheme != HashSchemeSHA512 {
		scheme = HashSchemeBcrypt
	}
	return &PasswordHasher{scheme: scheme}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.scheme == HashSchemeSHA512 {
		return sha512Hash(password), nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify detects the stored hash's scheme, so a database can hold a mix
// of legacy and bcrypt hashes while migrating.
func (h *PasswordHasher) Verify(password, hash string) bool {
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(sha512Hash(password)), []byte(hash)) == 1
}

func sha512Hash(password string) string {
	sum := sha512.Sum512([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}
