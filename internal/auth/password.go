package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePassword(hash, password string) error {
	if hash == "" || password == "" {
		return errors.New("missing hash or password")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// VerifyCredentials checks a login against the configured admin account.
// A bcrypt hash takes precedence; the plain password is only for local dev.
func VerifyCredentials(username, password, cfgUser, cfgHash, cfgPlain string) bool {
	if username != cfgUser {
		return false
	}
	if cfgHash != "" {
		return ComparePassword(cfgHash, password) == nil
	}
	if cfgPlain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(cfgPlain)) == 1
}
