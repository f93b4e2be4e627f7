package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matthewhartstonge/argon2"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword returns the argon2id encoded hash stored in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	if password == "" {
		return false, nil
	}
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, fmt.Errorf("invalid password hash: %w", err)
	}
	return ok, nil
}
