// Package secretgen provides utilities for generating deployment secrets.
//
// This package generates the database administrator password and the Django
// application secret key. Both draw from crypto/rand; the password charset is
// restricted to characters that survive unescaped inside a connection string
// URL, the secret key charset matches what Django's own generator emits.
package secretgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// PasswordLength satisfies the flexible server complexity rules
	// (8-128 characters from at least three character classes).
	PasswordLength = 24

	// SecretKeyLength matches Django's get_random_secret_key output.
	SecretKeyLength = 50

	passwordCharset  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	secretKeyCharset = "abcdefghijklmnopqrstuvwxyz0123456789!#$%^&*(-_=+)"
)

// Password generates a random database administrator password. The result is
// alphanumeric so it can be embedded verbatim in a postgresql:// URL.
func Password() (string, error) {
	p, err := randomString(passwordCharset, PasswordLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin password: %w", err)
	}
	return p, nil
}

// SecretKey generates a random Django SECRET_KEY value.
func SecretKey() (string, error) {
	k, err := randomString(secretKeyCharset, SecretKeyLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate application secret key: %w", err)
	}
	return k, nil
}

func randomString(charset string, length int) (string, error) {
	max := big.NewInt(int64(len(charset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
