// Package password wraps bcrypt hashing and verification of user passwords.
package password

import "golang.org/x/crypto/bcrypt"

// hashCost matches the cost the reference deployment used for existing hashes.
const hashCost = 10

// Hash returns the bcrypt hash of a plaintext password.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether plain matches the stored bcrypt hash.
func Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
