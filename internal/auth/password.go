package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost deliberately slows brute-force attempts. Raising it only
// affects new hashes; verification reads the cost embedded in the hash.
const bcryptCost = 12

// HashPassword creates a salted bcrypt hash of the password. Two calls
// with the same plaintext produce different stored values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
