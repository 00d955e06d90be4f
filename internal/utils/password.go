package utils

import "golang.org/x/crypto/bcrypt"

// MinBcryptCost is the weakest cost factor the application will accept
// when hashing admin passwords.
const MinBcryptCost = 10

// HashPassword returns the bcrypt hash of plain using the given cost.
// Costs below MinBcryptCost are raised to it.
func HashPassword(plain string, cost int) (string, error) {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.
// A mismatch is reported as false, never as an error.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
