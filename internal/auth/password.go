package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the fixed work factor for stored secrets. It is deliberately
// not configurable.
const BcryptCost = 12

// HashPassword hashes a plaintext password with the fixed cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value. A malformed
// stored hash counts as verification failure, never an error path.
func ComparePassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
