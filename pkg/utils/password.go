package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash. The output is always 60 bytes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrorHandler(err, "failed to hash password", nil)
	}
	return string(hash), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
