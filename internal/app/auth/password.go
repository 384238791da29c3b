package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword хеширует пароль bcrypt со случайной солью,
// поэтому два хеша одного пароля не совпадают
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword сравнивает пароль с хешем за константное время.
// Битый хеш в базе трактуется как неверный пароль, а не как сбой
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
