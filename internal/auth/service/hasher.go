package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/widyatama/credential-service/internal/auth/service PasswordHasher

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the contract for credential hashing. The service layer
// never sees the algorithm behind it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. bcrypt's comparison is
// constant-time over the digest, so a mismatch never leaks its position.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
