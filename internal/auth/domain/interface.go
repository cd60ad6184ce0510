package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/widyatama/credential-service/internal/auth/domain UserRepository,VerificationSender

import "context"

// UserRepository is the persistence port for user records. Username is the
// unique key; Create must fail on a duplicate rather than overwrite.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, username string) error
}

// VerificationSender delivers a verification link to an address.
type VerificationSender interface {
	SendVerification(email, username, link string) error
}
