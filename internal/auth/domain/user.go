package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
