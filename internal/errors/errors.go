package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUsernameAlreadyInUse  = errors.New("username already in use")
	ErrUserNotVerified       = errors.New("email address not verified")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenWrongPurpose     = errors.New("token issued for a different purpose")
	ErrHashingFailed         = errors.New("password hashing failed")
)

// ValidationError reports request fields that are missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}
