package dto

type VerifyEmailInput struct {
	Token string `json:"token" validate:"required"`
}
