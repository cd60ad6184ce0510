package dto

type TokenResponse struct {
	SessionToken string `json:"session_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// RegisterOutput carries the session token issued at registration plus
// whether the verification email actually went out.
type RegisterOutput struct {
	TokenResponse
	EmailDelivered bool `json:"-"`
}
