package constant

const (
	// DefaultTokenType is the scheme clients present session tokens with.
	DefaultTokenType = "Bearer"

	VerificationEmailSubject = "Verify your email address"
)
