package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/widyatama/credential-service/config"
	"github.com/widyatama/credential-service/internal/auth/domain"
	"github.com/widyatama/credential-service/internal/auth/dto"
	autherror "github.com/widyatama/credential-service/internal/errors"
	"github.com/widyatama/credential-service/pkg/constant"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	hasher       PasswordHasher
	notifier     domain.VerificationSender
	cfg          *config.Config
	validate     *validator.Validate
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, hasher PasswordHasher,
	notifier domain.VerificationSender, cfg *config.Config) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		hasher:       hasher,
		notifier:     notifier,
		cfg:          cfg,
		validate:     validator.New(),
	}
}

// Register creates an unverified user record, sends the verification link
// (best effort) and issues a session token for immediate use. The record is
// never rolled back when the email cannot be delivered; the caller is told
// via EmailDelivered instead.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterOutput, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrHashingFailed, err)
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The insert itself is the uniqueness check; concurrent registrations
	// for the same username are decided by the store, not here.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	delivered := true
	if err := s.sendVerificationEmail(user); err != nil {
		log.Warn().Err(err).Str("username", user.Username).
			Msg("failed to deliver verification email")
		delivered = false
	}

	sessionToken, _, err := s.tokenService.GenerateSessionToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterOutput{
		TokenResponse: dto.TokenResponse{
			SessionToken: sessionToken,
			TokenType:    constant.DefaultTokenType,
			ExpiresIn:    int(s.tokenService.GetSessionTokenExpiry().Seconds()),
		},
		EmailDelivered: delivered,
	}, nil
}

// Login checks the supplied credentials and issues a fresh session token.
// It mutates nothing.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	if s.cfg.RequireVerifiedLogin && !user.Verified {
		return nil, autherror.ErrUserNotVerified
	}

	sessionToken, _, err := s.tokenService.GenerateSessionToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		SessionToken: sessionToken,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokenService.GetSessionTokenExpiry().Seconds()),
	}, nil
}

// VerifyEmail consumes a verification-purpose token and marks its subject as
// verified. Re-verifying an already-verified user succeeds.
func (s *UserService) VerifyEmail(ctx context.Context, input dto.VerifyEmailInput) error {
	if err := s.validateInput(input); err != nil {
		return err
	}

	claims, err := s.tokenService.Verify(input.Token, TokenPurposeVerification)
	if err != nil {
		return err
	}

	return s.repo.MarkVerified(ctx, claims.Subject)
}

func (s *UserService) sendVerificationEmail(user *domain.User) error {
	token, err := s.tokenService.GenerateVerificationToken(user.Username)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s?token=%s", s.cfg.VerificationBaseURL, token)

	return s.notifier.SendVerification(user.Email, user.Username, link)
}

func (s *UserService) validateInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return &autherror.ValidationError{Fields: fields}
	}

	return err
}
