package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/widyatama/credential-service/internal/auth/dto"
	"github.com/widyatama/credential-service/internal/auth/service"
	autherror "github.com/widyatama/credential-service/internal/errors"
	"github.com/widyatama/credential-service/pkg/constant"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	output, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	body := fiber.Map{
		"message":       "registration successful",
		"session_token": output.SessionToken,
		"token_type":    output.TokenType,
		"expires_in":    output.ExpiresIn,
	}
	if !output.EmailDelivered {
		body["warning"] = "verification email could not be delivered"
	}

	return c.Status(fiber.StatusCreated).JSON(body)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	tokens, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "login successful",
		"session_token": tokens.SessionToken,
		"token_type":    tokens.TokenType,
		"expires_in":    tokens.ExpiresIn,
	})
}

// VerifyEmail consumes the token embedded in the emailed link.
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	input := dto.VerifyEmailInput{Token: c.Query("token")}

	if err := h.userService.VerifyEmail(c.Context(), input); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "email verified",
	})
}

// Me returns the identity behind the presented session token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"username": username,
	})
}

// RequireAuth guards a route with a session-purpose bearer token.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || parts[0] != constant.DefaultTokenType {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or malformed authorization header",
			})
		}

		claims, err := h.tokenService.Verify(parts[1], service.TokenPurposeSession)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid session token",
			})
		}

		c.Locals("username", claims.Subject)

		return c.Next()
	}
}

// errorResponse maps service errors onto one consistent status per kind.
func errorResponse(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusForError(err error) int {
	var validationErr *autherror.ValidationError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, autherror.ErrTokenMalformed),
		errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenSignatureInvalid),
		errors.Is(err, autherror.ErrTokenWrongPurpose):
		return fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrUserNotVerified):
		return fiber.StatusForbidden
	case errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, autherror.ErrUsernameAlreadyInUse):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
