package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Get("/api/v1/verify-email", h.VerifyEmail)

	// Session-protected endpoints
	app.Get("/api/v1/me", h.RequireAuth(), h.Me)
}
