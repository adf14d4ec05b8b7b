package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
	"bodima/internal/services"
)

const sessionCookie = "token"

// AuthHandler handles HTTP requests for registration and session management.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes on the users group.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
	router.Post("/logout", h.HandleLogout)
	router.Get("/verify", h.HandleVerify)
}

// HandleRegister handles new user registration. Registration never issues a
// token; the user logs in as a second step.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}

	if err := h.authService.Register(input); err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusCreated, "User registered successfully!", nil)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates the user and hands the session token back twice:
// as an httpOnly same-site-strict cookie and in the response body. The cookie
// is not marked secure and carries no max-age; the token's own expiry bounds
// the session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, apperrors.NewValidation("Invalid request body!"))
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   false,
	})
	return success(c, fiber.StatusOK, "Login successful!", fiber.Map{"token": token})
}

// HandleLogout clears the session cookie. It is idempotent and always
// succeeds; a previously issued token stays valid until its expiry since no
// server-side revocation list exists.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return success(c, fiber.StatusOK, "Logged out successfully!", nil)
}

// HandleVerify checks the session cookie. An absent cookie is
// unauthenticated (401); a present but failing token is invalid (403).
func (h *AuthHandler) HandleVerify(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookie)
	if token == "" {
		return fail(c, apperrors.NewUnauthenticated("Unauthorized - No token provided!"))
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{"user": claims})
}
