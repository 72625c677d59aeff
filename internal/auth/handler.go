package auth

import (
	"strings"

	"github.com/seoforge/seoforge/internal/response"
	"github.com/seoforge/seoforge/internal/utils"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Username == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"username": "username is required",
			"password": "password is required",
		})
	}

	token, err := h.service.Login(body.Username, body.Password)
	if err != nil {
		if !h.service.Configured() {
			return response.InternalError(c, "Authentication is not configured on this server")
		}
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid username or password")
	}

	return response.Success(c, fiber.Map{
		"token":    token,
		"username": body.Username,
	}, "Login successful")
}

// Verify checks a token posted in the body, for clients restoring a saved
// session without hitting a protected route.
func (h *Handler) Verify(c *fiber.Ctx) error {
	var body struct {
		Token string `json:"token"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	token := body.Token
	if token == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if token == "" {
		return response.Unauthorized(c, "TOKEN_REQUIRED", "Missing token")
	}

	username, err := utils.ParseJWT(token)
	if err != nil {
		return response.Forbidden(c, "TOKEN_INVALID", "Invalid or expired token")
	}

	return response.Success(c, fiber.Map{
		"valid":    true,
		"username": username,
	}, "Token is valid")
}

// Status reports whether auth is configured, so the wizard can decide which
// login options to show.
func (h *Handler) Status(c *fiber.Ctx) error {
	return response.Success(c, fiber.Map{
		"passwordLogin": h.service.Configured(),
		"googleLogin":   googleConfigured(),
	}, "")
}
