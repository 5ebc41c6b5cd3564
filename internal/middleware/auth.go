package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/logitrack/internal/config"
	"github.com/example/logitrack/internal/utils"
)

const userContextKey = "currentUserID"

// RequireAuth validates the caller's token and loads the authenticated user ID
// into context. The token is taken from the Authorization header or, for
// browser sessions, from the session cookie.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(cfg.CookieName)
		}
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}

		userID, err := utils.ParseToken(cfg.JWTSecret, token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(userContextKey, userID)
		return c.Next()
	}
}

// GetCurrentUserID extracts the authenticated user ID from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return uuid.Nil, false
	}

	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	return uuid.Nil, false
}

// ResolveUserID resolves the caller identity without failing the request.
// Used by endpoints that serve both guests and signed-in users.
func ResolveUserID(c *fiber.Ctx, cfg *config.Config) (uuid.UUID, bool) {
	token := bearerToken(c)
	if token == "" {
		token = c.Cookies(cfg.CookieName)
	}
	if token == "" {
		return uuid.Nil, false
	}

	userID, err := utils.ParseToken(cfg.JWTSecret, token)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
