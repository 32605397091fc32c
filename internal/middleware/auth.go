package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"

	"github.com/gatherly/backend/pkg/jsonapi"
	"github.com/gatherly/backend/pkg/logger"
	"github.com/gatherly/backend/pkg/utils"
)

const currentUserIDKey = "currentUserID"

// AuthMiddleware resolves the owner a request acts as. Real authentication
// is out of scope here: a valid Bearer token names the owner, and requests
// without one fall back to the configured default user.
type AuthMiddleware struct {
	DefaultUserID uuid.UUID
}

func NewAuthMiddleware(defaultUserID uuid.UUID) *AuthMiddleware {
	return &AuthMiddleware{DefaultUserID: defaultUserID}
}

func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	})
}

func (a *AuthMiddleware) ResolveUser(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		c.Locals(currentUserIDKey, a.DefaultUserID)
		return c.Next()
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if tokenString == authHeader || tokenString == "" {
		logger.Warn("jwt_invalid_format", map[string]interface{}{
			"ip":   c.IP(),
			"path": c.Path(),
		})
		return jsonapi.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		logger.Warn("jwt_validation_failed", map[string]interface{}{
			"ip":    c.IP(),
			"path":  c.Path(),
			"error": err.Error(),
		})
		return jsonapi.Error(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	c.Locals(currentUserIDKey, claims.UserID)
	return c.Next()
}

func CurrentUserID(c *fiber.Ctx) uuid.UUID {
	value := c.Locals(currentUserIDKey)
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
