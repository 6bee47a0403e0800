package middlewares

import (
	"context"
	"errors"
	"strings"

	"dentalflow-backend/auth"
	"dentalflow-backend/config"
	"dentalflow-backend/services"

	"github.com/gofiber/fiber/v2"
)

const (
	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
	principalKey = "principal"
)

type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, username string) (*auth.Principal, error)
}

// Authenticate validates a Bearer token, loads the user it names and stores
// the principal in c.Locals. In optional mode a request without an
// Authorization header passes through unauthenticated; a header that is
// present but invalid is always rejected.
func Authenticate(tokens TokenParser, resolver PrincipalResolver, mode string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get(authHeader)
		if h == "" {
			if mode == config.AuthModeOptional {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		if !strings.HasPrefix(strings.ToLower(h), strings.ToLower(bearerPrefix)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing/invalid Authorization header"})
		}
		raw := strings.TrimSpace(h[len(bearerPrefix):])
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid bearer token"})
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}

		p, err := resolver.ResolvePrincipal(c.UserContext(), claims.Subject)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unknown user"})
			}
			return err
		}

		c.Locals(principalKey, p)
		return c.Next()
	}
}

// PrincipalFrom returns the authenticated principal, or nil for anonymous requests.
func PrincipalFrom(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(principalKey).(*auth.Principal)
	return p
}
