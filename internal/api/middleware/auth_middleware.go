package middleware

import (
	"github.com/gofiber/fiber/v2"

	config "github.com/ZBrian99/inclusiva-api/configs"
	"github.com/ZBrian99/inclusiva-api/internal/service"
)

type AuthMiddleware struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config, s service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{s: s, cfg: cfg}
}

// RequireAdmin gates admin-only endpoints. Access is granted when any of the
// three channels verifies: Basic pair, Bearer token, or the session cookie.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		cookieToken := c.Cookies(m.cfg.CookieName)

		if !m.s.Authorize(authHeader, cookieToken) {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin", Bearer`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}
