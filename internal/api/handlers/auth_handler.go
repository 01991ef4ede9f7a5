package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	config "github.com/ZBrian99/inclusiva-api/configs"
	"github.com/ZBrian99/inclusiva-api/internal/service"
	"github.com/ZBrian99/inclusiva-api/internal/transfer"
	"github.com/ZBrian99/inclusiva-api/pkg/utils"
)

type AuthHandler struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthHandler(cfg config.Config, s service.AuthService) *AuthHandler {
	return &AuthHandler{s: s, cfg: cfg}
}

// Login accepts the admin credential via a Basic header or a JSON body and
// returns a bearer token, also set as an http-only cookie for page gating.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	user, pass, ok := utils.ParseBasicAuth(c.Get(fiber.HeaderAuthorization))
	if !ok {
		var body transfer.LoginRequest
		if err := c.BodyParser(&body); err == nil {
			user = firstNonEmpty(body.Username, body.User)
			pass = firstNonEmpty(body.Password, body.Pass)
		}
	}

	token, err := h.s.Login(user, pass)
	if err != nil {
		return respondError(c, err)
	}

	expiresIn := int(utils.TokenDuration.Seconds())
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.cfg.Env == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		MaxAge:   expiresIn,
		Expires:  time.Now().Add(utils.TokenDuration),
	})

	return c.Status(fiber.StatusOK).JSON(transfer.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
