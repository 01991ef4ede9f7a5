package service

import (
	"fmt"
	"log/slog"

	config "github.com/ZBrian99/inclusiva-api/configs"
	"github.com/ZBrian99/inclusiva-api/internal/apperror"
	"github.com/ZBrian99/inclusiva-api/pkg/utils"
)

// AuthService checks admin credentials and issues session tokens. Tokens are
// stateless: nothing is stored server-side and expiry is the only
// invalidation mechanism.
type AuthService interface {
	Login(username, password string) (string, error)
	VerifyBasic(header string) bool
	VerifyToken(tokenString string) bool
	Authorize(authHeader, cookieToken string) bool
}

type authService struct {
	cfg config.Config
}

func NewAuthService(cfg config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: missing credentials", apperror.ErrBadRequest)
	}

	if s.cfg.AdminUser == "" || s.cfg.AdminPass == "" {
		slog.Error("admin credentials are not configured")
		return "", fmt.Errorf("%w: admin credentials not set", apperror.ErrConfig)
	}

	if username != s.cfg.AdminUser || password != s.cfg.AdminPass {
		return "", fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
	}

	if s.cfg.SecretKey == "" {
		slog.Error("token secret is not configured")
		return "", fmt.Errorf("%w: token secret not set", apperror.ErrConfig)
	}

	token, err := utils.GenerateAdminToken(s.cfg.SecretKey, username, utils.TokenDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrConfig, err)
	}

	return token, nil
}

func (s *authService) VerifyBasic(header string) bool {
	user, pass, ok := utils.ParseBasicAuth(header)
	if !ok {
		return false
	}
	if s.cfg.AdminUser == "" || s.cfg.AdminPass == "" {
		return false
	}
	return user == s.cfg.AdminUser && pass == s.cfg.AdminPass
}

func (s *authService) VerifyToken(tokenString string) bool {
	if tokenString == "" || s.cfg.SecretKey == "" {
		return false
	}

	claims, err := utils.ValidateAdminToken(s.cfg.SecretKey, tokenString)
	if err != nil {
		return false
	}
	return claims.Role == utils.RoleAdmin
}

// Authorize is the single allow/deny decision for admin-gated operations.
// Any one of the three channels succeeding grants access.
func (s *authService) Authorize(authHeader, cookieToken string) bool {
	if s.VerifyBasic(authHeader) {
		return true
	}
	if token := utils.ParseBearerToken(authHeader); token != "" && s.VerifyToken(token) {
		return true
	}
	return cookieToken != "" && s.VerifyToken(cookieToken)
}
