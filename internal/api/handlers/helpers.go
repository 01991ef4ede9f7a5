package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ZBrian99/inclusiva-api/internal/apperror"
)

// respondError maps service error kinds onto HTTP responses. Configuration
// and storage detail stays in the logs; clients get a generic server error.
func respondError(c *fiber.Ctx, err error) error {
	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fiber.Map{"fieldErrors": verr.Fields},
		})
	}

	switch {
	case errors.Is(err, apperror.ErrBadRequest):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing credentials",
		})
	case errors.Is(err, apperror.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	case errors.Is(err, apperror.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	default:
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}
}

func queryIntPtr(c *fiber.Ctx, key string) *int {
	if c.Query(key) == "" {
		return nil
	}
	v := c.QueryInt(key)
	return &v
}

func queryBoolPtr(c *fiber.Ctx, key string) *bool {
	switch c.Query(key) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
