package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ZBrian99/inclusiva-api/internal/models"
	"github.com/ZBrian99/inclusiva-api/internal/service"
	"github.com/ZBrian99/inclusiva-api/internal/transfer"
)

// AdminHandler serves the moderation panel API. Every route here sits behind
// the admin guard middleware.
type AdminHandler struct {
	s    service.PostService
	seed service.SeedService
}

func NewAdminHandler(s service.PostService, seed service.SeedService) *AdminHandler {
	return &AdminHandler{s: s, seed: seed}
}

// ListPosts returns posts in every status, with the extra moderation filters.
func (h *AdminHandler) ListPosts(c *fiber.Ctx) error {
	posts, pagination, err := h.s.List(c.Context(), service.ListParams{
		Page:               c.QueryInt("page", 1),
		PageSize:           c.QueryInt("pageSize", 12),
		Query:              c.Query("q"),
		Category:           c.Query("category"),
		Status:             c.Query("status"),
		Sort:               c.Query("sort", "recent"),
		Urgent:             queryBoolPtr(c, "urgent"),
		MinPrice:           queryIntPtr(c, "minPrice"),
		MaxPrice:           queryIntPtr(c, "maxPrice"),
		Mode:               c.Query("mode"),
		IncludeNonApproved: true,
	})
	if err != nil {
		return respondError(c, err)
	}

	if posts == nil {
		posts = []*models.Post{}
	}
	return c.Status(fiber.StatusOK).JSON(transfer.ListResponse{
		Data:       posts,
		Pagination: pagination,
	})
}

func (h *AdminHandler) CreatePost(c *fiber.Ctx) error {
	var in transfer.PostInput
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse body",
		})
	}

	post, err := h.s.Create(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(transfer.DetailResponse{Data: post})
}

func (h *AdminHandler) UpdatePost(c *fiber.Ctx) error {
	var in transfer.PostInput
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse body",
		})
	}

	post, err := h.s.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(transfer.DetailResponse{Data: post})
}

func (h *AdminHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

// SeedPosts wipes the posts table and loads the sample dataset.
func (h *AdminHandler) SeedPosts(c *fiber.Ctx) error {
	count, err := h.seed.Seed(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "count": count})
}
