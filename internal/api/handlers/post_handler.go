package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	config "github.com/ZBrian99/inclusiva-api/configs"
	"github.com/ZBrian99/inclusiva-api/internal/models"
	"github.com/ZBrian99/inclusiva-api/internal/service"
	"github.com/ZBrian99/inclusiva-api/internal/transfer"
)

type PostHandler struct {
	s    service.PostService
	auth service.AuthService
	cfg  config.Config
}

func NewPostHandler(cfg config.Config, s service.PostService, auth service.AuthService) *PostHandler {
	return &PostHandler{s: s, auth: auth, cfg: cfg}
}

// ListPosts returns the public listing: approved posts only.
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, pagination, err := h.s.List(c.Context(), service.ListParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 12),
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort", "recent"),
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

// GetPost returns a single post. Missing posts and non-approved posts look
// identical to non-admin callers.
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	isAdmin := h.auth.Authorize(c.Get(fiber.HeaderAuthorization), c.Cookies(h.cfg.CookieName))

	post, err := h.s.GetByID(c.Context(), c.Params("id"), isAdmin)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(transfer.DetailResponse{Data: post})
}

// CreatePost accepts a public submission. New posts always start pending.
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
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
