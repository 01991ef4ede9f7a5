package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/ZBrian99/inclusiva-api/configs"
	"github.com/ZBrian99/inclusiva-api/internal/api/middleware"
	"github.com/ZBrian99/inclusiva-api/internal/models"
	"github.com/ZBrian99/inclusiva-api/internal/service"
	"github.com/ZBrian99/inclusiva-api/internal/transfer"
)

// fakePostService serves handler tests without a database.
type fakePostService struct{}

func (f *fakePostService) Create(ctx context.Context, in *transfer.PostInput) (*models.Post, error) {
	return &models.Post{ID: "p1", Status: models.StatusPending}, nil
}

func (f *fakePostService) List(ctx context.Context, params service.ListParams) ([]*models.Post, transfer.Pagination, error) {
	return []*models.Post{{ID: "p1", Title: "Feria de emprendedores", Status: models.StatusPending}},
		transfer.Pagination{Page: 1, PageSize: 12, Total: 1, TotalPages: 1}, nil
}

func (f *fakePostService) GetByID(ctx context.Context, id string, isAdmin bool) (*models.Post, error) {
	return &models.Post{ID: id, Status: models.StatusApproved}, nil
}

func (f *fakePostService) Update(ctx context.Context, id string, in *transfer.PostInput) (*models.Post, error) {
	return &models.Post{ID: id}, nil
}

func (f *fakePostService) Remove(ctx context.Context, id string) error {
	return nil
}

type fakeSeedService struct{}

func (f *fakeSeedService) Seed(ctx context.Context) (int, error) { return 6, nil }

func adminApp(cfg config.Config) *fiber.App {
	app := fiber.New()

	authService := service.NewAuthService(cfg)
	m := middleware.NewAuthMiddleware(cfg, authService)

	admin := app.Group("/api/admin")
	admin.Use(m.RequireAdmin())

	h := NewAdminHandler(&fakePostService{}, &fakeSeedService{})
	admin.Get("/posts", h.ListPosts)
	admin.Post("/posts", h.CreatePost)
	admin.Patch("/posts/:id", h.UpdatePost)
	admin.Delete("/posts/:id", h.DeletePost)
	admin.Post("/seed", h.SeedPosts)

	return app
}

// Validation runs before any storage access, so a real post service with no
// database still reports field errors for a bad public submission.
func TestCreatePost_MissingConditionNamesField(t *testing.T) {
	app := fiber.New()
	postService := service.NewPostService(nil, nil, nil)
	h := NewPostHandler(testConfig, postService, service.NewAuthService(testConfig))
	app.Post("/api/posts", h.CreatePost)

	body := `{
		"category": "productos",
		"title": "Bicicleta rodado 29",
		"description": "Cuadro de aluminio, 21 velocidades",
		"image": "https://example.com/bici.jpg",
		"author": "Bici Center",
		"location": "Mendoza"
	}`

	resp, err := app.Test(jsonRequest("POST", "/api/posts", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var parsed struct {
		Error struct {
			FieldErrors map[string][]string `json:"fieldErrors"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Contains(t, parsed.Error.FieldErrors, "condition")
}

func TestCreatePost_MalformedBody(t *testing.T) {
	app := fiber.New()
	postService := service.NewPostService(nil, nil, nil)
	h := NewPostHandler(testConfig, postService, service.NewAuthService(testConfig))
	app.Post("/api/posts", h.CreatePost)

	resp, err := app.Test(jsonRequest("POST", "/api/posts", `{not json`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
