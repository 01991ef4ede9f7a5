package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	config "github.com/ZBrian99/inclusiva-api/configs"
	"github.com/ZBrian99/inclusiva-api/internal/api/handlers"
	"github.com/ZBrian99/inclusiva-api/internal/api/middleware"
	"github.com/ZBrian99/inclusiva-api/internal/repository"
	"github.com/ZBrian99/inclusiva-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postRepo := repository.NewPostRepository(db)
	socialLinkRepo := repository.NewSocialLinkRepository(db)

	authService := service.NewAuthService(*cfg)
	postService := service.NewPostService(db, postRepo, socialLinkRepo)
	seedService := service.NewSeedService(db, postRepo, socialLinkRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, authService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/api/auth/login", auth.Login)

	post := handlers.NewPostHandler(*cfg, postService, authService)
	app.Get("/api/posts", post.ListPosts)
	app.Get("/api/posts/:id", post.GetPost)

	if cfg.RedisURI != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
		defer redisClient.Close()
		app.Post("/api/posts", middleware.RateLimit(redisClient, 10, time.Minute), post.CreatePost)
	} else {
		app.Post("/api/posts", post.CreatePost)
	}

	admin := app.Group("/api/admin")
	admin.Use(authMiddleware.RequireAdmin())

	adminHandler := handlers.NewAdminHandler(postService, seedService)
	admin.Get("/posts", adminHandler.ListPosts)
	admin.Post("/posts", adminHandler.CreatePost)
	admin.Patch("/posts/:id", adminHandler.UpdatePost)
	admin.Delete("/posts/:id", adminHandler.DeletePost)
	admin.Post("/seed", adminHandler.SeedPosts)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
