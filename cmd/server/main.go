package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/gatherly/backend/internal/config"
	"github.com/gatherly/backend/internal/database"
	"github.com/gatherly/backend/internal/handlers"
	"github.com/gatherly/backend/internal/middleware"
	"github.com/gatherly/backend/internal/services"
	"github.com/gatherly/backend/pkg/logger"
	"github.com/gatherly/backend/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg := config.Load()
	utils.ConfigureJWT(cfg.JWT.Secret, cfg.JWT.ExpirationHours)

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	groupEventService := services.NewGroupEventService(db)

	groupEventsHandler := handlers.NewGroupEventsHandler(groupEventService)
	authHandler := handlers.NewAuthHandler(cfg.Auth.DefaultUserID)
	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.DefaultUserID)

	app := fiber.New()
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS())
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Post("/auth/token", authHandler.IssueToken)

	groupEvents := v1.Group("/group_events", authMiddleware.ResolveUser)
	groupEvents.Post("/", groupEventsHandler.Create)
	groupEvents.Get("/", groupEventsHandler.List)
	groupEvents.Get("/:id", groupEventsHandler.Get)
	groupEvents.Put("/:id", groupEventsHandler.Update)
	groupEvents.Patch("/:id", groupEventsHandler.Update)
	groupEvents.Delete("/:id", groupEventsHandler.Delete)

	listenAddr := fmt.Sprintf(":%s", cfg.Server.Port)

	logger.Info("server_starting", map[string]interface{}{
		"port":    cfg.Server.Port,
		"address": listenAddr,
		"driver":  cfg.DB.Driver,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(listenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("shutting down server due to signal: %s", sig)
		shutdownDone := make(chan struct{})
		go func() {
			_ = app.Shutdown()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(10 * time.Second):
			log.Print("forced shutdown timeout reached")
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	}
}
