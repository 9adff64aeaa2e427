package main

import (
	"log"
	"time"

	"github.com/braianorozco10/portfolio-server/internal/auth"
	"github.com/braianorozco10/portfolio-server/internal/config"
	"github.com/braianorozco10/portfolio-server/internal/handlers"
	"github.com/braianorozco10/portfolio-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Services
	provider := services.NewMyMemoryClient(cfg.MyMemoryURL, cfg.MyMemoryEmail, cfg.UpstreamTimeout)
	gateway := services.NewGateway(provider)
	store := auth.NewDefaultStore(cfg.AdminPasswordHash, cfg.UsersPasswordHash)

	// Handlers
	authHandler := handlers.NewAuthHandler(store)
	translateHandler := handlers.NewTranslateHandler(gateway)
	timesheetHandler := handlers.NewTimesheetHandler()
	pagesHandler := handlers.NewPagesHandler("./static")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Pages (work-tools pages sit behind the session guard)
	pagesHandler.Register(app, authHandler.RequireSession)
	app.Static("/static", "./static/assets")

	// Routes
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.RequireSession, authHandler.Me)

	// Translation routes
	api.Get("/languages", handlers.Languages)
	api.Post("/translate", translateHandler.Translate)

	// Timesheet routes (protected)
	sheet := api.Group("/timesheet", authHandler.RequireSession)
	sheet.Post("/convert", timesheetHandler.Convert)
	sheet.Post("/export", timesheetHandler.Export)

	log.Printf("MYMEMORY_EMAIL present: %v", cfg.MyMemoryEmail != "")
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
