package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/studio-click-house/schl-web-sub004/internal/api"
	"github.com/studio-click-house/schl-web-sub004/internal/database"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Get database path from environment or default
	dbPath := os.Getenv("SCHL_DB_PATH")
	if dbPath == "" {
		// Default to current directory for development
		dbPath = "./schl.db"
	}

	// Ensure absolute path
	if !filepath.IsAbs(dbPath) {
		cwd, _ := os.Getwd()
		dbPath = filepath.Join(cwd, dbPath)
	}

	// Initialize database
	log.Printf("Initializing database at %s", dbPath)
	if err := database.Open(database.Config{Path: dbPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Optional demo data for empty local databases
	if os.Getenv("SCHL_SEED") == "1" {
		if err := database.SeedIfEmpty(); err != nil {
			log.Printf("Warning: failed to seed demo data: %v", err)
		}
	}

	// Canonical timezone for "today"; date buckets are written in studio
	// local time by the producing clients.
	tzName := os.Getenv("SCHL_TZ")
	if tzName == "" {
		tzName = "Asia/Dhaka"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, falling back to UTC", tzName)
		loc = time.UTC
	}

	e := echo.New()
	e.HideBanner = true

	// Middleware
	corsOrigin := os.Getenv("SCHL_CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// API routes
	apiGroup := e.Group("/api")
	api.RegisterRoutes(apiGroup, loc)

	// Get port from environment or default
	port := os.Getenv("SCHL_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting tracking backend on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
