package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "warga/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"warga/internal/auth"
	"warga/internal/config"
	"warga/internal/db"
	"warga/internal/handler"
	"warga/internal/model"
	"warga/internal/repository"
	"warga/internal/router"
	"warga/internal/service"
)

// @title Warga API
// @version 1.0
// @description Citizen services API: registration, session login, profile, saved news and aggregated facilities.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued by POST /users/login.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Session{},
			&model.SavedNews{},
			&model.UserSertificate{},
			&model.UserTraining{},
			&model.AssistanceTool{},
			&model.Assistance{},
			&model.Sertificate{},
			&model.Training{},
			&model.Tool{},
			&model.News{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.News{},
		&model.SavedNews{},
		&model.Sertificate{},
		&model.UserSertificate{},
		&model.Training{},
		&model.UserTraining{},
		&model.Assistance{},
		&model.AssistanceTool{},
		&model.Tool{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)
	facilityRepo := repository.NewFacilityRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, jwtService)
	userService := service.NewUserService(userRepo, newsRepo, facilityRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(e, authService, authHandler, userHandler)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
