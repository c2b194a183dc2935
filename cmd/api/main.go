package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/psiboxes/box-scheduler/internal/calendar"
	"github.com/psiboxes/box-scheduler/internal/config"
	dbpkg "github.com/psiboxes/box-scheduler/internal/db"
	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
	"github.com/psiboxes/box-scheduler/internal/middleware"
	"github.com/psiboxes/box-scheduler/internal/routes"
	"github.com/psiboxes/box-scheduler/internal/web"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	logger := middleware.NewLogger()
	db := dbpkg.NewDB(cfg)

	googleClient, err := calendar.NewGoogleClient(
		context.Background(),
		cfg.GoogleCredentialsFile,
		cfg.CalendarBaseURL,
	)
	if err != nil {
		log.Fatalf("failed to build calendar gateway: %v", err)
	}

	var gateway domain.CalendarGateway = googleClient
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		gateway = calendar.NewCachedGateway(googleClient, redis.NewClient(opt))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.CORSMiddleware())

	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, gateway, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
