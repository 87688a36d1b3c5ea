package main

import (
	"context"
	"log"

	"github.com/devmatch/devmatch-go/internal/api/middleware"
	"github.com/devmatch/devmatch-go/internal/api/routes"
	"github.com/devmatch/devmatch-go/internal/config"
	"github.com/devmatch/devmatch-go/internal/config/db"
	"github.com/devmatch/devmatch-go/internal/domain/chat"
	"github.com/devmatch/devmatch-go/internal/domain/match"
	"github.com/devmatch/devmatch-go/internal/domain/notification"
	"github.com/devmatch/devmatch-go/internal/domain/profile"
	"github.com/devmatch/devmatch-go/internal/domain/request"
	"github.com/devmatch/devmatch-go/internal/domain/user"
	"github.com/devmatch/devmatch-go/internal/relay"
	"github.com/devmatch/devmatch-go/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&profile.DeveloperProfile{},
		&request.HelpRequest{},
		&match.Match{},
		&notification.Notification{},
		&chat.ChatMessage{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Avatar storage
	storage.InitMinio()

	// Realtime fan-out. With REDIS_ADDR set, events are mirrored across
	// instances; otherwise the in-process hub serves this instance alone.
	hub := relay.NewHub()
	var events relay.Publisher = hub
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr, Password: config.RedisPassword})
		bus := relay.NewBus(hub, rdb)
		go bus.Run(context.Background())
		events = bus
		log.Printf("Relay bus connected to redis at %s", config.RedisAddr)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, hub, events)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
