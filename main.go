package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripchat/config"
	"tripchat/database"
	"tripchat/favorites"
	"tripchat/handlers"
	"tripchat/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx := context.Background()
	deps := handlers.Deps{}

	// Search history is optional
	if cfg.Database.Enabled {
		store, err := database.Open(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer store.Close()
		deps.History = store
		deps.DB = store
	} else {
		log.Println("⚠️  No database configured, search history disabled")
	}

	amadeus := services.NewAmadeusClient(cfg.Amadeus.ClientID, cfg.Amadeus.ClientSecret, cfg.Amadeus.BaseURL())
	amadeus.WarmUp(ctx)
	deps.Flights = amadeus

	var lookup services.LocationLookup
	if amadeus.Configured() {
		lookup = amadeus
	}
	resolver, err := services.NewResolver(lookup)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("✅ Loaded %d airports", resolver.Airports())
	deps.Places = resolver

	deps.Favorites = favorites.Open(ctx, cfg.Favorites, cfg.Redis)
	log.Printf("✅ Favorites backend: %s", cfg.Favorites.Backend)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Trusted proxies (the API sits behind a proxy in deployment)
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	allowedOrigins := append([]string{"http://localhost:5173", "http://localhost:3000"}, cfg.FrontendURLs...)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	handlers.Register(r, deps)

	log.Printf("🚀 TripChat backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
