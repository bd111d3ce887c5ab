package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-joblookup/internal/api"
	"go-joblookup/internal/cache"
	"go-joblookup/internal/config"
	"go-joblookup/internal/geo"
	"go-joblookup/internal/lark"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Catalog TTL: %s", cfg.CatalogTTL())

	//init lark bitable client
	store := lark.NewClient(cfg.LarkAppID, cfg.LarkAppSecret, cfg.LarkBaseID, cfg.LarkTableID)
	log.Println("📡 Lark Bitable client initialized.")

	//init snapshot cache
	snapshot := cache.New(cfg.CachePath)

	//init geocoder (proximity search stays off without an API key)
	geocoder := geo.NewGeocoder(cfg.GoogleMapAPIKey)
	if geocoder.Enabled() {
		log.Println("🗺️ Google Maps geocoder enabled.")
	} else {
		log.Println("⚠️ No Google Maps API key. Address search falls back to keyword matching.")
	}

	handler := api.New(cfg, store, snapshot, geocoder)

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Job Lookup API is running!",
			"status":  "healthy",
		})
	})
	handler.Register(r)

	log.Printf("🚀 Server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
