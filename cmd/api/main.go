package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"store-backend/internal/config"
	"store-backend/internal/routes"
	"store-backend/internal/seed"
	"store-backend/internal/store"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var st store.Store
	if mongo, err := store.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName); err != nil {
		// Keep serving so /test can report what is wrong.
		log.Println("⚠️ Could not connect to MongoDB:", err)
		st = store.Unavailable{}
	} else {
		log.Println("✅ Connected to MongoDB database", cfg.DatabaseName)
		st = mongo
		defer mongo.Close(context.Background())

		if err := seed.Ensure(ctx, st); err != nil {
			log.Println("⚠️ Could not seed product catalog:", err)
		}
	}

	router := gin.Default()
	routes.Register(router, cfg, st)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
