package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"store-backend/internal/config"
	"store-backend/internal/handlers"
	"store-backend/internal/store"
)

func Register(router *gin.Engine, cfg *config.Config, s store.Store) {
	// Fully open CORS for the public storefront. The library rejects the
	// wildcard origin together with credentials, hence the origin func.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	dh := handlers.NewDiagnosticHandler(cfg, s)
	ph := handlers.NewProductHandler(s)
	oh := handlers.NewOrderHandler(s)

	router.GET("/", dh.Root)
	router.GET("/test", dh.TestDatabase)

	api := router.Group("/api")
	{
		api.GET("/hello", dh.Hello)
		api.GET("/products", ph.ListProducts)
		api.GET("/products/:id", ph.GetProduct)
		api.POST("/orders", oh.CreateOrder)
	}
}
