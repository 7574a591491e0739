package main

import (
	"log"
	"os"
	"time"

	"bakery/config"
	"bakery/middleware"
	"bakery/routes"
	"bakery/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	gin.SetMode(config.Env("GIN_MODE", gin.ReleaseMode))
	log.Printf("Running in %s mode", gin.Mode())

	r := gin.Default()

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())

	// /metrics endpoint
	r.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Env("CORS_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	config.InitStore()

	// daily inventory sweep
	s := gocron.NewScheduler(time.Local)
	if _, err := s.Every(1).Day().At(config.Env("LOW_STOCK_CHECK_AT", "07:00")).Do(utils.CheckLowStock); err != nil {
		log.Printf("Failed to schedule low stock check: %v", err)
	}
	s.StartAsync()

	routes.InitializeRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "1414"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
