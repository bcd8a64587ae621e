package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gorillaHandlers "github.com/gorilla/handlers"

	"tahfidz/config"
	"tahfidz/db"
	"tahfidz/middleware"
	"tahfidz/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ConfigInstance = cfg

	database, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database connection: %v", err)
	}
	defer database.Close()

	if err := db.InitSchema(database, cfg.DBDriver); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.Seed(database); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	middleware.ApplyMiddleware(router)

	router.Use(func(c *gin.Context) {
		c.Set("db", database)
		c.Next()
	})

	routes.SetupRoutes(router)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, gorillaHandlers.CombinedLoggingHandler(os.Stdout, router)))
}
