package main

import (
	"log"
	"time"

	"expense-bills-backend/internal/config"
	"expense-bills-backend/internal/models"
	"expense-bills-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("config:", err)
	}
	logger := cfg.Logger()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalln("database:", err)
	}

	db.AutoMigrate(
		&models.Bill{},
		&models.BillAuditLog{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info("bills API listening", "addr", cfg.Addr())
	r.Run(cfg.Addr())
}
