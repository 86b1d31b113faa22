package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"expense-bills-backend/internal/config"
	handler "expense-bills-backend/internal/handlers"
	"expense-bills-backend/internal/middleware"
	"expense-bills-backend/internal/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *slog.Logger) {
	billRepo := repository.NewBillRepository(db)
	billHandler := handler.NewBillHandler(billRepo, cfg.UploadDir, cfg.BaseURL, log)

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Stored proof images are served straight from the upload dir.
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Bill routes
	bills := api.Group("/bills")
	{
		bills.GET("", billHandler.List)
		bills.POST("", billHandler.Create)
		bills.GET("/:id", billHandler.Get)
		bills.PUT("/:id", billHandler.Update)
	}
}
