package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/parlay-optimizer/internal/api/handlers"
	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
	"github.com/jstittsworth/parlay-optimizer/internal/services"
	"github.com/jstittsworth/parlay-optimizer/pkg/database"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, db *database.DB, cache *services.CacheService, runner *services.RunnerService, engine optimizer.Config) {
	// Initialize handlers
	poolHandler := handlers.NewPoolHandler(db, cache)
	reportHandler := handlers.NewReportHandler(db, runner, engine)

	// Pool endpoints
	group.POST("/pools", poolHandler.CreatePool)
	group.GET("/pools/:id", poolHandler.GetPool)
	group.POST("/pools/:id/optimize", reportHandler.Optimize)

	// Report endpoints
	group.GET("/reports/:id", reportHandler.GetReport)
	group.GET("/reports/:id/markdown", reportHandler.GetReportMarkdown)
	group.GET("/reports/:id/csv", reportHandler.GetReportCSV)
}
