package imports

import (
	"github.com/KoIa247/SeatingApp/internal/shared/config"
	"github.com/KoIa247/SeatingApp/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupImportRoutes registers the spreadsheet import endpoint. Imports
// mutate bookings in bulk, so they are admin-only.
func SetupImportRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	importsGroup := rg.Group("/imports")
	importsGroup.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		importsGroup.POST("/spreadsheet", controller.ImportSpreadsheet)
	}
}
