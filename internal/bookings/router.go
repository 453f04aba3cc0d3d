package bookings

import (
	"github.com/KoIa247/SeatingApp/internal/shared/config"
	"github.com/KoIa247/SeatingApp/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes registers the booking routes. Reads are open to any
// authenticated user; mutations stay admin-only.
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	bookingsGroup := rg.Group("/bookings")
	bookingsGroup.Use(middleware.JWTAuthWithConfig(cfg))
	{
		bookingsGroup.GET("", controller.GetBookings)
		bookingsGroup.GET("/instances", controller.ListInstances)
		bookingsGroup.GET("/occupancy", controller.GetOccupancy)
		bookingsGroup.GET("/roles", controller.GetSeatRoles)

		admin := bookingsGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.PUT("/seat", controller.AssignSeat)
			admin.POST("/seats", controller.AssignSeats)
			admin.DELETE("/seat", controller.RemoveSeat)
			admin.DELETE("", controller.ClearInstance)
		}
	}
}
