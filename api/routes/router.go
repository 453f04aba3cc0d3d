package routes

import (
	"net/http"
	"time"

	"github.com/KoIa247/SeatingApp/internal/auth"
	"github.com/KoIa247/SeatingApp/internal/bookings"
	"github.com/KoIa247/SeatingApp/internal/imports"
	"github.com/KoIa247/SeatingApp/internal/shared/config"
	"github.com/KoIa247/SeatingApp/internal/shared/database"
	"github.com/KoIa247/SeatingApp/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config          *config.Config
	db              *database.DB
	importPublisher imports.Publisher
	bookingService  bookings.Service
}

func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetImportPublisher wires the optional Kafka audit publisher. Must be
// called before SetupRoutes.
func (r *Router) SetImportPublisher(p imports.Publisher) {
	r.importPublisher = p
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Booking routes must come first: the import pipeline persists
		// through the booking service.
		r.setupBookingRoutes(api)
		r.setupImportRoutes(api)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "seatingapp-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "seatingapp-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo, r.config)

	if r.db.Redis != nil {
		bookingService.SetCacheService(cache.NewService(r.db.Redis))
	}

	// Keep the service around for the import store adapter.
	r.bookingService = bookingService

	bookingController := bookings.NewController(bookingService)
	bookings.SetupBookingRoutes(rg, bookingController, r.config)
}

func (r *Router) setupImportRoutes(rg *gin.RouterGroup) {
	store := bookings.NewImportStoreAdapter(r.bookingService)
	parser := imports.NewParser(imports.Calendar{
		Year:  r.config.Event.Year,
		Month: time.Month(r.config.Event.Month),
	})

	importService := imports.NewService(store, parser)
	if r.importPublisher != nil {
		importService.SetPublisher(r.importPublisher)
	}

	importController := imports.NewController(importService, r.config)
	imports.SetupImportRoutes(rg, importController, r.config)
}
