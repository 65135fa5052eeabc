// internal/api/routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"swastik-transport-api-server/config"
	"swastik-transport-api-server/internal/api/handlers"
	"swastik-transport-api-server/internal/api/middleware"
	"swastik-transport-api-server/internal/pricing"
	"swastik-transport-api-server/internal/refid"
	"swastik-transport-api-server/internal/repository"
	"swastik-transport-api-server/internal/socket"
)

// SetupRouter wires the repositories and handlers and registers the routes.
func SetupRouter(
	cfg config.Config,
	db *pgxpool.Pool,
	files handlers.FileStore,
	hub *socket.Hub,
	refs *refid.Generator,
	estimator *pricing.Estimator,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	jwtSecret := []byte(cfg.JWT.Secret)
	jwtExpiry, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		jwtExpiry = 24 * time.Hour
	}

	quoteRepo := repository.NewQuoteRepository(db)
	serviceRequestRepo := repository.NewServiceRequestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	contactRepo := repository.NewContactRepository(db)
	userRepo := repository.NewUserRepository(db)

	quoteHandler := &handlers.QuoteHandler{Store: quoteRepo, Refs: refs, Estimator: estimator}
	serviceRequestHandler := &handlers.ServiceRequestHandler{Store: serviceRequestRepo, Refs: refs}
	bookingHandler := &handlers.BookingHandler{Store: bookingRepo, Refs: refs, Hub: hub}
	trackingHandler := &handlers.TrackingHandler{Store: trackingRepo}
	applicationHandler := &handlers.ApplicationHandler{Store: applicationRepo, Files: files, Refs: refs}
	contactHandler := &handlers.ContactHandler{Store: contactRepo, Refs: refs}
	userHandler := &handlers.UserHandler{
		Store:     userRepo,
		JWTSecret: jwtSecret,
		JWTExpiry: jwtExpiry,
		AdminCode: cfg.Admin.RegistrationCode,
	}
	adminHandler := &handlers.AdminHandler{
		Quotes:          quoteRepo,
		ServiceRequests: serviceRequestRepo,
		Bookings:        bookingRepo,
		Applications:    applicationRepo,
		Contacts:        contactRepo,
		Tracking:        trackingRepo,
		Hub:             hub,
	}
	webSocketHandler := &handlers.WebSocketHandler{Hub: hub, JWTSecret: jwtSecret}

	api := router.Group("/api")
	{
		// Public form endpoints
		api.POST("/quote", quoteHandler.CreateQuote)
		api.POST("/service-request", serviceRequestHandler.CreateServiceRequest)
		api.POST("/transport-booking", bookingHandler.CreateBooking)
		api.GET("/track/:trackingNumber", trackingHandler.GetTracking)
		api.POST("/job-application", applicationHandler.CreateApplication)
		api.POST("/contact", contactHandler.CreateContact)

		// Tracking update feed
		api.GET("/ws", webSocketHandler.ServeWs)

		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/register/customer", userHandler.RegisterCustomer)
			auth.POST("/register/admin", userHandler.RegisterAdmin)
			auth.POST("/register/social", userHandler.RegisterSocial)
			auth.POST("/login", userHandler.Login)
		}

		// Admin surface, requires the "admin" role
		admin := api.Group("/admin")
		admin.Use(middleware.Authenticate(jwtSecret))
		admin.Use(middleware.Authorize("admin"))
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/quotes", adminHandler.ListQuotes)
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.GET("/applications", adminHandler.ListApplications)
			admin.GET("/messages", adminHandler.ListMessages)
			admin.POST("/tracking", adminHandler.AppendTracking)
		}
	}

	return router
}
