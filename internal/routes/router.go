package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier-track/internal/config"
	"courier-track/internal/delivery/http/handler"
	"courier-track/internal/infrastructure/database/postgres"
	"courier-track/internal/logger"
	"courier-track/internal/middleware"
	"courier-track/internal/usecase/payment"
	"courier-track/internal/usecase/shipment"
	"courier-track/internal/usecase/support"
	"courier-track/internal/usecase/user"
)

// Services bundles the wired use-case layer so other entry points (the
// MQTT ingestion worker) can share the same instances.
type Services struct {
	User     *user.Service
	Shipment *shipment.Service
	Payment  *payment.Service
	Support  *support.Service
}

func BuildServices(cfg *config.Config, db *postgres.DB) *Services {
	userRepository := postgres.NewUserRepository(db)
	refreshTokenRepository := postgres.NewRefreshTokenRepository(db)
	shipmentRepository := postgres.NewShipmentRepository(db)
	paymentRepository := postgres.NewPaymentRepository(db)
	supportRepository := postgres.NewSupportRepository(db)

	return &Services{
		User:     user.NewService(userRepository, refreshTokenRepository, cfg),
		Shipment: shipment.NewService(shipmentRepository, userRepository),
		Payment:  payment.NewService(paymentRepository, shipmentRepository),
		Support:  support.NewService(supportRepository, shipmentRepository),
	}
}

func SetupRoutes(cfg *config.Config, db *postgres.DB, services *Services) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security
	// headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userHandler := handler.NewUserHandler(services.User)
	shipmentHandler := handler.NewShipmentHandler(services.Shipment)
	paymentHandler := handler.NewPaymentHandler(services.Payment)
	supportHandler := handler.NewSupportHandler(services.Support)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)
		shipmentHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProfileRoutes(protected)
			shipmentHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			supportHandler.RegisterRoutes(protected)

			// Courier routes (couriers and admins)
			courier := protected.Group("")
			courier.Use(middleware.CourierOnly())
			{
				shipmentHandler.RegisterCourierRoutes(courier)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
				shipmentHandler.RegisterAdminRoutes(admin)
				supportHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
