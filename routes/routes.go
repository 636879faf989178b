package routes

import (
	"fmt"
	"time"

	"greenvilla/config"
	"greenvilla/handlers"
	"greenvilla/middleware"
	"greenvilla/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHealthRoutes registers the liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
}

// RegisterSessionRoutes registers cookie issue and logout.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.IssueSessionHandler)
	r.POST("/logout", hb.ClearSessionHandler)
}

// RegisterRoomRoutes registers room endpoints. Reads are public.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	rooms := r.Group("/rooms")
	{
		rooms.GET("", hb.GetRoomsHandler)
		rooms.GET("/:id", hb.GetRoomByIDHandler)
		rooms.PATCH("/:id", hb.SessionAuth, hb.UpdateRoomStatusHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints. All of them require a session.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.Use(hb.SessionAuth)
		bookings.GET("", hb.GetBookingsHandler)
		bookings.POST("", hb.CreateBookingHandler)
		bookings.GET("/:id", hb.GetBookingByIDHandler)
		bookings.PATCH("/:id", hb.UpdateBookingDatesHandler)
		bookings.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterReviewRoutes registers review endpoints. Posting requires a session.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", hb.GetReviewsHandler)
		reviews.POST("", hb.SessionAuth, hb.CreateReviewHandler)
	}
}

// RegisterRoutes installs the global middleware and every endpoint. Only
// cfg.TrustedProxies may set the client IP through forwarding headers.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg *config.Config, logger *zap.Logger) error {
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	r.Use(middleware.RequestLogging(logger))
	r.Use(utils.ErrorHandler(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware())

	RegisterHealthRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	return nil
}
