package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers and the session gate that
// routes.SetupRoutes wires together.
type HandlerBundle struct {
	// Session gate applied to protected routes
	SessionAuth gin.HandlerFunc

	// Liveness
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Session endpoints
	IssueSessionHandler gin.HandlerFunc
	ClearSessionHandler gin.HandlerFunc

	// Room endpoints
	GetRoomsHandler         gin.HandlerFunc
	GetRoomByIDHandler      gin.HandlerFunc
	UpdateRoomStatusHandler gin.HandlerFunc

	// Booking endpoints
	GetBookingsHandler        gin.HandlerFunc
	CreateBookingHandler      gin.HandlerFunc
	GetBookingByIDHandler     gin.HandlerFunc
	UpdateBookingDatesHandler gin.HandlerFunc
	DeleteBookingHandler      gin.HandlerFunc

	// Review endpoints
	GetReviewsHandler   gin.HandlerFunc
	CreateReviewHandler gin.HandlerFunc
}

// NewHandlerBundle collects the handler methods into a bundle.
func NewHandlerBundle(
	sessionAuth gin.HandlerFunc,
	health *HealthHandler,
	sessions *SessionHandler,
	rooms *RoomHandler,
	bookings *BookingHandler,
	reviews *ReviewHandler,
) *HandlerBundle {
	return &HandlerBundle{
		SessionAuth: sessionAuth,

		RootHandler:   health.RootHandler,
		HealthHandler: health.HealthCheckHandler,

		IssueSessionHandler: sessions.IssueSessionHandler,
		ClearSessionHandler: sessions.ClearSessionHandler,

		GetRoomsHandler:         rooms.GetRoomsHandler,
		GetRoomByIDHandler:      rooms.GetRoomByIDHandler,
		UpdateRoomStatusHandler: rooms.UpdateRoomStatusHandler,

		GetBookingsHandler:        bookings.GetBookingsHandler,
		CreateBookingHandler:      bookings.CreateBookingHandler,
		GetBookingByIDHandler:     bookings.GetBookingByIDHandler,
		UpdateBookingDatesHandler: bookings.UpdateBookingDatesHandler,
		DeleteBookingHandler:      bookings.DeleteBookingHandler,

		GetReviewsHandler:   reviews.GetReviewsHandler,
		CreateReviewHandler: reviews.CreateReviewHandler,
	}
}
