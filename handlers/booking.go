package handlers

import (
	"errors"
	"net/http"

	"greenvilla/models"
	"greenvilla/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BookingHandler serves the bookings of the signed-in guest.
type BookingHandler struct {
	Service booking.Service
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.Service) *BookingHandler {
	return &BookingHandler{Service: service}
}

// GetBookingsHandler handles GET /bookings?email=.
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	owner, ok := sessionEmail(c)
	if !ok {
		return
	}
	bookings, err := h.Service.List(c.Request.Context(), owner, c.Query("email"))
	if err != nil {
		respondError(c, "list bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBookingHandler handles POST /bookings. The known fields are
// validated; the whole payload is stored.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	owner, ok := sessionEmail(c)
	if !ok {
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		respondBindError(c, err)
		return
	}
	var payload models.Document
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		respondBindError(c, err)
		return
	}
	if payload == nil {
		respondBindError(c, errors.New("booking must be a JSON object"))
		return
	}

	result, err := h.Service.Create(c.Request.Context(), owner, payload)
	if err != nil {
		respondError(c, "create booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookingByIDHandler handles GET /bookings/:id. Unknown or foreign
// bookings yield a null body.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	owner, ok := sessionEmail(c)
	if !ok {
		return
	}
	b, err := h.Service.Get(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		respondError(c, "get booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingDatesHandler handles PATCH /bookings/:id. Only checkingDate
// and checkOutdate are applied.
func (h *BookingHandler) UpdateBookingDatesHandler(c *gin.Context) {
	owner, ok := sessionEmail(c)
	if !ok {
		return
	}

	var dates models.BookingDatesUpdate
	if err := c.ShouldBindJSON(&dates); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.Service.UpdateDates(c.Request.Context(), owner, c.Param("id"), dates)
	if err != nil {
		respondError(c, "update booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteBookingHandler handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	owner, ok := sessionEmail(c)
	if !ok {
		return
	}
	result, err := h.Service.Delete(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		respondError(c, "delete booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
