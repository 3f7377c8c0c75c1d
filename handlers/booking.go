package handlers

import (
	"net/http"
	"time"

	"nivelfit/models"
	"nivelfit/resolvers"
	"nivelfit/services/booking"
	"nivelfit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking CRUD and the wizard session flow.
type BookingHandler struct {
	Service  booking.BookingService
	Resolver *resolvers.Resolver
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, resolver *resolvers.Resolver) *BookingHandler {
	return &BookingHandler{Service: svc, Resolver: resolver}
}

// CreateBookingHandler validates and persists a new booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// GetBookingByIDHandler returns a single booking.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	bookingID := c.Param("id")

	b, err := h.Service.GetBookingByID(bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking", "message": err.Error()})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GetBookingsByDateHandler lists bookings on a calendar day (path date
// formatted YYYY-MM-DD).
func (h *BookingHandler) GetBookingsByDateHandler(c *gin.Context) {
	dateParam := c.Param("date")
	date, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date; expected YYYY-MM-DD"})
		return
	}

	bookings, err := h.Service.GetBookingsByDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": dateParam, "bookings": bookings})
}

// GetBookingsByTrainerHandler lists all bookings for a trainer.
func (h *BookingHandler) GetBookingsByTrainerHandler(c *gin.Context) {
	trainerID := c.Param("trainerID")

	bookings, err := h.Service.GetBookingsByTrainer(trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainerId": trainerID, "bookings": bookings})
}

// UpdateBookingHandler applies a partial update to a booking.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")

	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateBooking(bookingID, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// DeleteBookingHandler removes a booking outright.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")

	if err := h.Service.DeleteBooking(bookingID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// StartSessionHandler opens a wizard session and returns the trainer list.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	resp, err := h.Resolver.BookSession(c.Request.Context(), resolvers.BookSessionInput{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start booking session", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSessionHandler records trainer/date selection and returns availability.
func (h *BookingHandler) UpdateSessionHandler(c *gin.Context) {
	var input resolvers.BookSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	input.SessionID = c.Param("sessionID")
	input.ConfirmedTime = ""

	resp, err := h.Resolver.BookSession(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmSessionHandler finalizes the wizard session into a booking.
func (h *BookingHandler) ConfirmSessionHandler(c *gin.Context) {
	var input resolvers.BookSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if input.SessionID == "" || input.ConfirmedTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sessionID or confirmedTime"})
		return
	}

	resp, err := h.Resolver.BookSession(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelSessionHandler discards a wizard session.
func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Resolver.CancelSession(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel session", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cancelled"})
}
