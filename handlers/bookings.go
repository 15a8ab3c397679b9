package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking/models"
	"train-booking/services"
)

// CalculateFare prices a booking form without saving it
func CalculateFare(c *gin.Context) {
	var req models.FareRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	c.JSON(http.StatusOK, services.CalculateFare(req.Passengers, req.SelectedClass, req.ClassPrice))
}

// CreateBooking creates a new booking for the signed in user
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	booking, err := services.CreateBooking(c.Request.Context(), GetUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BookingResponse{
		Success: true,
		Message: "Booking created successfully",
		Booking: booking,
	})
}

// GetBookings lists the signed in user's bookings
func GetBookings(c *gin.Context) {
	bookings, err := services.GetUserBookings(c.Request.Context(), GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a booking by id
func GetBooking(c *gin.Context) {
	booking, err := services.GetBooking(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking cancels one of the signed in user's bookings
func CancelBooking(c *gin.Context) {
	booking, err := services.CancelBooking(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Success: true,
		Message: fmt.Sprintf("Booking %s cancelled successfully", booking.ID),
		Booking: booking,
	})
}

// GetTicket renders the booking's e-ticket as a PDF
func GetTicket(c *gin.Context) {
	booking, err := services.GetBooking(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdf, err := services.RenderTicket(*booking)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="ticket-%s.pdf"`, booking.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
