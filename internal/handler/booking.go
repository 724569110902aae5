package handler

import (
	"errors"
	"net/http"
	"time"

	"mindcare/internal/logger"
	"mindcare/internal/model"
	"mindcare/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct{ bookings *service.BookingService }

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// BookingView is a booking plus its derived meeting link.
type BookingView struct {
	model.Booking
	JitsiLink string `json:"jitsi_link"`
}

func view(b model.Booking) BookingView {
	return BookingView{Booking: b, JitsiLink: service.MeetingLink(b.JitsiRoomCode)}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := parseBookingDate(req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	uid := c.GetString("user_id")
	b, err := h.bookings.Create(c.Request.Context(), uid, c.GetString("user_name"), c.GetString("user_email"), req.TherapistID, date)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": userMessage(err)})
		return
	}

	logger.Info("booking.created", "uid", uid, "booking_id", b.ID, "therapist_id", b.TherapistID)
	c.JSON(http.StatusOK, view(*b))
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, view(b))
	}
	c.JSON(http.StatusOK, views)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := parseBookingDate(req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format"})
		return
	}

	uid := c.GetString("user_id")
	id := c.Param("id")
	if err := h.bookings.Reschedule(c.Request.Context(), uid, id, date); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": userMessage(err)})
		return
	}

	logger.Info("booking.rescheduled", "uid", uid, "booking_id", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseBookingDate keeps an absent date as the zero time so the workflow's
// required-field check answers it; only a malformed value is an error here.
func parseBookingDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	uid := c.GetString("user_id")
	id := c.Param("id")
	if err := h.bookings.Cancel(c.Request.Context(), uid, id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrValidation) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": userMessage(err)})
		return
	}

	logger.Info("booking.deleted", "uid", uid, "booking_id", id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
