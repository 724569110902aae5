package handler

import (
	"net/http"

	"mindcare/internal/logger"
	"mindcare/internal/model"
	"mindcare/internal/service"

	"github.com/gin-gonic/gin"
)

// NotifyHandler exposes the booking-email dispatch as a standalone function
// endpoint so cross-origin callers can invoke it directly.
type NotifyHandler struct{ notifier service.BookingNotifier }

func NewNotifyHandler(notifier service.BookingNotifier) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

func setFunctionCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

func (h *NotifyHandler) Options(c *gin.Context) {
	setFunctionCORS(c)
	c.Status(http.StatusNoContent)
}

func (h *NotifyHandler) SendBookingEmail(c *gin.Context) {
	setFunctionCORS(c)

	var req model.BookingEmail
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid request"})
		return
	}

	if err := h.notifier.SendBookingEmail(c.Request.Context(), req); err != nil {
		logger.Error("booking email dispatch failed", "room", req.JitsiRoomCode, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("booking email dispatched", "room", req.JitsiRoomCode, "user", req.UserEmail)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
