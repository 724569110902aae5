package handler

import (
	"errors"
	"net/http"

	"mindcare/internal/logger"
	"mindcare/internal/model"
	"mindcare/internal/service"

	"github.com/gin-gonic/gin"
)

type SymptomHandler struct{ advice *service.AdviceService }

func NewSymptomHandler(advice *service.AdviceService) *SymptomHandler {
	return &SymptomHandler{advice: advice}
}

func (h *SymptomHandler) Check(c *gin.Context) {
	var req model.SymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	uid := c.GetString("user_id")
	reply, err := h.advice.Check(c.Request.Context(), uid, req.Symptoms)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": userMessage(err)})
		return
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again in a moment."})
		return
	case errors.Is(err, service.ErrUnavailable):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "AI service is temporarily unavailable."})
		return
	default:
		logger.Error("symptom check failed", "uid", uid, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze symptoms"})
		return
	}

	logger.Info("symptom.checked", "uid", uid)
	c.JSON(http.StatusOK, model.SymptomResponse{Response: reply})
}
