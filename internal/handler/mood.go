package handler

import (
	"errors"
	"net/http"
	"strings"

	"mindcare/internal/logger"
	"mindcare/internal/model"
	"mindcare/internal/service"

	"github.com/gin-gonic/gin"
)

type MoodHandler struct{ moods *service.MoodService }

func NewMoodHandler(moods *service.MoodService) *MoodHandler { return &MoodHandler{moods: moods} }

func (h *MoodHandler) Create(c *gin.Context) {
	var req model.MoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	uid := c.GetString("user_id")
	m, err := h.moods.Log(c.Request.Context(), uid, req.MoodLevel, req.Notes)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": userMessage(err)})
		return
	}

	logger.Info("mood.logged", "uid", uid, "level", m.MoodLevel)
	c.JSON(http.StatusOK, m)
}

func (h *MoodHandler) Recent(c *gin.Context) {
	moods, err := h.moods.Recent(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": userMessage(err)})
		return
	}
	c.JSON(http.StatusOK, moods)
}

// userMessage strips the validation sentinel prefix from user-facing copy.
func userMessage(err error) string {
	return strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
}
