package handler

import (
	"net/http"

	"mindcare/internal/logger"
	"mindcare/internal/middleware"
	"mindcare/internal/model"
	"mindcare/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		logger.Warn("register.failed", "email", req.Email, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("register.ok", "uid", u.ID, "email", u.Email)
	token, _ := middleware.SignToken(u.ID, u.FullName, u.Email)
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  sessionUser(u),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	logger.Info("login.ok", "uid", u.ID, "email", u.Email)
	token, _ := middleware.SignToken(u.ID, u.FullName, u.Email)
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  sessionUser(u),
	})
}

func sessionUser(u *model.User) model.SessionUser {
	return model.SessionUser{ID: u.ID, Email: u.Email, FullName: u.FullName, AvatarURL: u.AvatarURL}
}
