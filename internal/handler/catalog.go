package handler

import (
	"net/http"

	"mindcare/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{ catalog *service.CatalogService }

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Meditations(c *gin.Context) {
	meditations, err := h.catalog.Meditations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meditations)
}

func (h *CatalogHandler) Therapists(c *gin.Context) {
	therapists, err := h.catalog.Therapists(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, therapists)
}
