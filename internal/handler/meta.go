package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Index answers the root route with API metadata.
func (h *MetaHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the storefront API",
		"version": apiVersion,
		"endpoints": gin.H{
			"users":    "/api/users",
			"products": "/api/products",
			"orders":   "/api/orders",
			"stats":    "/api/stats",
		},
	})
}

func (h *MetaHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
