package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmaia/storefront-api/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.statsService.Collect(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(c, http.StatusOK, stats)
}
