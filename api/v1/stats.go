package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atolyedigital/agency-api/repositories"
	"github.com/atolyedigital/agency-api/services"
)

// StatsController exposes the aggregate counters endpoint
type StatsController struct {
	service *services.StatsService
}

// NewStatsController creates a new stats controller instance
func NewStatsController(store repositories.Store) *StatsController {
	return &StatsController{service: services.NewStatsService(store)}
}

// GetStats returns summary counters over proposals, projects and blogs
func (ctrl *StatsController) GetStats(c *gin.Context) {
	stats, err := ctrl.service.GetStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
