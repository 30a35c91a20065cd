package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nedhal-be/internal/models"
	"nedhal-be/internal/season"
	"nedhal-be/internal/services"
)

type SeasonsHandler struct {
	stats *services.StatsService
}

func NewSeasonsHandler(stats *services.StatsService) *SeasonsHandler {
	return &SeasonsHandler{stats: stats}
}

// resolveSeason picks the season from the query or falls back to the one
// containing now.
func resolveSeason(c *gin.Context, now time.Time) (string, bool) {
	label := c.Query("season")
	if label == "" {
		current, err := season.Current(now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "season_resolution_failed",
				Message: err.Error(),
			})
			return "", false
		}
		return current, true
	}

	// Return the canonical form, not the raw query: a variant spelling would
	// pass validation yet never match the labels the data carries.
	canonical, err := season.Canonical(label)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unknown_season",
			Message: err.Error(),
		})
		return "", false
	}
	return canonical, true
}

// List godoc
// @Summary Seasons observed in the data
// @Tags seasons
// @Produce json
// @Success 200 {array} models.SeasonInfo
// @Failure 500 {object} models.ErrorResponse
// @Router /seasons [get]
func (h *SeasonsHandler) List(c *gin.Context) {
	infos, err := h.stats.Seasons(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, infos)
}

// Current godoc
// @Summary The season containing today
// @Tags seasons
// @Produce json
// @Success 200 {object} models.SeasonInfo
// @Failure 500 {object} models.ErrorResponse
// @Router /seasons/current [get]
func (h *SeasonsHandler) Current(c *gin.Context) {
	now := time.Now()

	label, err := season.Current(now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "season_resolution_failed", Message: err.Error()})
		return
	}

	id, err := season.ID(label)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "season_resolution_failed", Message: err.Error()})
		return
	}

	start, err := season.StartDate(label)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "season_resolution_failed", Message: err.Error()})
		return
	}

	week, err := season.Week(label, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "season_resolution_failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SeasonInfo{
		ID:        id,
		Label:     label,
		StartDate: start.Format("2006-01-02"),
		Week:      week,
	})
}

// Comparison godoc
// @Summary Cross-season aggregates
// @Tags seasons
// @Produce json
// @Success 200 {array} models.SeasonComparison
// @Failure 500 {object} models.ErrorResponse
// @Router /seasons/comparison [get]
func (h *SeasonsHandler) Comparison(c *gin.Context) {
	rows, err := h.stats.Comparison(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
