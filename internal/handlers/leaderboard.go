package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nedhal-be/internal/models"
	"nedhal-be/internal/services"
)

type LeaderboardHandler struct {
	stats *services.StatsService
}

func NewLeaderboardHandler(stats *services.StatsService) *LeaderboardHandler {
	return &LeaderboardHandler{stats: stats}
}

// Leaderboard godoc
// @Summary Participants ranked by ideas for a season
// @Tags leaderboard
// @Produce json
// @Param season query string false "Season label, defaults to the current season"
// @Success 200 {object} models.LeaderboardResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	now := time.Now()
	label, ok := resolveSeason(c, now)
	if !ok {
		return
	}

	resp, err := h.stats.Leaderboard(label, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Countdown godoc
// @Summary Days-remaining projection per participant
// @Tags leaderboard
// @Produce json
// @Param season query string false "Season label, defaults to the current season"
// @Success 200 {array} models.CountdownRow
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /countdown [get]
func (h *LeaderboardHandler) Countdown(c *gin.Context) {
	now := time.Now()
	label, ok := resolveSeason(c, now)
	if !ok {
		return
	}

	rows, err := h.stats.Countdown(label, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Expelled godoc
// @Summary Participants currently eligible for expulsion
// @Tags leaderboard
// @Produce json
// @Param season query string false "Season label, defaults to the current season"
// @Success 200 {array} models.ExpelledRow
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /expelled [get]
func (h *LeaderboardHandler) Expelled(c *gin.Context) {
	now := time.Now()
	label, ok := resolveSeason(c, now)
	if !ok {
		return
	}

	rows, err := h.stats.Expelled(label, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Records godoc
// @Summary Top-3 record boards for a season
// @Tags leaderboard
// @Produce json
// @Param season query string false "Season label, defaults to the current season"
// @Success 200 {object} models.RecordsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /records [get]
func (h *LeaderboardHandler) Records(c *gin.Context) {
	now := time.Now()
	label, ok := resolveSeason(c, now)
	if !ok {
		return
	}

	resp, err := h.stats.Records(label, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
