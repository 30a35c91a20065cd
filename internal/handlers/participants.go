package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sahilm/fuzzy"

	"nedhal-be/internal/models"
	"nedhal-be/internal/services"
)

type ParticipantsHandler struct {
	stats *services.StatsService
}

func NewParticipantsHandler(stats *services.StatsService) *ParticipantsHandler {
	return &ParticipantsHandler{stats: stats}
}

// Search godoc
// @Summary Fuzzy-search participant names within a season
// @Tags participants
// @Produce json
// @Param q query string true "Search query"
// @Param season query string false "Season label, defaults to the current season"
// @Success 200 {array} string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /participants/search [get]
func (h *ParticipantsHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "q query parameter is required",
		})
		return
	}

	now := time.Now()
	label, ok := resolveSeason(c, now)
	if !ok {
		return
	}

	names, err := h.stats.ParticipantNames(label, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: err.Error()})
		return
	}

	matches := fuzzy.Find(query, names)
	results := make([]string, 0, len(matches))
	for _, m := range matches {
		results = append(results, names[m.Index])
	}

	c.JSON(http.StatusOK, results)
}

// Detail godoc
// @Summary Individual results for one participant
// @Description Days without reading, average per reading day, the idea invoice, and the monthly heatmap
// @Tags participants
// @Produce json
// @Param name path string true "Participant display name"
// @Param season query string false "Season label, defaults to the current season"
// @Success 200 {object} models.ParticipantDetail
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /participants/{name} [get]
func (h *ParticipantsHandler) Detail(c *gin.Context) {
	now := time.Now()
	label, ok := resolveSeason(c, now)
	if !ok {
		return
	}

	detail, err := h.stats.ParticipantDetail(c.Param("name"), label, now)
	if err != nil {
		if errors.Is(err, services.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "No such participant in this season",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "server_error", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}
