package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nedhal-be/internal/models"
	"nedhal-be/internal/services"
)

type AdminHandler struct {
	refresher *services.RefreshService
	store     *services.DataStore
}

func NewAdminHandler(refresher *services.RefreshService, store *services.DataStore) *AdminHandler {
	return &AdminHandler{refresher: refresher, store: store}
}

// ForceRefresh godoc
// @Summary Run a fetch-and-recompute cycle immediately
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/refresh [post]
func (h *AdminHandler) ForceRefresh(c *gin.Context) {
	if err := h.refresher.Refresh(c.Request.Context()); err != nil {
		if errors.Is(err, services.ErrRefreshInFlight) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "refresh_in_flight",
				Message: "A refresh cycle is already running",
			})
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "refresh_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Refresh completed"})
}

// Warnings godoc
// @Summary Suspicious rows flagged during the last refresh
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.AdminWarning
// @Router /admin/warnings [get]
func (h *AdminHandler) Warnings(c *gin.Context) {
	warnings := h.store.Warnings()
	if warnings == nil {
		warnings = []models.AdminWarning{}
	}
	c.JSON(http.StatusOK, warnings)
}
