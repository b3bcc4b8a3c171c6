package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/traqbank/backoffice/internal/core/ports/services"
	"github.com/traqbank/backoffice/internal/dto"
	"github.com/traqbank/backoffice/internal/middleware"
)

// statusHandler serves the seeded status enumeration.
type statusHandler struct {
	statusService portssvc.StatusSvcFacade
}

func newStatusHandler(ss portssvc.StatusSvcFacade) *statusHandler {
	return &statusHandler{statusService: ss}
}

// registerStatusRoutes registers the read-only status routes.
func registerStatusRoutes(rg *gin.RouterGroup, statusService portssvc.StatusSvcFacade) {
	h := newStatusHandler(statusService)
	rg.GET("/statuses", h.listStatuses)
}

// listStatuses godoc
// @Summary List account statuses
// @Description Retrieves the fixed Open/Closed status enumeration
// @Tags statuses
// @Produce  json
// @Success 200 {array} dto.StatusResponse
// @Failure 500 {object} map[string]string "Failed to list statuses"
// @Security BearerAuth
// @Router /statuses [get]
func (h *statusHandler) listStatuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	statuses, err := h.statusService.ListStatuses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list statuses in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list statuses"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListStatusResponse(statuses))
}
