package api

import (
	"alcyxob/exercise-tracker/internal/metrics"
	"alcyxob/exercise-tracker/internal/service"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ClearTheDecks godoc
// @Summary Delete every user
// @Description Gated by a fixed delete code in the path. A wrong code deletes nothing.
// @Tags Admin
// @Produce json
// @Param deleteCode path string true "Delete code"
// @Success 200 {object} gin.H
// @Failure 503 {object} gin.H "Store or archive unavailable"
// @Router /users/clearTheDecks/{deleteCode} [get]
func (h *AdminHandler) ClearTheDecks(c *gin.Context) {
	result, err := h.adminService.ClearTheDecks(c.Request.Context(), c.Param("deleteCode"))
	if err != nil {
		respondWithServiceError(c, "clear the decks", err)
		return
	}

	if !result.Authorized {
		c.JSON(http.StatusOK, gin.H{"Nice work chief": nil})
		return
	}

	metrics.DecksClearedTotal.Inc()
	if result.ArchiveKey != "" {
		log.Printf("INFO: [%s] Deleted %d users (archived to %s)", getRequestIDFromContext(c), result.Deleted, result.ArchiveKey)
	} else {
		log.Printf("INFO: [%s] Deleted %d users", getRequestIDFromContext(c), result.Deleted)
	}
	c.JSON(http.StatusOK, gin.H{"isItDone?": "it has been done!"})
}
