package handlers

import (
	"errors"
	"net/http"

	"moodsync-backend/service"

	"github.com/gin-gonic/gin"
)

// GratitudeHandler handles HTTP requests for the gratitude journal
type GratitudeHandler struct {
	gratitudeService *service.GratitudeService
}

// NewGratitudeHandler creates a new gratitude handler
func NewGratitudeHandler(gratitudeService *service.GratitudeService) *GratitudeHandler {
	return &GratitudeHandler{gratitudeService: gratitudeService}
}

// AddGratitudeRequest represents the request body for a gratitude entry
type AddGratitudeRequest struct {
	Content string `json:"content" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// Add handles POST /api/gratitude/add
func (h *GratitudeHandler) Add(c *gin.Context) {
	var req AddGratitudeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	entry, err := h.gratitudeService.Add(c.Request.Context(), callerID(c), req.Content, req.Date)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ADD_FAILED", err.Error())
		return
	}

	respondCreated(c, entry)
}

// List handles GET /api/gratitude/entries
func (h *GratitudeHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", 30)

	entries, err := h.gratitudeService.List(c.Request.Context(), callerID(c), limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}

	respondOK(c, entries)
}

// Delete handles DELETE /api/gratitude/delete/:id. Deletion is by id
// only; it is not scoped to the owning user.
func (h *GratitudeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.gratitudeService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Gratitude entry not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
		return
	}

	respondOK(c, gin.H{"deleted": id})
}
