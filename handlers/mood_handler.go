package handlers

import (
	"net/http"

	"moodsync-backend/service"

	"github.com/gin-gonic/gin"
)

// MoodHandler handles HTTP requests for mood check-ins and insights
type MoodHandler struct {
	moodService *service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService *service.MoodService) *MoodHandler {
	return &MoodHandler{moodService: moodService}
}

// SubmitMoodRequest represents the request body for a mood check-in.
// Levels are intended to be 1-10 but are stored as submitted.
type SubmitMoodRequest struct {
	Emotion         string `json:"emotion" binding:"required"`
	EmotionLevel    int    `json:"emotion_level"`
	EnergyLevel     int    `json:"energy_level"`
	FocusLevel      int    `json:"focus_level"`
	Overthinking    string `json:"overthinking"`
	Trigger         string `json:"trigger"`
	Pattern         string `json:"pattern"`
	UnderlyingCause string `json:"underlying_cause"`
	AdditionalNotes string `json:"additional_notes"`
}

// Submit handles POST /api/mood/submit
func (h *MoodHandler) Submit(c *gin.Context) {
	var req SubmitMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	entry, err := h.moodService.Submit(c.Request.Context(), service.SubmitMoodRequest{
		UserID:          callerID(c),
		Emotion:         req.Emotion,
		EmotionLevel:    req.EmotionLevel,
		EnergyLevel:     req.EnergyLevel,
		FocusLevel:      req.FocusLevel,
		Overthinking:    req.Overthinking,
		Trigger:         req.Trigger,
		Pattern:         req.Pattern,
		UnderlyingCause: req.UnderlyingCause,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "SUBMIT_FAILED", err.Error())
		return
	}

	respondCreated(c, entry)
}

// History handles GET /api/mood/history
func (h *MoodHandler) History(c *gin.Context) {
	limit := intQuery(c, "limit", 30)

	entries, err := h.moodService.History(c.Request.Context(), callerID(c), limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "HISTORY_FAILED", err.Error())
		return
	}

	respondOK(c, entries)
}

// Trends handles GET /api/mood/trends
func (h *MoodHandler) Trends(c *gin.Context) {
	days := intQuery(c, "days", 14)

	trends, err := h.moodService.Trends(c.Request.Context(), callerID(c), days)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "TRENDS_FAILED", err.Error())
		return
	}

	respondOK(c, trends)
}

// TriggerInsights handles GET /api/mood/trigger-insights
func (h *MoodHandler) TriggerInsights(c *gin.Context) {
	insights, err := h.moodService.TriggerInsights(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INSIGHTS_FAILED", err.Error())
		return
	}

	respondOK(c, insights)
}

// TriggerHeatmap handles GET /api/mood/trigger-heatmap
func (h *MoodHandler) TriggerHeatmap(c *gin.Context) {
	rows, err := h.moodService.TriggerHeatmap(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "HEATMAP_FAILED", err.Error())
		return
	}

	respondOK(c, rows)
}
