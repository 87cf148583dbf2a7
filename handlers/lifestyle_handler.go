package handlers

import (
	"net/http"

	"moodsync-backend/service"

	"github.com/gin-gonic/gin"
)

// LifestyleHandler handles HTTP requests for lifestyle assessments
type LifestyleHandler struct {
	lifestyleService *service.LifestyleService
}

// NewLifestyleHandler creates a new lifestyle handler
func NewLifestyleHandler(lifestyleService *service.LifestyleService) *LifestyleHandler {
	return &LifestyleHandler{lifestyleService: lifestyleService}
}

// AssessRequest represents the request body for a lifestyle assessment.
// Date is a caller-supplied string and is not validated.
type AssessRequest struct {
	SleepQuality     int    `json:"sleep_quality"`
	Nutrition        int    `json:"nutrition"`
	SocialConnection int    `json:"social_connection"`
	PurposeGrowth    int    `json:"purpose_growth"`
	StressManagement int    `json:"stress_management"`
	Notes            string `json:"notes"`
	Date             string `json:"date" binding:"required"`
}

// Assess handles POST /api/lifestyle/assess
func (h *LifestyleHandler) Assess(c *gin.Context) {
	var req AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	assessment, err := h.lifestyleService.Assess(c.Request.Context(), service.AssessRequest{
		UserID:           callerID(c),
		SleepQuality:     req.SleepQuality,
		Nutrition:        req.Nutrition,
		SocialConnection: req.SocialConnection,
		PurposeGrowth:    req.PurposeGrowth,
		StressManagement: req.StressManagement,
		Notes:            req.Notes,
		Date:             req.Date,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ASSESS_FAILED", err.Error())
		return
	}

	respondCreated(c, assessment)
}

// History handles GET /api/lifestyle/history
func (h *LifestyleHandler) History(c *gin.Context) {
	limit := intQuery(c, "limit", 10)

	assessments, err := h.lifestyleService.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "HISTORY_FAILED", err.Error())
		return
	}

	respondOK(c, assessments)
}

// WeeklyReport handles GET /api/lifestyle/weekly-report
func (h *LifestyleHandler) WeeklyReport(c *gin.Context) {
	report, err := h.lifestyleService.WeeklyReport(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "REPORT_FAILED", err.Error())
		return
	}

	respondOK(c, report)
}
