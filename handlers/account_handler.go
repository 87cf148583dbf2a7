package handlers

import (
	"net/http"

	"moodsync-backend/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for user-data erasure
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// DeleteUserData handles DELETE /api/user/data. Identity is required;
// the user account record itself is left in place.
func (h *AccountHandler) DeleteUserData(c *gin.Context) {
	userID := callerID(c)
	if userID == "" {
		respondError(c, http.StatusUnauthorized, "IDENTITY_REQUIRED", "X-User-Id header is required")
		return
	}

	result, err := h.accountService.EraseUserData(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ERASE_FAILED", err.Error())
		return
	}

	respondOK(c, result)
}
