package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zoh007/claims-management-system/internal/middleware"
	"github.com/Zoh007/claims-management-system/internal/service"
)

// FlagHandler handles flag endpoints.
type FlagHandler struct {
	flagService service.FlagService
}

// NewFlagHandler creates a new FlagHandler.
func NewFlagHandler(flagService service.FlagService) *FlagHandler {
	return &FlagHandler{flagService: flagService}
}

// Create handles POST /api/v1/claims/:claimID/flags
func (h *FlagHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var input service.CreateFlagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	flag, err := h.flagService.Create(c.Request.Context(), c.Param("claimID"), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, flag)
}

// ListByClaim handles GET /api/v1/claims/:claimID/flags
func (h *FlagHandler) ListByClaim(c *gin.Context) {
	flags, err := h.flagService.ListByClaim(c.Request.Context(), c.Param("claimID"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, flags)
}

// ListRecent handles GET /api/v1/flags/recent
func (h *FlagHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	flags, err := h.flagService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, flags)
}

// Delete handles DELETE /api/v1/flags/:id
func (h *FlagHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid flag id")
		return
	}

	if err := h.flagService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": id})
}
