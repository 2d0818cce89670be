package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zoh007/claims-management-system/internal/export"
	"github.com/Zoh007/claims-management-system/internal/port"
	"github.com/Zoh007/claims-management-system/internal/service"
)

// ClaimHandler handles claim read and export endpoints.
type ClaimHandler struct {
	claimService service.ClaimService
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(claimService service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// List handles GET /api/v1/claims
func (h *ClaimHandler) List(c *gin.Context) {
	filter := port.ClaimFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Insurer: c.Query("insurer"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))

	result, err := h.claimService.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Get handles GET /api/v1/claims/:claimID
func (h *ClaimHandler) Get(c *gin.Context) {
	view, err := h.claimService.Get(c.Request.Context(), c.Param("claimID"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// FilterOptions handles GET /api/v1/claims/filters
func (h *ClaimHandler) FilterOptions(c *gin.Context) {
	opts, err := h.claimService.FilterOptions(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, opts)
}

// Export handles GET /api/v1/claims/export?format=csv|json|xlsx
func (h *ClaimHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	claims, details, err := h.claimService.ExportData(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	switch format {
	case "csv":
		filename := export.BuildFilename("claims", "csv")
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Writer.WriteHeader(http.StatusOK)
		if _, err := c.Writer.Write(export.BOM); err != nil {
			return
		}
		w := export.NewWriter(c.Writer)
		if err := w.WriteHeader(); err != nil {
			return
		}
		if err := w.WriteClaims(claims, details); err != nil {
			return
		}
		w.Flush()

	case "json":
		filename := export.BuildFilename("claims", "json")
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/json")
		c.Writer.WriteHeader(http.StatusOK)
		_ = export.WriteJSON(c.Writer, claims, details)

	case "xlsx":
		filename := export.BuildFilename("claims", "xlsx")
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Writer.WriteHeader(http.StatusOK)
		_ = export.WriteXLSX(c.Writer, claims, details)

	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv, json, or xlsx")
	}
}
