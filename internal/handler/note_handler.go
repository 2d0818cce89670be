package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zoh007/claims-management-system/internal/middleware"
	"github.com/Zoh007/claims-management-system/internal/service"
)

// NoteHandler handles note endpoints.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// Create handles POST /api/v1/claims/:claimID/notes
func (h *NoteHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var input service.CreateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), c.Param("claimID"), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, note)
}

// ListByClaim handles GET /api/v1/claims/:claimID/notes
func (h *NoteHandler) ListByClaim(c *gin.Context) {
	notes, err := h.noteService.ListByClaim(c.Request.Context(), c.Param("claimID"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, notes)
}

// Delete handles DELETE /api/v1/notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid note id")
		return
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": id})
}
