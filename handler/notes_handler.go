package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
)

type NoteHandler struct {
	NotesService *usecase.NoteService
}

func NewNoteHandler(notesService *usecase.NoteService) *NoteHandler {
	return &NoteHandler{NotesService: notesService}
}

// ListNotes returns the caller's notes. The owner comes from the
// authenticated identity, so no other user's notes can appear.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID := c.GetString("user_id")

	notes, err := h.NotesService.ListNotes(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("notes", "list")
		utils.InternalError(c, "failed to list notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

// CreateNote persists a note owned by the caller. Any owner field in
// the payload is ignored.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	userID := c.GetString("user_id")

	note, err := h.NotesService.CreateNote(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		if ve, ok := usecase.AsValidationErrors(err); ok {
			utils.ValidationFailed(c, ve)
			return
		}
		utils.TrackError("notes", "create")
		utils.InternalError(c, "failed to create note")
		return
	}

	utils.Created(c, dto.ToNoteResponse(note))
}

// DeleteNote removes one of the caller's notes. A note that does not
// exist and a note owned by someone else both come back as 404.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	err := h.NotesService.DeleteNote(c.Request.Context(), userID, noteID)
	if err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			utils.NotFound(c, "note not found")
			return
		}
		utils.TrackError("notes", "delete")
		utils.InternalError(c, "failed to delete note")
		return
	}

	utils.NoContent(c)
}
