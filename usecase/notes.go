package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"main/model"
	"main/utils"
)

// NoteRepository is the data access surface for notes, limited to the
// shapes the service actually uses. Every read and delete takes the
// owner id, so ownership scoping cannot be bypassed by a call site.
type NoteRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	NotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error)
	DeleteNote(ctx context.Context, noteID, ownerID string) error
}

type NoteService struct {
	NotesRepo NoteRepository
}

// CreateNote persists a note owned by ownerID. Title and content must
// be non-blank after trimming but are stored as given.
func (s *NoteService) CreateNote(ctx context.Context, ownerID, title, content string) (*model.Note, error) {
	errs := ValidationErrors{}
	if strings.TrimSpace(title) == "" {
		errs.Add("title", "may not be blank")
	}
	if strings.TrimSpace(content) == "" {
		errs.Add("content", "may not be blank")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// ListNotes returns every note owned by ownerID in insertion order.
// An owner with no notes gets an empty slice, not an error.
func (s *NoteService) ListNotes(ctx context.Context, ownerID string) ([]*model.Note, error) {
	notes, err := s.NotesRepo.NotesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	return notes, nil
}

// DeleteNote removes the note only when it exists AND belongs to
// ownerID. A miss on either condition comes back as
// model.ErrNoteNotFound; the two cases are indistinguishable to the
// caller.
func (s *NoteService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if err := s.NotesRepo.DeleteNote(ctx, noteID, ownerID); err != nil {
		return err
	}

	utils.TrackNoteOperation("delete")
	return nil
}
