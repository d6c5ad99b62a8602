package testutils

import (
	"context"
	"sync"

	"main/model"
)

// FakeUserRepo is an in-memory usecase.UserRepository for tests.
type FakeUserRepo struct {
	mu    sync.Mutex
	users []*model.User

	// CreateErr, when set, is returned by CreateUser to simulate a
	// storage failure.
	CreateErr error
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{}
}

func (r *FakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateErr != nil {
		return r.CreateErr
	}

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return model.ErrUsernameTaken
		}
	}

	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r *FakeUserRepo) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *FakeUserRepo) FindUserByID(_ context.Context, userID string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.UserID == userID {
			found := *user
			return &found, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *FakeUserRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// FakeNoteRepo is an in-memory usecase.NoteRepository for tests.
// Notes keep insertion order, like the Mongo repository's
// created_at-ascending sort.
type FakeNoteRepo struct {
	mu    sync.Mutex
	notes []*model.Note
}

func NewFakeNoteRepo() *FakeNoteRepo {
	return &FakeNoteRepo{}
}

func (r *FakeNoteRepo) CreateNote(_ context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *note
	r.notes = append(r.notes, &stored)
	return nil
}

func (r *FakeNoteRepo) NotesByOwner(_ context.Context, ownerID string) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*model.Note
	for _, note := range r.notes {
		if note.UserID == ownerID {
			found := *note
			owned = append(owned, &found)
		}
	}
	return owned, nil
}

func (r *FakeNoteRepo) DeleteNote(_ context.Context, noteID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, note := range r.notes {
		if note.ID == noteID && note.UserID == ownerID {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return model.ErrNoteNotFound
}

// Count reports how many notes exist across all owners.
func (r *FakeNoteRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}
