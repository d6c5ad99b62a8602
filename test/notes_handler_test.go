package test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"main/test/testutils"
)

type notePayload struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func createNote(t *testing.T, router *gin.Engine, token, title, content string) notePayload {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/notes", token,
		map[string]string{"title": title, "content": content})
	expectStatus(t, w, http.StatusCreated)

	resp := decodeResponse(t, w)
	var note notePayload
	if err := json.Unmarshal(resp.Data, &note); err != nil {
		t.Fatalf("Failed to parse note payload: %v", err)
	}
	if note.ID == "" {
		t.Fatal("Created note missing id")
	}
	return note
}

func listNotes(t *testing.T, router *gin.Engine, token string) []notePayload {
	t.Helper()

	w := doJSON(t, router, "GET", "/api/notes", token, nil)
	expectStatus(t, w, http.StatusOK)

	resp := decodeResponse(t, w)
	var notes []notePayload
	if err := json.Unmarshal(resp.Data, &notes); err != nil {
		t.Fatalf("Failed to parse notes payload: %v", err)
	}
	return notes
}

func TestCreateNoteHandler(t *testing.T) {
	router := testutils.NewRouter(testutils.NewFakeUserRepo(), testutils.NewFakeNoteRepo())
	token := tokenFor(t, "user-1")

	note := createNote(t, router, token, "Test Note", "Some content")

	if note.Title != "Test Note" {
		t.Errorf("Expected title 'Test Note', got %q", note.Title)
	}
	if note.Content != "Some content" {
		t.Errorf("Expected content 'Some content', got %q", note.Content)
	}
}

func TestCreateNoteValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		wantFields []string
	}{
		{"Empty Title", map[string]string{"title": "", "content": "Some content"}, []string{"title"}},
		{"Whitespace Title", map[string]string{"title": "   ", "content": "Some content"}, []string{"title"}},
		{"Empty Content", map[string]string{"title": "Test Note", "content": ""}, []string{"content"}},
		{"Both Empty", map[string]string{"title": "", "content": ""}, []string{"title", "content"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noteRepo := testutils.NewFakeNoteRepo()
			router := testutils.NewRouter(testutils.NewFakeUserRepo(), noteRepo)
			token := tokenFor(t, "user-1")

			w := doJSON(t, router, "POST", "/api/notes", token, tt.body)
			expectStatus(t, w, http.StatusBadRequest)

			resp := decodeResponse(t, w)
			for _, field := range tt.wantFields {
				if len(resp.Errors[field]) == 0 {
					t.Errorf("Expected field error for %q, got %v", field, resp.Errors)
				}
			}

			if noteRepo.Count() != 0 {
				t.Errorf("Invalid note was persisted, count = %d", noteRepo.Count())
			}
		})
	}
}

func TestCreateNoteIgnoresClientSuppliedOwner(t *testing.T) {
	router := testutils.NewRouter(testutils.NewFakeUserRepo(), testutils.NewFakeNoteRepo())
	token := tokenFor(t, "user-1")

	// A user_id in the payload must never override the token identity.
	w := doJSON(t, router, "POST", "/api/notes", token, map[string]string{
		"title":   "Test Note",
		"content": "Some content",
		"user_id": "someone-else",
		"author":  "someone-else",
	})
	expectStatus(t, w, http.StatusCreated)

	if notes := listNotes(t, router, token); len(notes) != 1 {
		t.Errorf("Expected creator to own the note, got %d notes", len(notes))
	}
	otherToken := tokenFor(t, "someone-else")
	if notes := listNotes(t, router, otherToken); len(notes) != 0 {
		t.Errorf("Note leaked to the payload-supplied owner, got %d notes", len(notes))
	}
}

func TestListNotesScopedToCaller(t *testing.T) {
	router := testutils.NewRouter(testutils.NewFakeUserRepo(), testutils.NewFakeNoteRepo())
	user1 := tokenFor(t, "user-1")
	user2 := tokenFor(t, "user-2")

	createNote(t, router, user1, "User1 Note1", "content")
	createNote(t, router, user1, "User1 Note2", "content")
	createNote(t, router, user2, "User2 Note1", "content")

	notes := listNotes(t, router, user1)
	if len(notes) != 2 {
		t.Fatalf("Expected 2 notes for user-1, got %d", len(notes))
	}
	for _, note := range notes {
		if note.Title == "User2 Note1" {
			t.Error("Another user's note appeared in the listing")
		}
	}

	if notes := listNotes(t, router, user2); len(notes) != 1 {
		t.Errorf("Expected 1 note for user-2, got %d", len(notes))
	}
}

func TestListNotesEmptyForNewUser(t *testing.T) {
	router := testutils.NewRouter(testutils.NewFakeUserRepo(), testutils.NewFakeNoteRepo())

	notes := listNotes(t, router, tokenFor(t, "user-1"))
	if len(notes) != 0 {
		t.Errorf("Expected empty listing, got %d notes", len(notes))
	}
}

func TestDeleteNoteHandler(t *testing.T) {
	router := testutils.NewRouter(testutils.NewFakeUserRepo(), testutils.NewFakeNoteRepo())
	token := tokenFor(t, "user-1")

	note := createNote(t, router, token, "Test Note", "Some content")

	w := doJSON(t, router, "DELETE", "/api/notes/"+note.ID, token, nil)
	expectStatus(t, w, http.StatusNoContent)
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body on delete, got %q", w.Body.String())
	}

	if notes := listNotes(t, router, token); len(notes) != 0 {
		t.Errorf("Note still listed after delete, got %d", len(notes))
	}

	// Second delete of the same id reports not found.
	w = doJSON(t, router, "DELETE", "/api/notes/"+note.ID, token, nil)
	expectStatus(t, w, http.StatusNotFound)
}

func TestDeleteNotFoundAndForeignAreIndistinguishable(t *testing.T) {
	noteRepo := testutils.NewFakeNoteRepo()
	router := testutils.NewRouter(testutils.NewFakeUserRepo(), noteRepo)
	user1 := tokenFor(t, "user-1")
	user2 := tokenFor(t, "user-2")

	foreign := createNote(t, router, user2, "User2 Note", "content")

	wForeign := doJSON(t, router, "DELETE", "/api/notes/"+foreign.ID, user1, nil)
	wMissing := doJSON(t, router, "DELETE", "/api/notes/no-such-id", user1, nil)

	expectStatus(t, wForeign, http.StatusNotFound)
	expectStatus(t, wMissing, http.StatusNotFound)

	// Same status, same body: no existence leak.
	if wForeign.Body.String() != wMissing.Body.String() {
		t.Errorf("Foreign and missing deletes differ: %q vs %q",
			wForeign.Body.String(), wMissing.Body.String())
	}

	// The foreign note survived the attempt.
	if noteRepo.Count() != 1 {
		t.Errorf("Foreign note was deleted, count = %d", noteRepo.Count())
	}
	if notes := listNotes(t, router, user2); len(notes) != 1 {
		t.Errorf("Expected user-2 to keep the note, got %d", len(notes))
	}
}
