package test

import (
	"encoding/json"
	"net/http"
	"testing"

	"main/test/testutils"
)

// TestTwoUserScenario walks the full flow: two accounts, each with
// their own note, and cross-user delete attempts bouncing off while
// own deletes succeed.
func TestTwoUserScenario(t *testing.T) {
	router := testutils.NewRouter(testutils.NewFakeUserRepo(), testutils.NewFakeNoteRepo())

	login := func(username, password string) string {
		w := doJSON(t, router, "POST", "/api/auth/login", "",
			map[string]string{"username": username, "password": password})
		expectStatus(t, w, http.StatusOK)

		resp := decodeResponse(t, w)
		var data struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("Failed to parse login payload: %v", err)
		}
		return data.Token
	}

	// Register both users.
	w := doJSON(t, router, "POST", "/api/auth/register", "",
		map[string]string{"username": "ilyes", "password": "mypassword"})
	expectStatus(t, w, http.StatusCreated)

	w = doJSON(t, router, "POST", "/api/auth/register", "",
		map[string]string{"username": "john", "password": "johnpassword"})
	expectStatus(t, w, http.StatusCreated)

	ilyes := login("ilyes", "mypassword")
	john := login("john", "johnpassword")

	// Each creates a note.
	ilyesNote := createNote(t, router, ilyes, "Test Note", "Some content")
	johnNote := createNote(t, router, john, "John Note", "John content")

	// Each sees exactly their own.
	notes := listNotes(t, router, ilyes)
	if len(notes) != 1 || notes[0].Title != "Test Note" {
		t.Fatalf("Unexpected listing for ilyes: %+v", notes)
	}
	notes = listNotes(t, router, john)
	if len(notes) != 1 || notes[0].Title != "John Note" {
		t.Fatalf("Unexpected listing for john: %+v", notes)
	}

	// ilyes cannot delete john's note; john's count is unchanged.
	w = doJSON(t, router, "DELETE", "/api/notes/"+johnNote.ID, ilyes, nil)
	expectStatus(t, w, http.StatusNotFound)
	if notes := listNotes(t, router, john); len(notes) != 1 {
		t.Fatalf("John's note count changed after foreign delete: %d", len(notes))
	}

	// ilyes deletes their own note; their count drops to zero.
	w = doJSON(t, router, "DELETE", "/api/notes/"+ilyesNote.ID, ilyes, nil)
	expectStatus(t, w, http.StatusNoContent)
	if notes := listNotes(t, router, ilyes); len(notes) != 0 {
		t.Fatalf("Ilyes still has %d notes after delete", len(notes))
	}

	// John is untouched by any of it.
	if notes := listNotes(t, router, john); len(notes) != 1 {
		t.Fatalf("John's notes affected by another user's operations: %d", len(notes))
	}
}
