package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/infohub/internal/domain/post"
	apphttp "github.com/geocoder89/infohub/internal/http"
	"github.com/geocoder89/infohub/internal/store/memstore"
	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Basic logger that discards outputs during tests
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return apphttp.NewRouter(logger, apphttp.Deps{
		Store: memstore.New(),
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

type listResponse struct {
	Items []post.Post `json:"items"`
	Count int         `json:"count"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()

	var out listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad list body: %v: %s", err, w.Body.String())
	}

	return out
}

// The full board walkthrough: fresh store, seeded feed, a tutor posts,
// a first-year student reads and searches.
func TestBoardFlow(t *testing.T) {
	r := setupTestRouter(t)

	// unauthenticated feed access is rejected
	if w := do(t, r, http.MethodGet, "/feed", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", w.Code)
	}

	// tutor quick-login provisions the demo tutor
	if w := do(t, r, http.MethodPost, "/auth/quick-login", `{"role":"TUTOR"}`); w.Code != http.StatusOK {
		t.Fatalf("quick-login failed: %d %s", w.Code, w.Body.String())
	}

	// fresh board serves the two seeded posts
	w := do(t, r, http.MethodGet, "/posts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list posts failed: %d", w.Code)
	}

	seeded := decodeList(t, w)
	if seeded.Count != 2 {
		t.Fatalf("expected 2 seed posts, got %d", seeded.Count)
	}

	// tutor creates a new announcement
	createBody := `{"title":"Library Hours Extended","description":"Open till midnight during finals week.","category":"Events","targetYear":"All Years","date":"2024-12-01","time":"08:00 AM"}`

	w = do(t, r, http.MethodPost, "/posts", createBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create post failed: %d %s", w.Code, w.Body.String())
	}

	var created post.Post
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create body: %v", err)
	}

	// the new post is first
	w = do(t, r, http.MethodGet, "/posts", "")
	all := decodeList(t, w)

	if all.Count != 3 {
		t.Fatalf("expected 3 posts after create, got %d", all.Count)
	}
	if all.Items[0].ID != created.ID {
		t.Fatalf("expected new post first, got %q", all.Items[0].ID)
	}

	// switch to a first-year student
	signupBody := `{"name":"Pat Fresher","email":"pat@college.edu","password":"pw","role":"STUDENT","year":"1st Year"}`
	if w := do(t, r, http.MethodPost, "/auth/signup", signupBody); w.Code != http.StatusCreated {
		t.Fatalf("student signup failed: %d %s", w.Code, w.Body.String())
	}

	// student may not create posts
	if w := do(t, r, http.MethodPost, "/posts", createBody); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student post, got %d", w.Code)
	}

	// the whole board is visible: seeds target Year 1 / All, new post targets All
	w = do(t, r, http.MethodGet, "/feed", "")
	feed := decodeList(t, w)

	if feed.Count != 3 {
		t.Fatalf("expected 3 visible posts, got %d: %s", feed.Count, w.Body.String())
	}

	// search narrows to the bus announcement
	w = do(t, r, http.MethodGet, "/feed?q=bus", "")
	found := decodeList(t, w)

	if found.Count != 1 || found.Items[0].Title != "Evening Bus Schedule Change" {
		t.Fatalf("unexpected search result: %+v", found)
	}

	// category tab filters
	w = do(t, r, http.MethodGet, "/feed?category=Registrations", "")
	regs := decodeList(t, w)

	if regs.Count != 1 || regs.Items[0].Title != "Orientation Registration" {
		t.Fatalf("unexpected category result: %+v", regs)
	}

	// logout ends the session
	if w := do(t, r, http.MethodPost, "/auth/logout", ""); w.Code != http.StatusNoContent {
		t.Fatalf("logout failed: %d", w.Code)
	}

	if w := do(t, r, http.MethodGet, "/feed", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

// Editing and deleting through the API respects ownership and the
// permissive delete-of-missing semantics.
func TestBoardEditDelete(t *testing.T) {
	r := setupTestRouter(t)

	if w := do(t, r, http.MethodPost, "/auth/quick-login", `{"role":"TUTOR"}`); w.Code != http.StatusOK {
		t.Fatalf("quick-login failed: %d", w.Code)
	}

	createBody := `{"title":"Workshop Sign-up","description":"Limited seats.","category":"Registrations","targetYear":"2nd Year"}`

	w := do(t, r, http.MethodPost, "/posts", createBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", w.Code, w.Body.String())
	}

	var created post.Post
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create body: %v", err)
	}

	updateBody := `{"title":"Workshop Sign-up (Extended)","description":"More seats added.","category":"Registrations","targetYear":"2nd Year"}`

	w = do(t, r, http.MethodPut, "/posts/"+created.ID, updateBody)
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", w.Code, w.Body.String())
	}

	var updated post.Post
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("bad update body: %v", err)
	}

	if updated.ID != created.ID || updated.Title != "Workshop Sign-up (Extended)" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	// the seeds belong to another tutor; editing them is forbidden
	w = do(t, r, http.MethodPut, "/posts/1", updateBody)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 editing foreign post, got %d", w.Code)
	}

	// delete own post, then delete it again: both answer 204
	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodDelete, "/posts/"+created.ID, "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("delete attempt %d: expected 204, got %d", i, w.Code)
		}
	}

	w = do(t, r, http.MethodGet, "/posts", "")
	remaining := decodeList(t, w)

	for _, p := range remaining.Items {
		if p.ID == created.ID {
			t.Fatalf("deleted post still listed")
		}
	}
}
