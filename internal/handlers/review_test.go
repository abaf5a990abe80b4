package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/hustlehives/backend/internal/models"
)

func TestListReviews_Empty(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "GET", "/api/reviews", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	body := strings.TrimSpace(w.Body.String())
	if body == "null" {
		t.Fatal("empty listing must be [] not null")
	}

	reviews := ts.listReviews(t)
	if len(reviews) != 0 {
		t.Errorf("expected 0 reviews, got %d", len(reviews))
	}
}

func TestCreateReview_ThenList(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, "POST", "/api/reviews", map[string]interface{}{
		"name":    "  Alice ",
		"rating":  4,
		"message": " Loved it ",
	}, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["success"] != true {
		t.Errorf("expected success=true, got %v", resp["success"])
	}
	if _, hasID := resp["id"]; hasID {
		t.Error("create response must not expose the new id")
	}

	reviews := ts.listReviews(t)
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	r := reviews[0]
	if r.Name != "Alice" || r.Message != "Loved it" || r.Rating != 4 {
		t.Errorf("stored review = %+v, expected trimmed fields", r)
	}
	if r.ID == 0 {
		t.Error("listing should expose the assigned id")
	}
	if r.CreatedAt.IsZero() {
		t.Error("listing should expose created_at")
	}
}

func TestCreateReview_ValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	requiredMsg := "Name, rating, and message are required"
	rangeMsg := "Rating must be between 1 and 5"

	tests := []struct {
		name    string
		payload map[string]interface{}
		wantMsg string
	}{
		{"missing name", map[string]interface{}{"rating": 3, "message": "m"}, requiredMsg},
		{"whitespace name", map[string]interface{}{"name": "  ", "rating": 3, "message": "m"}, requiredMsg},
		{"missing message", map[string]interface{}{"name": "a", "rating": 3}, requiredMsg},
		{"missing rating", map[string]interface{}{"name": "a", "message": "m"}, requiredMsg},
		{"zero rating", map[string]interface{}{"name": "a", "rating": 0, "message": "m"}, requiredMsg},
		{"rating six", map[string]interface{}{"name": "a", "rating": 6, "message": "m"}, rangeMsg},
		{"negative rating", map[string]interface{}{"name": "a", "rating": -2, "message": "m"}, rangeMsg},
		{"rating as string", map[string]interface{}{"name": "a", "rating": "5", "message": "m"}, requiredMsg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, "POST", "/api/reviews", tt.payload, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp["error"] != tt.wantMsg {
				t.Errorf("error = %q, expected %q", resp["error"], tt.wantMsg)
			}
		})
	}

	if got := len(ts.listReviews(t)); got != 0 {
		t.Errorf("failed submissions must not store rows, found %d", got)
	}
}

func TestCreateReview_BoundaryRatingsAccepted(t *testing.T) {
	ts := newTestServer(t)

	for _, rating := range []int{1, 5} {
		w := ts.do(t, "POST", "/api/reviews", map[string]interface{}{
			"name":    "b",
			"rating":  rating,
			"message": "m",
		}, "")
		if w.Code != http.StatusCreated {
			t.Errorf("rating %d: expected status %d, got %d", rating, http.StatusCreated, w.Code)
		}
	}
}

func TestCreateReview_MalformedJSON(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest("POST", "/api/reviews", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := newRecorderFor(ts, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestListReviews_MostRecentFirst(t *testing.T) {
	ts := newTestServer(t)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"oldest", "middle", "newest"} {
		review := models.Review{
			Name:      name,
			Rating:    5,
			Message:   "m",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := ts.db.Create(&review).Error; err != nil {
			t.Fatal(err)
		}
	}

	reviews := ts.listReviews(t)
	want := []string{"newest", "middle", "oldest"}
	if len(reviews) != len(want) {
		t.Fatalf("expected %d reviews, got %d", len(want), len(reviews))
	}
	for i, name := range want {
		if reviews[i].Name != name {
			t.Errorf("reviews[%d].Name = %q, expected %q", i, reviews[i].Name, name)
		}
	}
}

func TestDeleteReview_WithSessionToken(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, "POST", "/api/reviews", map[string]interface{}{"name": "a", "rating": 3, "message": "m"}, "")
	id := ts.listReviews(t)[0].ID

	token := ts.login(t)

	w := ts.do(t, "DELETE", deletePath(id), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["success"] != true {
		t.Errorf("expected success=true, got %v", resp["success"])
	}

	if got := len(ts.listReviews(t)); got != 0 {
		t.Errorf("expected 0 reviews after delete, got %d", got)
	}

	// Idempotent: repeating the call still succeeds
	w = ts.do(t, "DELETE", deletePath(id), nil, token)
	if w.Code != http.StatusOK {
		t.Errorf("repeated delete: expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestDeleteReview_WithStaticToken(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, "POST", "/api/reviews", map[string]interface{}{"name": "a", "rating": 3, "message": "m"}, "")
	id := ts.listReviews(t)[0].ID

	w := ts.do(t, "DELETE", deletePath(id), nil, "hustle-hives-admin-token-2024")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if got := len(ts.listReviews(t)); got != 0 {
		t.Errorf("expected 0 reviews after delete, got %d", got)
	}
}

func TestDeleteReview_Unauthorized(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, "POST", "/api/reviews", map[string]interface{}{"name": "a", "rating": 3, "message": "m"}, "")
	id := ts.listReviews(t)[0].ID

	for _, token := range []string{"", "wrong-token", "hustle-hives-admin-token-2023"} {
		w := ts.do(t, "DELETE", deletePath(id), nil, token)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("token %q: expected status %d, got %d", token, http.StatusUnauthorized, w.Code)
		}

		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "Unauthorized" {
			t.Errorf("token %q: error = %q, expected %q", token, resp["error"], "Unauthorized")
		}
	}

	if got := len(ts.listReviews(t)); got != 1 {
		t.Errorf("unauthorized deletes must not remove rows, found %d reviews", got)
	}
}

func TestDeleteReview_NonexistentID(t *testing.T) {
	ts := newTestServer(t)

	token := ts.login(t)
	w := ts.do(t, "DELETE", "/api/admin/reviews/424242", nil, token)
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d for nonexistent id, got %d", http.StatusOK, w.Code)
	}
}

func deletePath(id uint) string {
	return "/api/admin/reviews/" + strconv.FormatUint(uint64(id), 10)
}

func newRecorderFor(ts *testServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}
