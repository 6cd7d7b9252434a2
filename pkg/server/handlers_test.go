package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	st := memory.NewStore()
	srv := New(st, zap.NewNop(), nil, 2)
	return srv.Router(), st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedEvent(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/events", gin.H{
		"name":           "Adoption Event",
		"location":       "Midtown Shelter",
		"requiredSkills": []string{"Dog Walking"},
		"urgency":        "Medium",
		"date":           "2025-10-13",
		"timeOfDay":      "Morning",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	events := body["data"].([]any)
	require.Len(t, events, 1)
	return events[0].(map[string]any)["id"].(string)
}

func seedVolunteer(t *testing.T, router *gin.Engine, id string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPut, "/volunteers/"+id, gin.H{
		"name":     "Alex Kim",
		"location": "Midtown",
		"skills":   []string{"Dog Walking"},
		"availability": gin.H{
			"Monday": gin.H{"Morning": true},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthz(t *testing.T) {
	router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEventLifecycle(t *testing.T) {
	router, _ := newTestServer(t)
	id := seedEvent(t, router)

	w := doJSON(t, router, http.MethodGet, "/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"], 1)

	w = doJSON(t, router, http.MethodPut, "/events/"+id, gin.H{
		"name": "Adoption Day", "location": "Midtown Shelter",
		"urgency": "High", "date": "2025-10-13",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/events/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/events", nil)
	assert.Empty(t, decode(t, w)["data"])
}

func TestCreateEvent_Invalid(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/events", gin.H{
		"name": "No date", "location": "Shelter", "urgency": "Low",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCandidates_LegacyShape(t *testing.T) {
	router, _ := newTestServer(t)
	id := seedEvent(t, router)
	seedVolunteer(t, router, "vol-1")

	w := doJSON(t, router, http.MethodGet, "/events/"+id+"/candidates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Contains(t, body, "data")
	assert.Len(t, body["data"], 1)
}

func TestCandidates_NotFoundShape(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/events/nope/candidates", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, gin.H{"error": "event not found"}, gin.H(decode(t, w)))
}

func TestAssign_LegacyShape(t *testing.T) {
	router, _ := newTestServer(t)
	id := seedEvent(t, router)
	seedVolunteer(t, router, "vol-1")

	w := doJSON(t, router, http.MethodPost, "/events/"+id+"/assign", gin.H{
		"volunteerIds": []string{"vol-1"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, []any{"vol-1"}, body["assigned"])
	assert.Equal(t, id, body["eventId"])
}

func TestAssign_NotFoundShape(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/events/nope/assign", gin.H{
		"volunteerIds": []string{"vol-1"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, gin.H{"error": "event-not-found"}, gin.H(decode(t, w)))
}

func TestAssign_EmptyBody(t *testing.T) {
	router, _ := newTestServer(t)
	id := seedEvent(t, router)

	// A missing body degrades to an empty batch, not an error
	w := doJSON(t, router, http.MethodPost, "/events/"+id+"/assign", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Empty(t, body["assigned"])
}

func TestAssign_Idempotent(t *testing.T) {
	router, st := newTestServer(t)
	id := seedEvent(t, router)
	seedVolunteer(t, router, "vol-1")

	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodPost, "/events/"+id+"/assign", gin.H{
			"volunteerIds": []string{"vol-1"},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	count, err := st.CountAssigned(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMatches(t *testing.T) {
	router, _ := newTestServer(t)
	id := seedEvent(t, router)
	seedVolunteer(t, router, "vol-1")

	w := doJSON(t, router, http.MethodGet, "/events/"+id+"/matches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	best := body["bestMatches"].([]any)
	require.Len(t, best, 1)
	top := best[0].(map[string]any)
	assert.Equal(t, float64(160), top["score"])
	assert.Equal(t, true, top["available"])
}

func TestMatches_IncludeUnavailable(t *testing.T) {
	router, _ := newTestServer(t)
	id := seedEvent(t, router)

	// Available on the wrong day
	w := doJSON(t, router, http.MethodPut, "/volunteers/vol-2", gin.H{
		"name": "Sam Lee", "location": "Midtown", "skills": []string{"Animal Grooming"},
		"availability": gin.H{"Tuesday": gin.H{"Morning": true}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/events/"+id+"/matches", nil)
	body := decode(t, w)
	assert.Empty(t, body["bestMatches"])
	assert.Empty(t, body["others"])

	w = doJSON(t, router, http.MethodGet, "/events/"+id+"/matches?includeUnavailable=true", nil)
	body = decode(t, w)
	assert.Len(t, body["others"], 1)
}

func TestUnassign(t *testing.T) {
	router, st := newTestServer(t)
	id := seedEvent(t, router)
	seedVolunteer(t, router, "vol-1")

	w := doJSON(t, router, http.MethodPost, "/events/"+id+"/assign", gin.H{"volunteerIds": []string{"vol-1"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/events/"+id+"/unassign", gin.H{"volunteerId": "vol-1"})
	require.Equal(t, http.StatusOK, w.Code)

	count, err := st.CountAssigned(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Notification record cleared with the assignment
	notifications, err := st.NotificationsFor(t.Context(), "vol-1")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestUnassign_MissingVolunteerID(t *testing.T) {
	router, _ := newTestServer(t)
	id := seedEvent(t, router)

	w := doJSON(t, router, http.MethodPost, "/events/"+id+"/unassign", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationsAfterAssign(t *testing.T) {
	router, _ := newTestServer(t)
	id := seedEvent(t, router)
	seedVolunteer(t, router, "vol-1")

	w := doJSON(t, router, http.MethodPost, "/events/"+id+"/assign", gin.H{"volunteerIds": []string{"vol-1"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/volunteers/vol-1/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]any)
	require.Len(t, data, 1)
	assert.Contains(t, data[0].(map[string]any)["message"], "Adoption Event")
}

func TestHistoryEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/history", gin.H{
		"volunteerId": "vol-1", "date": "2025-10-13", "event": "Adoption Event", "hours": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])

	w = doJSON(t, router, http.MethodPost, "/history", gin.H{
		"date": "2025-10-13", "event": "Cleanup",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"], 1)

	w = doJSON(t, router, http.MethodGet, "/volunteers/vol-1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 1)
}

func TestRecurringEventCreate(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/events", gin.H{
		"name": "Weekly Dog Walk", "location": "Riverside Park",
		"urgency": "Low", "date": "2025-10-13", "recurrence": "FREQ=WEEKLY;COUNT=3",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	events := decode(t, w)["data"].([]any)
	require.Len(t, events, 3)
	series := events[0].(map[string]any)["seriesId"]
	assert.NotEmpty(t, series)
	assert.Equal(t, series, events[2].(map[string]any)["seriesId"])
}

func TestSaveVolunteer_MigratesLegacyDates(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPut, "/volunteers/vol-1", gin.H{
		"name": "Alex Kim", "location": "Midtown", "skills": []string{"Dog Walking"},
		"availableDates": []string{"2025-10-13"}, // a Monday
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	availability := data["availability"].(map[string]any)
	monday := availability["Monday"].(map[string]any)
	assert.Equal(t, true, monday["Morning"])
	assert.NotContains(t, data, "availableDates")
}
