package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// futureDate returns a date n days from now as "YYYY-MM-DD".
func futureDate(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

type bookingResp struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Title        string   `json:"title"`
	Organizer    string   `json:"organizer"`
	Date         string   `json:"date"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Participants []string `json:"participants"`
	Status       string   `json:"status"`
}

func createBooking(t *testing.T, token string, body map[string]any) bookingResp {
	w := executeRequest("POST", "/v1/bookings", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp bookingResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateBooking(t *testing.T) {
	clearTables()
	u := createTestUser(t, "sarah@advertomedia.hu", "supersecret1")
	token := generateToken(u.ID, u.Email)

	body := map[string]any{
		"title":        "Sprint Planning",
		"organizer":    "Sarah Johnson",
		"date":         futureDate(1),
		"start_time":   "09:00",
		"end_time":     "10:30",
		"participants": []string{"Mike Chen", "Emma Wilson"},
		"description":  "Q2 roadmap",
	}

	t.Run("unauthenticated", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	t.Run("success", func(t *testing.T) {
		resp := createBooking(t, token, body)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, u.ID, resp.UserID)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, []string{"Mike Chen", "Emma Wilson"}, resp.Participants)
	})

	t.Run("overlapping slot", func(t *testing.T) {
		overlapping := map[string]any{
			"title":      "Standup",
			"organizer":  "Mike Chen",
			"date":       futureDate(1),
			"start_time": "10:00",
			"end_time":   "11:00",
		}
		w := executeRequest("POST", "/v1/bookings", overlapping, token)
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	t.Run("back-to-back slot", func(t *testing.T) {
		adjacent := map[string]any{
			"title":      "Retro",
			"organizer":  "Mike Chen",
			"date":       futureDate(1),
			"start_time": "10:30",
			"end_time":   "11:30",
		}
		w := executeRequest("POST", "/v1/bookings", adjacent, token)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("inverted time range", func(t *testing.T) {
		bad := map[string]any{
			"title":      "Broken",
			"organizer":  "Mike Chen",
			"date":       futureDate(2),
			"start_time": "11:00",
			"end_time":   "10:00",
		}
		w := executeRequest("POST", "/v1/bookings", bad, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("malformed time", func(t *testing.T) {
		bad := map[string]any{
			"title":      "Broken",
			"organizer":  "Mike Chen",
			"date":       futureDate(2),
			"start_time": "9am",
			"end_time":   "10:00",
		}
		w := executeRequest("POST", "/v1/bookings", bad, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("organizer defaults to display name", func(t *testing.T) {
		resp := createBooking(t, token, map[string]any{
			"title":      "1on1",
			"date":       futureDate(3),
			"start_time": "09:00",
			"end_time":   "09:30",
		})
		assert.Equal(t, "Test User", resp.Organizer)
	})
}

func TestGetBooking(t *testing.T) {
	clearTables()
	u := createTestUser(t, "sarah@advertomedia.hu", "supersecret1")
	token := generateToken(u.ID, u.Email)

	created := createBooking(t, token, map[string]any{
		"title":      "Sprint Planning",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(1),
		"start_time": "09:00",
		"end_time":   "10:30",
	})

	t.Run("found", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/"+created.ID, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp bookingResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("invalid uuid", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/not-a-uuid", nil, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/00000000-0000-0000-0000-000000000000", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func TestListBookings(t *testing.T) {
	clearTables()
	u := createTestUser(t, "sarah@advertomedia.hu", "supersecret1")
	token := generateToken(u.ID, u.Email)

	createBooking(t, token, map[string]any{
		"title":      "Sprint Planning",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(1),
		"start_time": "09:00",
		"end_time":   "10:30",
	})
	createBooking(t, token, map[string]any{
		"title":      "Client Call",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(2),
		"start_time": "14:00",
		"end_time":   "15:00",
	})

	type listResp struct {
		Items []bookingResp `json:"items"`
		Total int           `json:"total"`
	}

	t.Run("all", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp listResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 2)
		assert.Equal(t, 2, resp.Total)
		// Ordered by (date, start time)
		assert.Equal(t, "Sprint Planning", resp.Items[0].Title)
	})

	t.Run("filter by date", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings?date="+futureDate(2), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp listResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Client Call", resp.Items[0].Title)
	})

	t.Run("invalid date format", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings?date=03-02-2026", nil, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func TestUpdateBooking(t *testing.T) {
	clearTables()
	owner := createTestUser(t, "sarah@advertomedia.hu", "supersecret1")
	ownerToken := generateToken(owner.ID, owner.Email)
	other := createTestUser(t, "mike@advertomedia.hu", "supersecret1")
	otherToken := generateToken(other.ID, other.Email)

	created := createBooking(t, ownerToken, map[string]any{
		"title":      "Sprint Planning",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(1),
		"start_time": "09:00",
		"end_time":   "10:30",
	})
	createBooking(t, ownerToken, map[string]any{
		"title":      "Client Call",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(1),
		"start_time": "14:00",
		"end_time":   "15:00",
	})

	t.Run("owner edits title", func(t *testing.T) {
		w := executeRequest("PATCH", "/v1/bookings/"+created.ID, map[string]any{
			"title": "Sprint Planning (moved)",
		}, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp bookingResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Sprint Planning (moved)", resp.Title)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		w := executeRequest("PATCH", "/v1/bookings/"+created.ID, map[string]any{
			"title": "Hijacked",
		}, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	t.Run("reschedule onto occupied slot", func(t *testing.T) {
		w := executeRequest("PATCH", "/v1/bookings/"+created.ID, map[string]any{
			"start_time": "14:30",
			"end_time":   "15:30",
		}, ownerToken)
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	t.Run("keeping own slot is not a conflict", func(t *testing.T) {
		w := executeRequest("PATCH", "/v1/bookings/"+created.ID, map[string]any{
			"start_time": "09:00",
			"end_time":   "10:00",
		}, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp bookingResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "10:00", resp.EndTime)
	})

	t.Run("cancel frees the slot", func(t *testing.T) {
		w := executeRequest("PATCH", "/v1/bookings/"+created.ID, map[string]any{
			"status": "cancelled",
		}, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		replacement := map[string]any{
			"title":      "Replacement",
			"organizer":  "Mike Chen",
			"date":       futureDate(1),
			"start_time": "09:00",
			"end_time":   "10:00",
		}
		w = executeRequest("POST", "/v1/bookings", replacement, otherToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func TestDeleteBooking(t *testing.T) {
	clearTables()
	owner := createTestUser(t, "sarah@advertomedia.hu", "supersecret1")
	ownerToken := generateToken(owner.ID, owner.Email)
	other := createTestUser(t, "mike@advertomedia.hu", "supersecret1")
	otherToken := generateToken(other.ID, other.Email)

	created := createBooking(t, ownerToken, map[string]any{
		"title":      "Sprint Planning",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(1),
		"start_time": "09:00",
		"end_time":   "10:30",
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		w := executeRequest("DELETE", "/v1/bookings/"+created.ID, nil, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	t.Run("owner deletes", func(t *testing.T) {
		w := executeRequest("DELETE", "/v1/bookings/"+created.ID, nil, ownerToken)
		assert.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	t.Run("already gone", func(t *testing.T) {
		w := executeRequest("DELETE", "/v1/bookings/"+created.ID, nil, ownerToken)
		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func TestUpcomingBookings(t *testing.T) {
	clearTables()
	u := createTestUser(t, "sarah@advertomedia.hu", "supersecret1")
	token := generateToken(u.ID, u.Email)

	for day := 1; day <= 6; day++ {
		createBooking(t, token, map[string]any{
			"title":      "Daily Sync",
			"organizer":  "Sarah Johnson",
			"date":       futureDate(day),
			"start_time": "09:00",
			"end_time":   "09:30",
		})
	}

	type upcomingResp struct {
		Items []bookingResp `json:"items"`
	}

	t.Run("default limit of five", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/upcoming", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp upcomingResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 5)
		assert.Equal(t, futureDate(1), resp.Items[0].Date)
		assert.Equal(t, futureDate(5), resp.Items[4].Date)
	})

	t.Run("custom limit", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/upcoming?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp upcomingResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 2)
	})
}

func TestBookedDates(t *testing.T) {
	clearTables()
	u := createTestUser(t, "sarah@advertomedia.hu", "supersecret1")
	token := generateToken(u.ID, u.Email)

	createBooking(t, token, map[string]any{
		"title":      "Sprint Planning",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(2),
		"start_time": "09:00",
		"end_time":   "10:00",
	})
	createBooking(t, token, map[string]any{
		"title":      "Client Call",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(2),
		"start_time": "14:00",
		"end_time":   "15:00",
	})
	createBooking(t, token, map[string]any{
		"title":      "Retro",
		"organizer":  "Sarah Johnson",
		"date":       futureDate(1),
		"start_time": "09:00",
		"end_time":   "10:00",
	})

	w := executeRequest("GET", "/v1/bookings/dates", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Dates []string `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{futureDate(1), futureDate(2)}, resp.Dates)
}
