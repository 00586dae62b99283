package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellieharper/otj/internal/api"
	"github.com/ellieharper/otj/internal/domain"
)

func TestListEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/entries", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "Huddle", "category": "Team training sessions",
			 "date": "2026-01-22", "totalHours": 1.5, "isOffTheJob": true,
			 "createdAt": "2026-01-23T15:43:00Z"}
		]`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	entries, err := client.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, "Huddle", e.Title)
	assert.Equal(t, "2026-01-22", e.Date.String())
	assert.Equal(t, 1.5, e.TotalHours)
	assert.True(t, e.IsOffTheJob)
	assert.Equal(t, time.Date(2026, time.January, 23, 15, 43, 0, 0, time.UTC), e.CreatedAt)
}

func TestCreateEntry(t *testing.T) {
	var received domain.EntryPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/entries", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.JournalEntry{
			ID:          7,
			Title:       received.Title,
			Category:    received.Category,
			Date:        received.Date,
			TotalHours:  received.TotalHours,
			IsOffTheJob: received.IsOffTheJob,
			CreatedAt:   time.Date(2026, time.January, 22, 9, 0, 0, 0, time.UTC),
		})
	}))
	defer srv.Close()

	payload := domain.EntryPayload{
		Title:       "Webinar",
		Category:    "Attending webinars on key industry topics",
		Date:        domain.NewDate(2026, time.January, 22),
		TotalHours:  2.0,
		IsOffTheJob: true,
	}

	client := api.NewClient(srv.URL)
	created, err := client.CreateEntry(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "Webinar", received.Title)
	assert.Equal(t, "2026-01-22", received.Date.String())
	assert.Equal(t, int64(7), created.ID, "store assigns the id")
	assert.False(t, created.CreatedAt.IsZero(), "store assigns the creation timestamp")
}

func TestUpdateEntryPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/entries/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "title": "Edited", "date": "2026-01-22"}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	updated, err := client.UpdateEntry(context.Background(), 42, domain.EntryPayload{Title: "Edited"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), updated.ID)
}

func TestDeleteEntryEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/entries/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	require.NoError(t, client.DeleteEntry(context.Background(), 3))
}

func TestStatusErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "title is required"}`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	_, err := client.CreateEntry(context.Background(), domain.EntryPayload{})

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "title is required")
}

func TestStatusErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	_, err := client.ListEntries(context.Background())

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	// Port 1 refuses connections.
	client := api.NewClient("http://127.0.0.1:1")
	_, err := client.ListEntries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calling journal store")
}

func TestHolidayRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/holidays":
			w.Write([]byte(`[{"id": 1, "apprenticeId": 1, "holidayMode": true, "holidayDays": 4, "holidayAllowance": 28}]`))
		case r.Method == http.MethodPut && r.URL.Path == "/holidays/1":
			var p domain.HolidayPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			json.NewEncoder(w).Encode(domain.HolidayRecord{
				ID: 1, ApprenticeID: p.ApprenticeID, Enabled: p.Enabled,
				DaysUsed: p.DaysUsed, Allowance: p.Allowance,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	records, err := client.ListHolidays(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Enabled)
	assert.Equal(t, 4, records[0].DaysUsed)

	updated, err := client.UpdateHoliday(context.Background(), 1, domain.HolidayPayload{
		ApprenticeID: 1, Enabled: false, DaysUsed: 5, Allowance: 28,
	})
	require.NoError(t, err)
	assert.False(t, updated.Enabled)
	assert.Equal(t, 5, updated.DaysUsed)
}

func TestListKSBsByTypePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ksbs/type/Knowledge", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "K1", "type": "Knowledge", "description": "SDLC"}]`))
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	tags, err := client.ListKSBsByType(context.Background(), domain.KSBKnowledge)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "K1", tags[0].ID)
}
