package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellieharper/otj/internal/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := OpenStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewServer(Config{Addr: ":0"}, store, log)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func samplePayload() domain.EntryPayload {
	return domain.EntryPayload{
		Title:       "Pairing on the importer",
		Category:    "Being mentored by a senior colleague",
		Description: "Walked through the CSV importer with my mentor",
		Date:        domain.NewDate(2026, time.January, 22),
		StartTime:   "09:00",
		EndTime:     "10:30",
		TotalHours:  1.5,
		IsOffTheJob: true,
		KSBs:        []domain.KSBTag{{ID: "S3", Type: domain.KSBSkill, Description: "Communication and collaboration"}},
	}
}

func TestEntryLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/entries", samplePayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created domain.JournalEntry
	decodeInto(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "2026-01-22", created.Date.String())
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, created.KSBs, 1)
	assert.Equal(t, "S3", created.KSBs[0].ID)

	// Update keeps the original creation timestamp.
	edited := samplePayload()
	edited.Title = "Pairing on the importer, day two"
	edited.Date = domain.NewDate(2026, time.January, 23)
	resp = doJSON(t, srv, http.MethodPut, "/entries/1", edited)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated domain.JournalEntry
	decodeInto(t, resp, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "2026-01-23", updated.Date.String())

	resp = doJSON(t, srv, http.MethodGet, "/entries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []domain.JournalEntry
	decodeInto(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Pairing on the importer, day two", listed[0].Title)

	resp = doJSON(t, srv, http.MethodDelete, "/entries/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/entries/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListEntries_SortedByDateDescending(t *testing.T) {
	srv := newTestServer(t)

	for _, day := range []int{10, 14, 12} {
		p := samplePayload()
		p.Date = domain.NewDate(2026, time.January, day)
		resp := doJSON(t, srv, http.MethodPost, "/entries", p)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, srv, http.MethodGet, "/entries", nil)
	var listed []domain.JournalEntry
	decodeInto(t, resp, &listed)
	require.Len(t, listed, 3)
	assert.Equal(t, "2026-01-14", listed[0].Date.String())
	assert.Equal(t, "2026-01-12", listed[1].Date.String())
	assert.Equal(t, "2026-01-10", listed[2].Date.String())
}

func TestCreateEntry_Validation(t *testing.T) {
	srv := newTestServer(t)

	missingTitle := samplePayload()
	missingTitle.Title = ""
	resp := doJSON(t, srv, http.MethodPost, "/entries", missingTitle)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope struct {
		Message string `json:"message"`
	}
	decodeInto(t, resp, &envelope)
	assert.Equal(t, "title is required", envelope.Message)
}

func TestHolidays_ClampedOnWrite(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, "/holidays", domain.HolidayPayload{
		ApprenticeID: 1,
		Allowance:    domain.DefaultHolidayAllowance,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var record domain.HolidayRecord
	decodeInto(t, resp, &record)
	assert.Equal(t, int64(1), record.ID)
	assert.Equal(t, 28, record.Allowance)

	// Days beyond the allowance come back clamped.
	resp = doJSON(t, srv, http.MethodPut, "/holidays/1", domain.HolidayPayload{
		ApprenticeID: 1,
		Enabled:      true,
		DaysUsed:     50,
		Allowance:    28,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &record)
	assert.True(t, record.Enabled)
	assert.Equal(t, 28, record.DaysUsed)

	// Shrinking the allowance caps days in the same write.
	resp = doJSON(t, srv, http.MethodPut, "/holidays/1", domain.HolidayPayload{
		ApprenticeID: 1,
		Enabled:      true,
		DaysUsed:     28,
		Allowance:    5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &record)
	assert.Equal(t, 5, record.Allowance)
	assert.Equal(t, 5, record.DaysUsed)
}

func TestKSBs_SeededAndFilterable(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/ksbs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []domain.KSBTag
	decodeInto(t, resp, &all)
	assert.Len(t, all, len(domain.DefaultKSBCatalog()))

	resp = doJSON(t, srv, http.MethodGet, "/ksbs/type/Skill", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var skills []domain.KSBTag
	decodeInto(t, resp, &skills)
	require.NotEmpty(t, skills)
	for _, k := range skills {
		assert.Equal(t, domain.KSBSkill, k.Type)
	}

	resp = doJSON(t, srv, http.MethodGet, "/ksbs/type/Wisdom", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
