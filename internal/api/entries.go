package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ellieharper/otj/internal/domain"
)

// ListEntries fetches every journal entry.
func (c *Client) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	if err := c.do(ctx, http.MethodGet, "/entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry fetches one entry by id.
func (c *Client) GetEntry(ctx context.Context, id int64) (domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/entries/%d", id), nil, &entry)
	return entry, err
}

// CreateEntry persists a new entry. The store assigns id and createdAt.
func (c *Client) CreateEntry(ctx context.Context, payload domain.EntryPayload) (domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := c.do(ctx, http.MethodPost, "/entries", payload, &entry)
	return entry, err
}

// UpdateEntry fully replaces the editable fields of an entry.
func (c *Client) UpdateEntry(ctx context.Context, id int64, payload domain.EntryPayload) (domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/entries/%d", id), payload, &entry)
	return entry, err
}

// DeleteEntry removes an entry.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/entries/%d", id), nil, nil)
}
