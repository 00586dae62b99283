package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ellieharper/otj/internal/domain"
)

// ListHolidays fetches every holiday record.
func (c *Client) ListHolidays(ctx context.Context) ([]domain.HolidayRecord, error) {
	var records []domain.HolidayRecord
	if err := c.do(ctx, http.MethodGet, "/holidays", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateHoliday persists a new holiday record.
func (c *Client) CreateHoliday(ctx context.Context, payload domain.HolidayPayload) (domain.HolidayRecord, error) {
	var record domain.HolidayRecord
	err := c.do(ctx, http.MethodPost, "/holidays", payload, &record)
	return record, err
}

// UpdateHoliday writes a full holiday record; the store does not support
// partial updates.
func (c *Client) UpdateHoliday(ctx context.Context, id int64, payload domain.HolidayPayload) (domain.HolidayRecord, error) {
	var record domain.HolidayRecord
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/holidays/%d", id), payload, &record)
	return record, err
}
