package domain

import "time"

// JournalEntry is a single logged learning activity. The ID and CreatedAt
// fields are assigned by the store on creation and never change afterwards.
type JournalEntry struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Date        Date           `json:"date"`
	StartTime   string         `json:"startTime,omitempty"`
	EndTime     string         `json:"endTime,omitempty"`
	TotalHours  float64        `json:"totalHours"`
	IsOffTheJob bool           `json:"isOffTheJob"`
	KSBs        []KSBTag       `json:"ksbs"`
	Documents   []DocumentMeta `json:"documents"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// EntryPayload is the writable portion of a journal entry, sent to the store
// on create and update. TotalHours is always derived from the time range,
// never typed by the user.
type EntryPayload struct {
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Date        Date           `json:"date"`
	StartTime   string         `json:"startTime,omitempty"`
	EndTime     string         `json:"endTime,omitempty"`
	TotalHours  float64        `json:"totalHours"`
	IsOffTheJob bool           `json:"isOffTheJob"`
	KSBs        []KSBTag       `json:"ksbs"`
	Documents   []DocumentMeta `json:"documents"`
}
