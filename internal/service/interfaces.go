package service

import (
	"context"

	"github.com/ellieharper/otj/internal/domain"
)

// EntryAPI is the slice of the store client the entry service consumes.
type EntryAPI interface {
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
	CreateEntry(ctx context.Context, payload domain.EntryPayload) (domain.JournalEntry, error)
	UpdateEntry(ctx context.Context, id int64, payload domain.EntryPayload) (domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// HolidayAPI is the slice of the store client the holiday service consumes.
type HolidayAPI interface {
	ListHolidays(ctx context.Context) ([]domain.HolidayRecord, error)
	CreateHoliday(ctx context.Context, payload domain.HolidayPayload) (domain.HolidayRecord, error)
	UpdateHoliday(ctx context.Context, id int64, payload domain.HolidayPayload) (domain.HolidayRecord, error)
}

// KSBAPI is the slice of the store client the KSB service consumes.
type KSBAPI interface {
	ListKSBs(ctx context.Context) ([]domain.KSBTag, error)
}

type EntryService interface {
	List(ctx context.Context) ([]domain.JournalEntry, error)
	Create(ctx context.Context, payload domain.EntryPayload) (domain.JournalEntry, error)
	CreateBatch(ctx context.Context, payloads []domain.EntryPayload) ([]domain.JournalEntry, error)
	Update(ctx context.Context, id int64, payload domain.EntryPayload) (domain.JournalEntry, error)
	Delete(ctx context.Context, id int64) error
}

type HolidayService interface {
	// Load fetches the apprentice's record, creating the default one when
	// none exists yet.
	Load(ctx context.Context) (domain.HolidayRecord, error)
	Record() domain.HolidayRecord
	SetEnabled(ctx context.Context, enabled bool) (domain.HolidayRecord, error)
	SetDaysUsed(ctx context.Context, days int) (domain.HolidayRecord, error)
	SetAllowance(ctx context.Context, allowance int) (domain.HolidayRecord, error)
}

type KSBService interface {
	// Catalog returns the KSB reference list, falling back to the built-in
	// set when the store does not expose one.
	Catalog(ctx context.Context) ([]domain.KSBTag, error)
}
