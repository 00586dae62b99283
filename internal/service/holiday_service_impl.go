package service

import (
	"context"
	"fmt"

	"github.com/ellieharper/otj/internal/domain"
)

// holidayService keeps the apprentice's holiday record in memory and writes
// the full record on every mutation. A failed write leaves the in-memory
// record exactly as it was before the attempt.
type holidayService struct {
	api              HolidayAPI
	apprenticeID     int64
	defaultAllowance int
	record           domain.HolidayRecord
	loaded           bool
}

func NewHolidayService(api HolidayAPI, apprenticeID int64, defaultAllowance int) HolidayService {
	return &holidayService{
		api:              api,
		apprenticeID:     apprenticeID,
		defaultAllowance: defaultAllowance,
	}
}

func (s *holidayService) Load(ctx context.Context) (domain.HolidayRecord, error) {
	records, err := s.api.ListHolidays(ctx)
	if err != nil {
		return domain.HolidayRecord{}, fmt.Errorf("loading holiday settings: %w", err)
	}

	for _, r := range records {
		if r.ApprenticeID == s.apprenticeID {
			s.record = r.Normalize()
			s.loaded = true
			return s.record, nil
		}
	}

	// First use: create the initial record.
	created, err := s.api.CreateHoliday(ctx, domain.NewHolidayRecord(s.apprenticeID, s.defaultAllowance).Payload())
	if err != nil {
		return domain.HolidayRecord{}, fmt.Errorf("creating holiday record: %w", err)
	}
	s.record = created.Normalize()
	s.loaded = true
	return s.record, nil
}

func (s *holidayService) Record() domain.HolidayRecord {
	return s.record
}

func (s *holidayService) SetEnabled(ctx context.Context, enabled bool) (domain.HolidayRecord, error) {
	return s.persist(ctx, s.record.WithEnabled(enabled))
}

func (s *holidayService) SetDaysUsed(ctx context.Context, days int) (domain.HolidayRecord, error) {
	return s.persist(ctx, s.record.WithDaysUsed(days))
}

func (s *holidayService) SetAllowance(ctx context.Context, allowance int) (domain.HolidayRecord, error) {
	// Clamping may cap days used to the new allowance; both fields go out
	// in the same write.
	return s.persist(ctx, s.record.WithAllowance(allowance))
}

func (s *holidayService) persist(ctx context.Context, candidate domain.HolidayRecord) (domain.HolidayRecord, error) {
	if !s.loaded {
		return s.record, fmt.Errorf("holiday settings not loaded yet")
	}
	updated, err := s.api.UpdateHoliday(ctx, s.record.ID, candidate.Payload())
	if err != nil {
		return s.record, fmt.Errorf("saving holiday settings: %w", err)
	}
	s.record = updated.Normalize()
	return s.record, nil
}
