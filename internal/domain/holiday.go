package domain

// HolidayRecord tracks one apprentice's annual leave and whether weekly
// OTJ-target enforcement is currently suspended. The invariant
// 0 <= DaysUsed <= Allowance is maintained by clamping, never rejection.
type HolidayRecord struct {
	ID           int64 `json:"id"`
	ApprenticeID int64 `json:"apprenticeId"`
	Enabled      bool  `json:"holidayMode"`
	DaysUsed     int   `json:"holidayDays"`
	Allowance    int   `json:"holidayAllowance"`
}

// HolidayPayload is the writable portion of a holiday record; the store
// only supports full-record writes.
type HolidayPayload struct {
	ApprenticeID int64 `json:"apprenticeId"`
	Enabled      bool  `json:"holidayMode"`
	DaysUsed     int   `json:"holidayDays"`
	Allowance    int   `json:"holidayAllowance"`
}

const DefaultHolidayAllowance = 28

// NewHolidayRecord returns the initial record for an apprentice with no
// holiday history.
func NewHolidayRecord(apprenticeID int64, allowance int) HolidayRecord {
	if allowance < 1 {
		allowance = DefaultHolidayAllowance
	}
	return HolidayRecord{ApprenticeID: apprenticeID, Allowance: allowance}
}

// Payload returns the writable fields of the record.
func (r HolidayRecord) Payload() HolidayPayload {
	return HolidayPayload{
		ApprenticeID: r.ApprenticeID,
		Enabled:      r.Enabled,
		DaysUsed:     r.DaysUsed,
		Allowance:    r.Allowance,
	}
}

// WithEnabled returns a copy with holiday mode set.
func (r HolidayRecord) WithEnabled(enabled bool) HolidayRecord {
	r.Enabled = enabled
	return r
}

// WithDaysUsed returns a copy with days used clamped to [0, Allowance].
func (r HolidayRecord) WithDaysUsed(days int) HolidayRecord {
	if days < 0 {
		days = 0
	}
	if days > r.Allowance {
		days = r.Allowance
	}
	r.DaysUsed = days
	return r
}

// WithAllowance returns a copy with the allowance clamped to at least 1.
// When the new allowance is below the current days used, days used is
// capped to the new allowance in the same change.
func (r HolidayRecord) WithAllowance(allowance int) HolidayRecord {
	if allowance < 1 {
		allowance = 1
	}
	r.Allowance = allowance
	if r.DaysUsed > allowance {
		r.DaysUsed = allowance
	}
	return r
}

// Normalize re-establishes the record invariant on data read from outside.
func (r HolidayRecord) Normalize() HolidayRecord {
	if r.Allowance < 1 {
		r.Allowance = 1
	}
	return r.WithDaysUsed(r.DaysUsed)
}

// Remaining returns the days of allowance left.
func (r HolidayRecord) Remaining() int {
	return r.Allowance - r.DaysUsed
}

// PercentUsed returns the share of allowance consumed, 0-100. Unlike the
// annual progress percentage this is deliberately unclamped.
func (r HolidayRecord) PercentUsed() float64 {
	if r.Allowance == 0 {
		return 0
	}
	return float64(r.DaysUsed) / float64(r.Allowance) * 100
}
