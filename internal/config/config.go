// Package config reads runtime configuration from environment variables.
// Targets and the holiday allowance are plain inputs to the core: nothing
// here is derived from the entry collection.
package config

import (
	"os"
	"strconv"

	"github.com/ellieharper/otj/internal/domain"
	"github.com/ellieharper/otj/internal/progress"
)

// Config holds everything the client and the dev server need at startup.
type Config struct {
	// APIBaseURL is the remote journal store.
	APIBaseURL string

	// ApprenticeID scopes the holiday record.
	ApprenticeID int64

	// WeeklyTargetHours and AnnualTargetHours are the OTJ targets. The
	// annual default is 52 weeks of the weekly target.
	WeeklyTargetHours float64
	AnnualTargetHours float64

	// DefaultAllowance seeds a fresh holiday record, in days.
	DefaultAllowance int

	// Addr and DBPath configure `otj serve`.
	Addr   string
	DBPath string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBaseURL:        "http://localhost:8081",
		ApprenticeID:      1,
		WeeklyTargetHours: 6,
		AnnualTargetHours: 6 * 52,
		DefaultAllowance:  domain.DefaultHolidayAllowance,
		Addr:              ":8081",
		DBPath:            "",
	}
}

// Load reads configuration from OTJ_* environment variables, falling back
// to defaults for anything unset.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("OTJ_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("OTJ_APPRENTICE_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.ApprenticeID = n
		}
	}
	weeklySet := false
	if v := os.Getenv("OTJ_WEEKLY_TARGET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.WeeklyTargetHours = f
			cfg.AnnualTargetHours = f * 52
			weeklySet = true
		}
	}
	if v := os.Getenv("OTJ_ANNUAL_TARGET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.AnnualTargetHours = f
		}
	} else if !weeklySet {
		cfg.AnnualTargetHours = cfg.WeeklyTargetHours * 52
	}
	if v := os.Getenv("OTJ_HOLIDAY_ALLOWANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.DefaultAllowance = n
		}
	}
	if v := os.Getenv("OTJ_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("OTJ_DB"); v != "" {
		cfg.DBPath = v
	}

	return cfg
}

// Targets returns the progress targets view of the config.
func (c Config) Targets() progress.Targets {
	return progress.Targets{
		WeeklyHours: c.WeeklyTargetHours,
		AnnualHours: c.AnnualTargetHours,
	}
}
