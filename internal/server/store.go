package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ellieharper/otj/internal/domain"
)

// ErrNotFound reports that no row matched the requested id.
var ErrNotFound = errors.New("not found")

// Store persists journal entries and holiday records in SQLite.
type Store struct {
	db *sql.DB
}

// OpenStore opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode and runs migrations automatically.
func OpenStore(path string) (*Store, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL gives better concurrent read performance; harmless on :memory:.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		total_hours REAL NOT NULL DEFAULT 0,
		is_off_the_job INTEGER NOT NULL DEFAULT 1,
		ksbs TEXT NOT NULL DEFAULT '[]',
		documents TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date)`,
	`CREATE TABLE IF NOT EXISTS holidays (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		apprentice_id INTEGER NOT NULL UNIQUE,
		enabled INTEGER NOT NULL DEFAULT 0,
		days_used INTEGER NOT NULL DEFAULT 0,
		allowance INTEGER NOT NULL DEFAULT 28
	)`,
	`CREATE TABLE IF NOT EXISTS ksbs (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		description TEXT NOT NULL
	)`,
}

func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return seedKSBs(db)
}

// seedKSBs loads the built-in catalog into an empty ksbs table.
func seedKSBs(db *sql.DB) error {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ksbs`).Scan(&n); err != nil {
		return fmt.Errorf("counting ksbs: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, k := range domain.DefaultKSBCatalog() {
		if _, err := db.Exec(`INSERT INTO ksbs (id, type, description) VALUES (?, ?, ?)`,
			k.ID, string(k.Type), k.Description); err != nil {
			return fmt.Errorf("seeding ksb %s: %w", k.ID, err)
		}
	}
	return nil
}

const entryColumns = `id, title, category, description, date, start_time, end_time,
	total_hours, is_off_the_job, ksbs, documents, created_at`

func (s *Store) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM entries ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetEntry(ctx context.Context, id int64) (domain.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.JournalEntry{}, ErrNotFound
	}
	return e, err
}

func (s *Store) CreateEntry(ctx context.Context, p domain.EntryPayload) (domain.JournalEntry, error) {
	ksbs, docs, err := encodeTags(p)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	createdAt := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `INSERT INTO entries
		(title, category, description, date, start_time, end_time,
		 total_hours, is_off_the_job, ksbs, documents, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Category, p.Description, p.Date.String(), p.StartTime, p.EndTime,
		p.TotalHours, boolToInt(p.IsOffTheJob), ksbs, docs,
		createdAt.Format(time.RFC3339))
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("inserting entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("reading insert id: %w", err)
	}
	return s.GetEntry(ctx, id)
}

// UpdateEntry replaces the writable fields of an entry. The row keeps its
// original created_at.
func (s *Store) UpdateEntry(ctx context.Context, id int64, p domain.EntryPayload) (domain.JournalEntry, error) {
	ksbs, docs, err := encodeTags(p)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	res, err := s.db.ExecContext(ctx, `UPDATE entries SET
		title = ?, category = ?, description = ?, date = ?, start_time = ?,
		end_time = ?, total_hours = ?, is_off_the_job = ?, ksbs = ?, documents = ?
		WHERE id = ?`,
		p.Title, p.Category, p.Description, p.Date.String(), p.StartTime, p.EndTime,
		p.TotalHours, boolToInt(p.IsOffTheJob), ksbs, docs, id)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("updating entry %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("checking update: %w", err)
	}
	if n == 0 {
		return domain.JournalEntry{}, ErrNotFound
	}
	return s.GetEntry(ctx, id)
}

func (s *Store) DeleteEntry(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListHolidays(ctx context.Context) ([]domain.HolidayRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, apprentice_id, enabled, days_used, allowance FROM holidays ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var records []domain.HolidayRecord
	for rows.Next() {
		var r domain.HolidayRecord
		var enabled int
		if err := rows.Scan(&r.ID, &r.ApprenticeID, &enabled, &r.DaysUsed, &r.Allowance); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		r.Enabled = enabled != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// CreateHoliday inserts a record after applying the same clamps every
// write path applies, so a row can never hold days outside its allowance.
func (s *Store) CreateHoliday(ctx context.Context, p domain.HolidayPayload) (domain.HolidayRecord, error) {
	r := (domain.HolidayRecord{
		ApprenticeID: p.ApprenticeID,
		Enabled:      p.Enabled,
		DaysUsed:     p.DaysUsed,
		Allowance:    p.Allowance,
	}).Normalize()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO holidays (apprentice_id, enabled, days_used, allowance) VALUES (?, ?, ?, ?)`,
		r.ApprenticeID, boolToInt(r.Enabled), r.DaysUsed, r.Allowance)
	if err != nil {
		return domain.HolidayRecord{}, fmt.Errorf("inserting holiday record: %w", err)
	}
	r.ID, err = res.LastInsertId()
	if err != nil {
		return domain.HolidayRecord{}, fmt.Errorf("reading insert id: %w", err)
	}
	return r, nil
}

func (s *Store) UpdateHoliday(ctx context.Context, id int64, p domain.HolidayPayload) (domain.HolidayRecord, error) {
	r := (domain.HolidayRecord{
		ID:           id,
		ApprenticeID: p.ApprenticeID,
		Enabled:      p.Enabled,
		DaysUsed:     p.DaysUsed,
		Allowance:    p.Allowance,
	}).Normalize()
	res, err := s.db.ExecContext(ctx,
		`UPDATE holidays SET enabled = ?, days_used = ?, allowance = ? WHERE id = ?`,
		boolToInt(r.Enabled), r.DaysUsed, r.Allowance, id)
	if err != nil {
		return domain.HolidayRecord{}, fmt.Errorf("updating holiday record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.HolidayRecord{}, fmt.Errorf("checking update: %w", err)
	}
	if n == 0 {
		return domain.HolidayRecord{}, ErrNotFound
	}
	return r, nil
}

func (s *Store) ListKSBs(ctx context.Context) ([]domain.KSBTag, error) {
	return s.queryKSBs(ctx, `SELECT id, type, description FROM ksbs ORDER BY id`)
}

func (s *Store) ListKSBsByType(ctx context.Context, typ domain.KSBType) ([]domain.KSBTag, error) {
	return s.queryKSBs(ctx, `SELECT id, type, description FROM ksbs WHERE type = ? ORDER BY id`, string(typ))
}

func (s *Store) queryKSBs(ctx context.Context, query string, args ...any) ([]domain.KSBTag, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ksbs: %w", err)
	}
	defer rows.Close()

	var tags []domain.KSBTag
	for rows.Next() {
		var k domain.KSBTag
		var typ string
		if err := rows.Scan(&k.ID, &typ, &k.Description); err != nil {
			return nil, fmt.Errorf("scanning ksb: %w", err)
		}
		k.Type = domain.KSBType(typ)
		tags = append(tags, k)
	}
	return tags, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (domain.JournalEntry, error) {
	var (
		e          domain.JournalEntry
		date       string
		offTheJob  int
		ksbsJSON   string
		docsJSON   string
		createdRaw string
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Category, &e.Description, &date,
		&e.StartTime, &e.EndTime, &e.TotalHours, &offTheJob,
		&ksbsJSON, &docsJSON, &createdRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scanning entry: %w", err)
	}

	var err error
	e.Date, err = domain.ParseDate(date)
	if err != nil {
		return e, fmt.Errorf("parsing entry date %q: %w", date, err)
	}
	e.IsOffTheJob = offTheJob != 0
	if err := json.Unmarshal([]byte(ksbsJSON), &e.KSBs); err != nil {
		return e, fmt.Errorf("decoding ksbs: %w", err)
	}
	if err := json.Unmarshal([]byte(docsJSON), &e.Documents); err != nil {
		return e, fmt.Errorf("decoding documents: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdRaw)
	if err != nil {
		return e, fmt.Errorf("parsing created_at %q: %w", createdRaw, err)
	}
	return e, nil
}

func encodeTags(p domain.EntryPayload) (ksbs, docs string, err error) {
	k := p.KSBs
	if k == nil {
		k = []domain.KSBTag{}
	}
	d := p.Documents
	if d == nil {
		d = []domain.DocumentMeta{}
	}
	kb, err := json.Marshal(k)
	if err != nil {
		return "", "", fmt.Errorf("encoding ksbs: %w", err)
	}
	db, err := json.Marshal(d)
	if err != nil {
		return "", "", fmt.Errorf("encoding documents: %w", err)
	}
	return string(kb), string(db), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
