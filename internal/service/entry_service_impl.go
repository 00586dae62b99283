package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ellieharper/otj/internal/domain"
)

type entryService struct {
	api EntryAPI
}

func NewEntryService(api EntryAPI) EntryService {
	return &entryService{api: api}
}

func (s *entryService) List(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.api.ListEntries(ctx)
}

func (s *entryService) Create(ctx context.Context, payload domain.EntryPayload) (domain.JournalEntry, error) {
	return s.api.CreateEntry(ctx, payload)
}

// CreateBatch persists every payload of a multi-date submission. The calls
// run concurrently; results come back in payload order. If any call fails
// the whole batch reports failure and no entries are returned, so the
// caller never merges a partial set.
func (s *entryService) CreateBatch(ctx context.Context, payloads []domain.EntryPayload) ([]domain.JournalEntry, error) {
	if len(payloads) == 0 {
		return nil, errors.New("empty batch")
	}

	created := make([]domain.JournalEntry, len(payloads))
	errs := make([]error, len(payloads))

	var wg sync.WaitGroup
	for i, p := range payloads {
		wg.Add(1)
		go func(i int, p domain.EntryPayload) {
			defer wg.Done()
			created[i], errs[i] = s.api.CreateEntry(ctx, p)
		}(i, p)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("creating %d entries: %w", len(payloads), err)
	}
	return created, nil
}

func (s *entryService) Update(ctx context.Context, id int64, payload domain.EntryPayload) (domain.JournalEntry, error) {
	return s.api.UpdateEntry(ctx, id, payload)
}

func (s *entryService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteEntry(ctx, id)
}
