// File: database/repository/waitinglist/waitinglist_memory.go
package waitinglistRepo

import (
	"context"
	"sync"

	"viaduct/models"
)

type memoryWaitingListRepo struct {
	mu      sync.RWMutex
	records map[string]models.WaitingListEntry
}

// NewMemoryWaitingListRepo constructs an in-memory WaitingListRepository.
func NewMemoryWaitingListRepo() WaitingListRepository {
	return &memoryWaitingListRepo{records: make(map[string]models.WaitingListEntry)}
}

func (r *memoryWaitingListRepo) List(ctx context.Context) ([]models.WaitingListEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]models.WaitingListEntry, 0, len(r.records))
	for _, e := range r.records {
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *memoryWaitingListRepo) Upsert(ctx context.Context, entry models.WaitingListEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[entry.ID] = entry
	return nil
}

func (r *memoryWaitingListRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}
