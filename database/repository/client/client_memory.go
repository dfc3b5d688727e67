// File: database/repository/client/client_memory.go
package clientRepo

import (
	"context"
	"sync"

	"viaduct/models"
)

// memoryClientRepo is the storage-less backend: records live for the
// process lifetime only. Used when PERSISTENCE_BACKEND=memory.
type memoryClientRepo struct {
	mu      sync.RWMutex
	records map[string]models.Client
}

// NewMemoryClientRepo constructs an in-memory ClientRepository.
func NewMemoryClientRepo() ClientRepository {
	return &memoryClientRepo{records: make(map[string]models.Client)}
}

func (r *memoryClientRepo) List(ctx context.Context) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make([]models.Client, 0, len(r.records))
	for _, c := range r.records {
		clients = append(clients, c)
	}
	return clients, nil
}

func (r *memoryClientRepo) Upsert(ctx context.Context, client models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[client.ID] = client
	return nil
}

func (r *memoryClientRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}
