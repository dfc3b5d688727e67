package registry

import (
	"context"

	"viaduct/models"
	"viaduct/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Load replaces the roster with the persisted entries, falling back to
// empty on failure.
func (r *DefaultWaitingListRegistry) Load(ctx context.Context) error {
	entries, err := r.Repo.List(ctx)
	if err != nil {
		utils.GetLogger().Error("Failed to load waiting list, starting empty", zap.Error(err))
		entries = nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = entries
	return nil
}

// List returns a copy of the roster.
func (r *DefaultWaitingListRegistry) List() []models.WaitingListEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.WaitingListEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Add appends a prospective client. Name and email are required.
func (r *DefaultWaitingListRegistry) Add(entry models.WaitingListEntry) (*models.WaitingListEntry, error) {
	if entry.Name == "" || entry.Email == "" {
		return nil, ValidationError{Reason: "name and email are required"}
	}
	entry.ID = uuid.New().String()
	entry.CreatedAt = r.Now()

	r.mu.Lock()
	next := make([]models.WaitingListEntry, len(r.entries), len(r.entries)+1)
	copy(next, r.entries)
	r.entries = append(next, entry)
	r.mu.Unlock()

	if err := r.Repo.Upsert(context.Background(), entry); err != nil {
		utils.GetLogger().Error("Failed to persist waiting list entry, keeping local state",
			zap.String("id", entry.ID), zap.Error(err))
	}
	return &entry, nil
}

// Delete removes an entry from the roster.
func (r *DefaultWaitingListRegistry) Delete(id string) error {
	r.mu.Lock()
	idx := -1
	for i, e := range r.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return NotFoundError{Kind: "waiting list entry", ID: id}
	}
	next := make([]models.WaitingListEntry, 0, len(r.entries)-1)
	next = append(next, r.entries[:idx]...)
	next = append(next, r.entries[idx+1:]...)
	r.entries = next
	r.mu.Unlock()

	if err := r.Repo.Delete(context.Background(), id); err != nil {
		utils.GetLogger().Error("Failed to delete waiting list entry from store",
			zap.String("id", id), zap.Error(err))
	}
	return nil
}
