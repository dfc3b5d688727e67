// File: database/repository/reminder/reminder_memory.go
package reminderRepo

import (
	"context"
	"sync"

	"viaduct/models"
)

type memoryReminderRepo struct {
	mu      sync.RWMutex
	records map[string]models.Reminder
}

// NewMemoryReminderRepo constructs an in-memory ReminderRepository.
func NewMemoryReminderRepo() ReminderRepository {
	return &memoryReminderRepo{records: make(map[string]models.Reminder)}
}

func (r *memoryReminderRepo) List(ctx context.Context) ([]models.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reminders := make([]models.Reminder, 0, len(r.records))
	for _, rec := range r.records {
		reminders = append(reminders, rec)
	}
	return reminders, nil
}

func (r *memoryReminderRepo) Upsert(ctx context.Context, reminder models.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[reminder.ID] = reminder
	return nil
}

func (r *memoryReminderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *memoryReminderRepo) DeleteByClient(ctx context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rec := range r.records {
		if rec.ClientID == clientID {
			delete(r.records, id)
		}
	}
	return nil
}
