package registry

import (
	"context"
	"time"

	"viaduct/models"
	"viaduct/services/schedule"
	"viaduct/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const shownKeyPrefix = "reminder:shown:"

// Load replaces the collection with the persisted reminders, falling
// back to empty on failure.
func (r *DefaultReminderRegistry) Load(ctx context.Context) error {
	reminders, err := r.Repo.List(ctx)
	if err != nil {
		utils.GetLogger().Error("Failed to load reminders, starting empty", zap.Error(err))
		reminders = nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders = reminders
	return nil
}

// List returns a copy of all reminders.
func (r *DefaultReminderRegistry) List() []models.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Reminder, len(r.reminders))
	copy(out, r.reminders)
	return out
}

// ForClient returns the client's reminder, if any.
func (r *DefaultReminderRegistry) ForClient(clientID string) (*models.Reminder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rem := range r.reminders {
		if rem.ClientID == clientID {
			out := rem
			return &out, true
		}
	}
	return nil, false
}

// Save sets the client's single reminder. An empty remindAt clears it;
// otherwise any existing reminder for the client is replaced in place.
func (r *DefaultReminderRegistry) Save(clientID, remindAt, message string) (*models.Reminder, error) {
	if remindAt == "" {
		r.DeleteForClient(clientID)
		return nil, nil
	}
	if schedule.ParseDate(remindAt).IsZero() {
		return nil, ValidationError{Reason: "remindAt must be a valid YYYY-MM-DD value"}
	}

	r.mu.Lock()
	var saved models.Reminder
	next := make([]models.Reminder, len(r.reminders))
	copy(next, r.reminders)

	found := false
	for i, rem := range next {
		if rem.ClientID == clientID {
			rem.RemindAt = remindAt
			rem.Message = message
			next[i] = rem
			saved = rem
			found = true
			break
		}
	}
	if !found {
		saved = models.Reminder{
			ID:       uuid.New().String(),
			ClientID: clientID,
			RemindAt: remindAt,
			Message:  message,
		}
		next = append(next, saved)
	}
	r.reminders = next
	r.mu.Unlock()

	if err := r.Repo.Upsert(context.Background(), saved); err != nil {
		utils.GetLogger().Error("Failed to persist reminder, keeping local state",
			zap.String("id", saved.ID), zap.Error(err))
	}
	if r.Enqueue != nil {
		r.Enqueue(saved)
	}
	return &saved, nil
}

// Due returns reminders whose date has arrived. ISO dates compare
// correctly as strings.
func (r *DefaultReminderRegistry) Due() []models.Reminder {
	today := r.Now().Format(schedule.DateLayout)

	r.mu.Lock()
	defer r.mu.Unlock()
	var due []models.Reminder
	for _, rem := range r.reminders {
		if rem.RemindAt != "" && rem.RemindAt <= today {
			due = append(due, rem)
		}
	}
	return due
}

// MarkShown records that the reminder was surfaced today and reports
// whether this was the first time. Backed by Redis SETNX with a TTL to
// the end of the day; without Redis every call reports first-time, so
// the popup is simply shown again.
func (r *DefaultReminderRegistry) MarkShown(id string) bool {
	if r.Cache == nil {
		return true
	}
	now := r.Now()
	key := shownKeyPrefix + id + ":" + now.Format(schedule.DateLayout)
	ttl := schedule.Midnight(now).AddDate(0, 0, 1).Sub(now)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	first, err := r.Cache.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		utils.GetLogger().Warn("Reminder dedup cache unavailable", zap.Error(err))
		return true
	}
	return first
}

// DeleteForClient removes the client's reminders, locally and in the
// store.
func (r *DefaultReminderRegistry) DeleteForClient(clientID string) {
	r.mu.Lock()
	var next []models.Reminder
	for _, rem := range r.reminders {
		if rem.ClientID != clientID {
			next = append(next, rem)
		}
	}
	r.reminders = next
	r.mu.Unlock()

	if err := r.Repo.DeleteByClient(context.Background(), clientID); err != nil {
		utils.GetLogger().Error("Failed to delete reminders from store",
			zap.String("clientId", clientID), zap.Error(err))
	}
}
