package registry

import (
	"testing"
	"time"

	reminderRepo "viaduct/database/repository/reminder"
	"viaduct/models"
)

func newTestReminders() *DefaultReminderRegistry {
	r := NewReminderRegistry(reminderRepo.NewMemoryReminderRepo(), nil)
	r.Now = func() time.Time { return fixedNow }
	return r
}

func TestSave_CreatesAndReplaces(t *testing.T) {
	reg := newTestReminders()

	first, err := reg.Save("c1", "2025-08-25", "send offer")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if first.ID == "" || first.ClientID != "c1" {
		t.Fatalf("unexpected reminder %+v", first)
	}

	second, err := reg.Save("c1", "2025-09-01", "follow up")
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if second.ID != first.ID {
		t.Error("re-saving must replace the existing reminder, not add one")
	}
	if got := len(reg.List()); got != 1 {
		t.Fatalf("expected a single reminder per client, have %d", got)
	}

	rem, ok := reg.ForClient("c1")
	if !ok || rem.RemindAt != "2025-09-01" || rem.Message != "follow up" {
		t.Errorf("replacement not applied: %+v", rem)
	}
}

func TestSave_EmptyDateClears(t *testing.T) {
	reg := newTestReminders()
	reg.Save("c1", "2025-08-25", "send offer")

	rem, err := reg.Save("c1", "", "")
	if err != nil {
		t.Fatalf("clearing save failed: %v", err)
	}
	if rem != nil {
		t.Errorf("clearing save must return no reminder, got %+v", rem)
	}
	if _, ok := reg.ForClient("c1"); ok {
		t.Error("reminder should be gone after clearing")
	}
}

func TestSave_RejectsMalformedDate(t *testing.T) {
	reg := newTestReminders()
	if _, err := reg.Save("c1", "25.08.2025", "bad"); err == nil {
		t.Fatal("expected validation error for malformed date")
	}
	if got := len(reg.List()); got != 0 {
		t.Fatalf("rejected save must not mutate the collection, have %d", got)
	}
}

func TestSave_InvokesEnqueueHook(t *testing.T) {
	reg := newTestReminders()

	var enqueued []models.Reminder
	reg.Enqueue = func(rem models.Reminder) { enqueued = append(enqueued, rem) }

	reg.Save("c1", "2025-08-25", "send offer")
	if len(enqueued) != 1 || enqueued[0].ClientID != "c1" {
		t.Fatalf("expected one enqueued reminder, got %v", enqueued)
	}
}

func TestDue_PastAndTodayOnly(t *testing.T) {
	reg := newTestReminders()
	reg.Save("past", "2025-08-01", "overdue")
	reg.Save("today", "2025-08-20", "due now")
	reg.Save("future", "2025-08-21", "not yet")

	due := reg.Due()
	if len(due) != 2 {
		t.Fatalf("expected 2 due reminders, got %d", len(due))
	}
	for _, rem := range due {
		if rem.ClientID == "future" {
			t.Error("future reminder must not be due")
		}
	}
}

func TestMarkShown_WithoutCacheAlwaysFirst(t *testing.T) {
	reg := newTestReminders()
	if !reg.MarkShown("any") {
		t.Error("without a dedup cache every call must report first-time")
	}
	if !reg.MarkShown("any") {
		t.Error("repeat calls still report first-time without a cache")
	}
}

func TestDeleteForClient_LeavesOthers(t *testing.T) {
	reg := newTestReminders()
	reg.Save("c1", "2025-08-25", "one")
	reg.Save("c2", "2025-08-26", "two")

	reg.DeleteForClient("c1")

	if _, ok := reg.ForClient("c1"); ok {
		t.Error("c1 reminder should be deleted")
	}
	if _, ok := reg.ForClient("c2"); !ok {
		t.Error("c2 reminder must survive")
	}
}
