package registry

import (
	"context"
	"sync"
	"time"

	clientRepo "viaduct/database/repository/client"
	orderRepo "viaduct/database/repository/order"
	reminderRepo "viaduct/database/repository/reminder"
	waitinglistRepo "viaduct/database/repository/waitinglist"
	"viaduct/models"

	"github.com/go-redis/redis/v8"
)

// ClientRegistry owns the in-memory booking collection and its
// mutation rules. Derived state (weeks, warnings, sums) is never
// stored; Snapshot recomputes it from the current week window.
type ClientRegistry interface {
	Load(ctx context.Context) error
	List() []models.Client
	Get(id string) (*models.Client, bool)
	Add(form models.ClientForm) (*models.Client, error)
	Update(id string, upd models.ClientUpdate) (*models.Client, error)
	Delete(id string) error
	Snapshot(query string) *models.ScheduleSnapshot
	RefreshToday()
}

// DefaultClientRegistry is the production implementation. Collections
// are single-writer and mutated by whole-slice replacement, so readers
// holding a snapshot never observe partial edits.
type DefaultClientRegistry struct {
	Repo          clientRepo.ClientRepository
	Reminders     ReminderRegistry
	WeekWindow    int
	CapacityLimit int
	Now           func() time.Time

	mu      sync.Mutex
	clients []models.Client

	// version bumps on every mutation and on day change; the cached
	// snapshot is valid only while it matches.
	version     uint64
	snap        *models.ScheduleSnapshot
	snapVersion uint64
	snapDay     string
}

// NewClientRegistry wires a registry against its backing store. The
// reminder registry is needed for cascading deletes.
func NewClientRegistry(repo clientRepo.ClientRepository, reminders ReminderRegistry, weekWindow, capacityLimit int) *DefaultClientRegistry {
	return &DefaultClientRegistry{
		Repo:          repo,
		Reminders:     reminders,
		WeekWindow:    weekWindow,
		CapacityLimit: capacityLimit,
		Now:           time.Now,
	}
}

// ReminderRegistry owns the reminder collection. One reminder per
// client: saving replaces, saving an empty date deletes.
type ReminderRegistry interface {
	Load(ctx context.Context) error
	List() []models.Reminder
	ForClient(clientID string) (*models.Reminder, bool)
	Save(clientID, remindAt, message string) (*models.Reminder, error)
	Due() []models.Reminder
	MarkShown(id string) bool
	DeleteForClient(clientID string)
}

// DefaultReminderRegistry is the production implementation.
type DefaultReminderRegistry struct {
	Repo  reminderRepo.ReminderRepository
	Cache *redis.Client // optional; shown-today dedup
	Now   func() time.Time

	// Enqueue, when set, hands a saved reminder to the async worker.
	Enqueue func(models.Reminder)

	mu        sync.Mutex
	reminders []models.Reminder
}

// NewReminderRegistry wires a reminder registry against its store.
func NewReminderRegistry(repo reminderRepo.ReminderRepository, cache *redis.Client) *DefaultReminderRegistry {
	return &DefaultReminderRegistry{
		Repo:  repo,
		Cache: cache,
		Now:   time.Now,
	}
}

// WaitingListRegistry owns the waiting-list roster. CRUD only, no
// relation to clients or weeks.
type WaitingListRegistry interface {
	Load(ctx context.Context) error
	List() []models.WaitingListEntry
	Add(entry models.WaitingListEntry) (*models.WaitingListEntry, error)
	Delete(id string) error
}

// DefaultWaitingListRegistry is the production implementation.
type DefaultWaitingListRegistry struct {
	Repo waitinglistRepo.WaitingListRepository
	Now  func() time.Time

	mu      sync.Mutex
	entries []models.WaitingListEntry
}

// NewWaitingListRegistry wires a waiting-list registry against its store.
func NewWaitingListRegistry(repo waitinglistRepo.WaitingListRepository) *DefaultWaitingListRegistry {
	return &DefaultWaitingListRegistry{Repo: repo, Now: time.Now}
}

// OrderRegistry owns the agency order feed.
type OrderRegistry interface {
	Load(ctx context.Context) error
	List() []models.Order
	Create(order models.Order) (*models.Order, error)
	Update(id string, order models.Order) (*models.Order, error)
	Delete(id string) error
}

// DefaultOrderRegistry is the production implementation.
type DefaultOrderRegistry struct {
	Repo orderRepo.OrderRepository
	Now  func() time.Time

	mu     sync.Mutex
	orders []models.Order
}

// NewOrderRegistry wires an order registry against its store.
func NewOrderRegistry(repo orderRepo.OrderRepository) *DefaultOrderRegistry {
	return &DefaultOrderRegistry{Repo: repo, Now: time.Now}
}
