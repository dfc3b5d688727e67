package registry

import (
	"context"
	"strings"
	"time"

	"viaduct/models"
	"viaduct/services/schedule"
	"viaduct/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// warningWindowDays is how far ahead a Reserved booking's start date
// may lie before it needs confirmation urgency.
const warningWindowDays = 14

// IsWarningClient reports whether a booking needs the confirmation
// warning: status Reserved and a start date between today and today+14
// inclusive. Past-due starts are not flagged.
func IsWarningClient(status, startDate string, today time.Time) bool {
	if status != models.StatusReserved || startDate == "" {
		return false
	}
	start := schedule.ParseDate(startDate)
	if start.IsZero() {
		return false
	}
	diffDays := int(start.Sub(schedule.Midnight(today)).Hours() / 24)
	return diffDays >= 0 && diffDays <= warningWindowDays
}

// Load replaces the collection with the persisted records. A failed or
// malformed load falls back to an empty dataset instead of failing
// startup.
func (r *DefaultClientRegistry) Load(ctx context.Context) error {
	clients, err := r.Repo.List(ctx)
	if err != nil {
		utils.GetLogger().Error("Failed to load clients, starting empty", zap.Error(err))
		clients = nil
	}
	// Stored derived fields are stale by definition; drop them so the
	// snapshot is the only source.
	for i := range clients {
		clients[i].Weeks = nil
		clients[i].HasWarning = false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = clients
	r.version++
	return nil
}

// List returns a copy of the raw stored records, without derived state.
func (r *DefaultClientRegistry) List() []models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

// Get returns the client with derived state computed against the
// current week window.
func (r *DefaultClientRegistry) Get(id string) (*models.Client, bool) {
	snap := r.Snapshot("")
	for _, c := range snap.Clients {
		if c.ID == id {
			return &c, true
		}
	}
	return nil, false
}

// Add validates and appends a new booking. Required: name, order
// number, both dates; end date strictly after start date; the (name,
// orderNumber) pair must be unique case-insensitively. Uniqueness is
// enforced at creation only, not on later edits.
func (r *DefaultClientRegistry) Add(form models.ClientForm) (*models.Client, error) {
	if form.Name == "" || form.OrderNumber == "" || form.StartDate == "" || form.EndDate == "" {
		return nil, ValidationError{Reason: "name, order number, start date and end date are required"}
	}
	start := schedule.ParseDate(form.StartDate)
	end := schedule.ParseDate(form.EndDate)
	if start.IsZero() || end.IsZero() {
		return nil, ValidationError{Reason: "dates must be valid YYYY-MM-DD values"}
	}
	if !end.After(start) {
		return nil, ValidationError{Reason: "end date must be after start date"}
	}

	status := form.Status
	if status == "" {
		status = models.StatusConfirmed
	}
	intensity := schedule.NormalizeIntensity(form.Intensity)
	if intensity == "" {
		intensity = models.IntensityEvery1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clients {
		if strings.EqualFold(c.Name, form.Name) && strings.EqualFold(c.OrderNumber, form.OrderNumber) {
			return nil, ValidationError{Reason: "a client with this name and order number already exists"}
		}
	}

	client := models.Client{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Status:      status,
		OrderNumber: form.OrderNumber,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Intensity:   intensity,
		Comment:     form.Comment,
	}

	next := make([]models.Client, len(r.clients), len(r.clients)+1)
	copy(next, r.clients)
	r.clients = append(next, client)
	r.version++

	r.persist(client)

	derived := r.derive(client, r.weekWindowLocked(), r.Now())
	return &derived, nil
}

// Update merges the provided fields over the existing record. Fields
// left nil are unchanged; intensity free text is snapped to the
// nearest recognized category. Derived state is recomputed from the
// post-update values.
func (r *DefaultClientRegistry) Update(id string, upd models.ClientUpdate) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, c := range r.clients {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, NotFoundError{Kind: "client", ID: id}
	}

	next := make([]models.Client, len(r.clients))
	copy(next, r.clients)
	c := next[idx]

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.OrderNumber != nil {
		c.OrderNumber = *upd.OrderNumber
	}
	if upd.StartDate != nil {
		c.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		c.EndDate = *upd.EndDate
	}
	if upd.Intensity != nil {
		c.Intensity = schedule.NormalizeIntensity(*upd.Intensity)
	}
	if upd.Comment != nil {
		c.Comment = *upd.Comment
	}
	if upd.Files != nil {
		c.Files = *upd.Files
	}

	next[idx] = c
	r.clients = next
	r.version++

	r.persist(c)

	derived := r.derive(c, r.weekWindowLocked(), r.Now())
	return &derived, nil
}

// Delete removes the client and cascades deletion of its reminders.
func (r *DefaultClientRegistry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, c := range r.clients {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return NotFoundError{Kind: "client", ID: id}
	}

	next := make([]models.Client, 0, len(r.clients)-1)
	next = append(next, r.clients[:idx]...)
	next = append(next, r.clients[idx+1:]...)
	r.clients = next
	r.version++

	if err := r.Repo.Delete(context.Background(), id); err != nil {
		utils.GetLogger().Error("Failed to delete client from store", zap.String("id", id), zap.Error(err))
	}
	if r.Reminders != nil {
		r.Reminders.DeleteForClient(id)
	}
	return nil
}

// Snapshot returns the schedule view: the rolling week window, every
// client with computed loads and warning flags, per-week sums and
// over-capacity ids. The full snapshot is memoized against (version,
// day); query filtering narrows the client rows without touching the
// global sums, matching the table's search box.
func (r *DefaultClientRegistry) Snapshot(query string) *models.ScheduleSnapshot {
	r.mu.Lock()
	now := r.Now()
	day := now.Format(schedule.DateLayout)
	if r.snap == nil || r.snapVersion != r.version || r.snapDay != day {
		r.snap = r.computeLocked(now)
		r.snapVersion = r.version
		r.snapDay = day
	}
	snap := r.snap
	r.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return snap
	}
	filtered := *snap
	filtered.Clients = nil
	for _, c := range snap.Clients {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.OrderNumber), q) {
			filtered.Clients = append(filtered.Clients, c)
		}
	}
	return &filtered
}

// RefreshToday invalidates the memoized snapshot when the calendar day
// has advanced, so warnings and the current-week marker roll over
// without any mutation. Driven by the minute ticker.
func (r *DefaultClientRegistry) RefreshToday() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapDay != "" && r.snapDay != r.Now().Format(schedule.DateLayout) {
		r.version++
	}
}

func (r *DefaultClientRegistry) weekWindowLocked() []models.Week {
	return schedule.GenerateWeeks(schedule.CurrentWeekStartAt(r.Now()), r.WeekWindow)
}

func (r *DefaultClientRegistry) derive(c models.Client, weeks []models.Week, now time.Time) models.Client {
	c.Weeks = schedule.ComputeWeekValues(c.StartDate, c.EndDate, c.Intensity, weeks)
	c.HasWarning = IsWarningClient(c.Status, c.StartDate, now)
	return c
}

func (r *DefaultClientRegistry) computeLocked(now time.Time) *models.ScheduleSnapshot {
	weeks := r.weekWindowLocked()
	clients := make([]models.Client, len(r.clients))
	for i, c := range r.clients {
		clients[i] = r.derive(c, weeks, now)
	}
	sums := schedule.SumPerWeek(clients, weeks)
	return &models.ScheduleSnapshot{
		Weeks:         weeks,
		Clients:       clients,
		WeekSums:      sums,
		OverCapacity:  schedule.OverCapacityWeeks(sums, weeks, r.CapacityLimit),
		CurrentWeekID: schedule.CurrentWeekID(weeks, now),
		CapacityLimit: r.CapacityLimit,
	}
}

// persist writes optimistically: a failed store write is logged and
// the in-memory state stays authoritative. No rollback.
func (r *DefaultClientRegistry) persist(c models.Client) {
	if err := r.Repo.Upsert(context.Background(), c); err != nil {
		utils.GetLogger().Error("Failed to persist client, keeping local state",
			zap.String("id", c.ID), zap.Error(err))
	}
}
