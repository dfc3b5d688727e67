package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	clientRepo "viaduct/database/repository/client"
	orderRepo "viaduct/database/repository/order"
	reminderRepo "viaduct/database/repository/reminder"
	waitinglistRepo "viaduct/database/repository/waitinglist"
	"viaduct/handlers"
	"viaduct/models"
	"viaduct/routes"
	"viaduct/services/registry"

	"github.com/gin-gonic/gin"
)

// Wednesday 2025-08-20; the surrounding week is w-34-2025.
var testNow = time.Date(2025, time.August, 20, 10, 0, 0, 0, time.Local)

func newTestRouter() (*gin.Engine, *registry.DefaultClientRegistry) {
	gin.SetMode(gin.TestMode)

	reminders := registry.NewReminderRegistry(reminderRepo.NewMemoryReminderRepo(), nil)
	reminders.Now = func() time.Time { return testNow }
	clients := registry.NewClientRegistry(clientRepo.NewMemoryClientRepo(), reminders, 20, 240)
	clients.Now = func() time.Time { return testNow }

	waitinglist := registry.NewWaitingListRegistry(waitinglistRepo.NewMemoryWaitingListRepo())
	orders := registry.NewOrderRegistry(orderRepo.NewMemoryOrderRepo())

	router := gin.New()
	routes.RegisterAll(router, &routes.HandlerBundle{
		Schedule:    handlers.NewScheduleHandler(clients),
		Clients:     handlers.NewClientHandler(clients),
		Reminders:   handlers.NewReminderHandler(reminders, clients),
		WaitingList: handlers.NewWaitingListHandler(waitinglist),
		Orders:      handlers.NewOrderHandler(orders),
		Storage:     handlers.NewStorageHandler(nil, clients),
	})
	return router, clients
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddClientEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/clients", models.ClientForm{
		Name:        "Acme",
		OrderNumber: "ORD-1",
		StartDate:   "2025-08-18",
		EndDate:     "2025-08-24",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Client
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != models.StatusConfirmed {
		t.Errorf("status should default to Confirmed, got %q", created.Status)
	}
	if created.Weeks["w-34-2025"] != 40 {
		t.Errorf("expected derived load 40 for w-34-2025, got %v", created.Weeks)
	}
}

func TestAddClientEndpoint_ValidationFailure(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/clients", models.ClientForm{Name: "Acme"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestScheduleEndpoint(t *testing.T) {
	router, _ := newTestRouter()
	doJSON(t, router, http.MethodPost, "/api/clients", models.ClientForm{
		Name:        "Acme",
		OrderNumber: "ORD-1",
		StartDate:   "2025-08-18",
		EndDate:     "2025-08-24",
	})

	w := doJSON(t, router, http.MethodGet, "/api/schedule", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var snap models.ScheduleSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.CurrentWeekID != "w-34-2025" {
		t.Errorf("expected current week w-34-2025, got %q", snap.CurrentWeekID)
	}
	if snap.WeekSums["w-34-2025"] != 40 {
		t.Errorf("expected week sum 40, got %d", snap.WeekSums["w-34-2025"])
	}
	if snap.CapacityLimit != 240 {
		t.Errorf("expected capacity limit 240, got %d", snap.CapacityLimit)
	}
}

func TestReminderEndpoints(t *testing.T) {
	router, reg := newTestRouter()
	created, err := reg.Add(models.ClientForm{
		Name:        "Acme",
		OrderNumber: "ORD-1",
		StartDate:   "2025-08-18",
		EndDate:     "2025-08-24",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	body := map[string]string{"remindAt": "2025-08-19", "message": "call back"}
	w := doJSON(t, router, http.MethodPut, "/api/clients/"+created.ID+"/reminder", body)
	if w.Code != http.StatusOK {
		t.Fatalf("save reminder: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/reminders/due", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("due feed: expected 200, got %d", w.Code)
	}
	var due []models.Reminder
	if err := json.Unmarshal(w.Body.Bytes(), &due); err != nil {
		t.Fatalf("decode due feed: %v", err)
	}
	if len(due) != 1 || due[0].ClientID != created.ID {
		t.Fatalf("expected the saved reminder to be due, got %v", due)
	}

	// Clearing: empty remindAt deletes the reminder.
	w = doJSON(t, router, http.MethodPut, "/api/clients/"+created.ID+"/reminder", map[string]string{"remindAt": ""})
	if w.Code != http.StatusOK {
		t.Fatalf("clear reminder: expected 200, got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/reminders/due", nil)
	due = nil
	if err := json.Unmarshal(w.Body.Bytes(), &due); err != nil {
		t.Fatalf("decode due feed: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("expected empty due feed after clearing, got %v", due)
	}
}

func TestSaveReminder_UnknownClient(t *testing.T) {
	router, _ := newTestRouter()
	w := doJSON(t, router, http.MethodPut, "/api/clients/missing/reminder", map[string]string{"remindAt": "2025-08-19"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown client, got %d", w.Code)
	}
}

func TestDeleteClientEndpoint(t *testing.T) {
	router, reg := newTestRouter()
	created, _ := reg.Add(models.ClientForm{
		Name:        "Acme",
		OrderNumber: "ORD-1",
		StartDate:   "2025-08-18",
		EndDate:     "2025-08-24",
	})

	w := doJSON(t, router, http.MethodDelete, "/api/clients/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/clients/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after deletion, got %d", w.Code)
	}
}
