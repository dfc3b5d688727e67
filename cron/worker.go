package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"viaduct/config"
	"viaduct/models"
	"viaduct/services/registry"
	"viaduct/services/schedule"
	"viaduct/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// reminderPayload is the task body for scheduled reminder delivery.
type reminderPayload struct {
	ReminderID string `json:"reminderId"`
	ClientID   string `json:"clientId"`
	RemindAt   string `json:"remindAt"`
	Message    string `json:"message"`
}

func queueOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewReminderEnqueuer returns the hook the reminder registry calls on
// save: it schedules a reminder:send task at the reminder's date.
// Returns nil when Redis is not configured; reminders then surface
// only through the due-feed polling.
func NewReminderEnqueuer() func(models.Reminder) {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	client := asynq.NewClient(queueOpts())
	logger := utils.GetLogger()

	return func(rem models.Reminder) {
		payload, err := json.Marshal(reminderPayload{
			ReminderID: rem.ID,
			ClientID:   rem.ClientID,
			RemindAt:   rem.RemindAt,
			Message:    rem.Message,
		})
		if err != nil {
			logger.Error("Failed to marshal reminder payload", zap.Error(err))
			return
		}

		task := asynq.NewTask(TypeReminderSend, payload)
		// TaskID pins one scheduled task per reminder; re-saving the
		// reminder replaces the schedule.
		_, err = client.Enqueue(task,
			asynq.TaskID(rem.ID),
			asynq.ProcessAt(schedule.ParseDate(rem.RemindAt)),
		)
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			inspector := asynq.NewInspector(queueOpts())
			if delErr := inspector.DeleteTask("default", rem.ID); delErr == nil {
				_, err = client.Enqueue(task, asynq.TaskID(rem.ID), asynq.ProcessAt(schedule.ParseDate(rem.RemindAt)))
			}
		}
		if err != nil {
			logger.Error("Failed to enqueue reminder task", zap.String("id", rem.ID), zap.Error(err))
		}
	}
}

// InitReminderWorker runs the async worker in background. The handler
// only surfaces the reminder into the log and the shown-today
// bookkeeping; the popup feed stays the delivery channel.
func InitReminderWorker(reminders registry.ReminderRegistry) {
	if config.AppConfig.RedisAddr == "" {
		return
	}

	srv := asynq.NewServer(
		queueOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(reminders))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("Reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(reminders registry.ReminderRegistry) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		if reminders.MarkShown(p.ReminderID) {
			utils.GetLogger().Info("Reminder due",
				zap.String("reminderId", p.ReminderID),
				zap.String("clientId", p.ClientID),
				zap.String("remindAt", p.RemindAt),
				zap.String("message", p.Message),
			)
		}
		return nil
	}
}

// StartDayTicker refreshes the registry's "today" reference once a
// minute so warning flags and the current-week marker roll over at
// midnight without any mutation. Pure recomputation, no I/O.
func StartDayTicker(ctx context.Context, clients registry.ClientRegistry) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				clients.RefreshToday()
			}
		}
	}()
}
