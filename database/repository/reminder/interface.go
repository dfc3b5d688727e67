// File: database/repository/reminder/interface.go
package reminderRepo

import (
	"context"

	"viaduct/database"
	"viaduct/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReminderRepository persists due-date reminders.
type ReminderRepository interface {
	List(ctx context.Context) ([]models.Reminder, error)
	Upsert(ctx context.Context, reminder models.Reminder) error
	Delete(ctx context.Context, id string) error
	DeleteByClient(ctx context.Context, clientID string) error
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo constructs a MongoDB-backed ReminderRepository.
func NewMongoReminderRepo() ReminderRepository {
	return &mongoReminderRepo{coll: database.Collection("reminders")}
}
