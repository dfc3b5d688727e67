// File: database/repository/waitinglist/interface.go
package waitinglistRepo

import (
	"context"

	"viaduct/database"
	"viaduct/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WaitingListRepository persists waiting-list entries.
type WaitingListRepository interface {
	List(ctx context.Context) ([]models.WaitingListEntry, error)
	Upsert(ctx context.Context, entry models.WaitingListEntry) error
	Delete(ctx context.Context, id string) error
}

type mongoWaitingListRepo struct {
	coll *mongo.Collection
}

// NewMongoWaitingListRepo constructs a MongoDB-backed WaitingListRepository.
func NewMongoWaitingListRepo() WaitingListRepository {
	return &mongoWaitingListRepo{coll: database.Collection("waitinglist")}
}
