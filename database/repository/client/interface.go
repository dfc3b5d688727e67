// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"viaduct/database"
	"viaduct/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository is the persistence contract for booking records.
// Implementations own the translation between the canonical field
// names and store-specific column naming.
type ClientRepository interface {
	List(ctx context.Context) ([]models.Client, error)
	Upsert(ctx context.Context, client models.Client) error
	Delete(ctx context.Context, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a MongoDB-backed ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{coll: database.Collection("clients")}
}
