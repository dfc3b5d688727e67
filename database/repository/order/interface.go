// File: database/repository/order/interface.go
package orderRepo

import (
	"context"

	"viaduct/database"
	"viaduct/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository persists agency media orders.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Upsert(ctx context.Context, order models.Order) error
	Delete(ctx context.Context, id string) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a MongoDB-backed OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	return &mongoOrderRepo{coll: database.Collection("orders")}
}
