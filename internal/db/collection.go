package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/wastefleet/internal/models"
	"github.com/ukydev/wastefleet/internal/result"
)

// documentCollection is the part of *mongo.Collection the repositories use.
type documentCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// Observer receives the outcome and latency of every repository operation.
type Observer interface {
	ObserveStoreOp(entity, op, outcome string, elapsed time.Duration)
}

// VehicleRepo defines the vehicle operations used by the HTTP layer.
type VehicleRepo interface {
	Create(ctx context.Context, in models.CreateVehicle) result.Result[models.Vehicle]
	GetByID(ctx context.Context, id string) result.Result[models.Vehicle]
	GetByVehicleID(ctx context.Context, vehicleID string) result.Result[models.Vehicle]
	GetAll(ctx context.Context, page, limit int64, filter VehicleFilter) result.Page[models.Vehicle]
	GetActive(ctx context.Context) result.Result[[]models.Vehicle]
	Update(ctx context.Context, id string, in models.UpdateVehicle) result.Result[models.Vehicle]
	Delete(ctx context.Context, id string) result.Result[bool]
}

// ProducerRepo defines the producer operations used by the HTTP layer.
type ProducerRepo interface {
	Create(ctx context.Context, in models.CreateProducer) result.Result[models.Producer]
	GetByID(ctx context.Context, id string) result.Result[models.Producer]
	GetAll(ctx context.Context, page, limit int64, filter ProducerFilter) result.Page[models.Producer]
	Search(ctx context.Context, term string) result.Result[[]models.Producer]
	GetByCity(ctx context.Context, city string) result.Result[[]models.Producer]
	Update(ctx context.Context, id string, in models.UpdateProducer) result.Result[models.Producer]
	Delete(ctx context.Context, id string) result.Result[bool]
}

// CollectionRepo defines the collection job operations used by the HTTP layer.
type CollectionRepo interface {
	Create(ctx context.Context, in models.CreateCollection) result.Result[models.Collection]
	GetByID(ctx context.Context, id string) result.Result[models.Collection]
	GetAll(ctx context.Context, page, limit int64, filter CollectionFilter) result.Page[models.Collection]
	GetByStatus(ctx context.Context, status models.CollectionStatus) result.Result[[]models.Collection]
	GetByVehicle(ctx context.Context, vehicleID string) result.Result[[]models.Collection]
	Update(ctx context.Context, id string, in models.UpdateCollection) result.Result[models.Collection]
	MarkCompleted(ctx context.Context, id string) result.Result[models.Collection]
	Delete(ctx context.Context, id string) result.Result[bool]
}

var (
	_ VehicleRepo    = (*VehicleRepository)(nil)
	_ ProducerRepo   = (*ProducerRepository)(nil)
	_ CollectionRepo = (*CollectionRepository)(nil)

	_ documentCollection = (*mongo.Collection)(nil)
)
