package db

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/wastefleet/internal/models"
	"github.com/ukydev/wastefleet/internal/result"
)

// CollectionFilter narrows collection job listings. Empty fields are ignored.
type CollectionFilter struct {
	Status    models.CollectionStatus
	VehicleID string
	Producer  string
}

func (f CollectionFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.VehicleID != "" {
		q["vehicleId"] = f.VehicleID
	}
	if f.Producer != "" {
		q["producer"] = f.Producer
	}
	return q
}

// CollectionRepository stores collection jobs in the "collections" collection.
type CollectionRepository struct {
	*repository[models.Collection]
}

// NewCollectionRepository builds a collection job repository over coll. obs may be nil.
func NewCollectionRepository(coll documentCollection, logger log.FieldLogger, obs Observer) *CollectionRepository {
	return &CollectionRepository{newRepository[models.Collection](coll, "Collection", "/api/collections", logger, obs)}
}

// Create validates and inserts a job and returns the stored document.
func (r *CollectionRepository) Create(ctx context.Context, in models.CreateCollection) result.Result[models.Collection] {
	if err := models.Validate(in); err != nil {
		return result.Fail[models.Collection](err.Error())
	}
	return r.insert(ctx, in.Collection(r.now()))
}

// CreateMany inserts jobs in bulk. Used for seeding.
func (r *CollectionRepository) CreateMany(ctx context.Context, in []models.CreateCollection) result.Result[[]models.Collection] {
	now := r.now()
	docs := make([]interface{}, 0, len(in))
	for _, c := range in {
		if err := models.Validate(c); err != nil {
			return result.Fail[[]models.Collection](err.Error())
		}
		docs = append(docs, c.Collection(now))
	}
	return r.insertMany(ctx, docs)
}

// GetByID returns the job with the given hex ObjectID.
func (r *CollectionRepository) GetByID(ctx context.Context, id string) result.Result[models.Collection] {
	return r.getByID(ctx, id)
}

// GetAll returns one page of jobs linked against /api/collections.
func (r *CollectionRepository) GetAll(ctx context.Context, page, limit int64, filter CollectionFilter) result.Page[models.Collection] {
	return r.list(ctx, page, limit, filter.query(), "")
}

// GetAllAt is GetAll with links built against basePath.
func (r *CollectionRepository) GetAllAt(ctx context.Context, page, limit int64, filter CollectionFilter, basePath string) result.Page[models.Collection] {
	return r.list(ctx, page, limit, filter.query(), basePath)
}

// GetByStatus returns every job in status.
func (r *CollectionRepository) GetByStatus(ctx context.Context, status models.CollectionStatus) result.Result[[]models.Collection] {
	return r.find(ctx, bson.M{"status": status})
}

// GetByVehicle returns every job assigned to the vehicle business key.
func (r *CollectionRepository) GetByVehicle(ctx context.Context, vehicleID string) result.Result[[]models.Collection] {
	return r.find(ctx, bson.M{"vehicleId": vehicleID})
}

// Update applies the present fields of in and refreshes updatedAt.
func (r *CollectionRepository) Update(ctx context.Context, id string, in models.UpdateCollection) result.Result[models.Collection] {
	if err := models.Validate(in); err != nil {
		return result.Fail[models.Collection](err.Error())
	}
	in.UpdatedAt = r.now()
	return r.update(ctx, id, bson.M{"$set": in}, "Collection not found or update failed")
}

// MarkCompleted sets the job to done and stamps completedTime in one update.
func (r *CollectionRepository) MarkCompleted(ctx context.Context, id string) result.Result[models.Collection] {
	now := r.now()
	set := bson.M{
		"status":        models.CollectionDone,
		"completedTime": now,
		"updatedAt":     now,
	}
	return r.update(ctx, id, bson.M{"$set": set}, "Collection not found")
}

// Delete removes the job with the given hex ObjectID.
func (r *CollectionRepository) Delete(ctx context.Context, id string) result.Result[bool] {
	return r.deleteByID(ctx, id)
}

// Clear removes every job and returns the number deleted.
func (r *CollectionRepository) Clear(ctx context.Context) result.Result[int64] {
	return r.clear(ctx)
}
