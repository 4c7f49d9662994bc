package db

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/wastefleet/internal/models"
	"github.com/ukydev/wastefleet/internal/result"
)

// VehicleFilter narrows vehicle listings. Empty fields are ignored.
type VehicleFilter struct {
	Status models.VehicleStatus
}

func (f VehicleFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	return q
}

// VehicleRepository stores vehicles in the "vehicles" collection.
type VehicleRepository struct {
	*repository[models.Vehicle]
}

// NewVehicleRepository builds a vehicle repository over coll. obs may be nil.
func NewVehicleRepository(coll documentCollection, logger log.FieldLogger, obs Observer) *VehicleRepository {
	return &VehicleRepository{newRepository[models.Vehicle](coll, "Vehicle", "/api/vehicles", logger, obs)}
}

// Create validates and inserts a vehicle and returns the stored document.
func (r *VehicleRepository) Create(ctx context.Context, in models.CreateVehicle) result.Result[models.Vehicle] {
	if err := models.Validate(in); err != nil {
		return result.Fail[models.Vehicle](err.Error())
	}
	return r.insert(ctx, in.Vehicle(r.now()))
}

// CreateMany inserts vehicles in bulk. Used for seeding.
func (r *VehicleRepository) CreateMany(ctx context.Context, in []models.CreateVehicle) result.Result[[]models.Vehicle] {
	now := r.now()
	docs := make([]interface{}, 0, len(in))
	for _, v := range in {
		if err := models.Validate(v); err != nil {
			return result.Fail[[]models.Vehicle](err.Error())
		}
		docs = append(docs, v.Vehicle(now))
	}
	return r.insertMany(ctx, docs)
}

// GetByID returns the vehicle with the given hex ObjectID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) result.Result[models.Vehicle] {
	return r.getByID(ctx, id)
}

// GetByVehicleID returns the vehicle with the given business key.
func (r *VehicleRepository) GetByVehicleID(ctx context.Context, vehicleID string) result.Result[models.Vehicle] {
	return r.getOne(ctx, bson.M{"vehicleId": vehicleID})
}

// GetAll returns one page of vehicles linked against /api/vehicles.
func (r *VehicleRepository) GetAll(ctx context.Context, page, limit int64, filter VehicleFilter) result.Page[models.Vehicle] {
	return r.list(ctx, page, limit, filter.query(), "")
}

// GetAllAt is GetAll with links built against basePath.
func (r *VehicleRepository) GetAllAt(ctx context.Context, page, limit int64, filter VehicleFilter, basePath string) result.Page[models.Vehicle] {
	return r.list(ctx, page, limit, filter.query(), basePath)
}

// GetActive returns every vehicle whose status is active.
func (r *VehicleRepository) GetActive(ctx context.Context) result.Result[[]models.Vehicle] {
	return r.find(ctx, bson.M{"status": models.VehicleActive})
}

// Update applies the present fields of in and refreshes updatedAt.
func (r *VehicleRepository) Update(ctx context.Context, id string, in models.UpdateVehicle) result.Result[models.Vehicle] {
	if err := models.Validate(in); err != nil {
		return result.Fail[models.Vehicle](err.Error())
	}
	in.UpdatedAt = r.now()
	return r.update(ctx, id, bson.M{"$set": in}, "Vehicle not found or update failed")
}

// Delete removes the vehicle with the given hex ObjectID.
func (r *VehicleRepository) Delete(ctx context.Context, id string) result.Result[bool] {
	return r.deleteByID(ctx, id)
}

// Clear removes every vehicle and returns the number deleted.
func (r *VehicleRepository) Clear(ctx context.Context) result.Result[int64] {
	return r.clear(ctx)
}
