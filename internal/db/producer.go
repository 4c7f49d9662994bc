package db

import (
	"context"
	"regexp"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ukydev/wastefleet/internal/models"
	"github.com/ukydev/wastefleet/internal/result"
)

// ProducerFilter narrows producer listings. Empty fields are ignored.
type ProducerFilter struct {
	Status string
	City   string
}

func (f ProducerFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.City != "" {
		q["city"] = f.City
	}
	return q
}

// searchFields are matched by Search.
var searchFields = []string{"name", "address", "city", "phone"}

// ProducerRepository stores producers in the "producers" collection.
type ProducerRepository struct {
	*repository[models.Producer]
}

// NewProducerRepository builds a producer repository over coll. obs may be nil.
func NewProducerRepository(coll documentCollection, logger log.FieldLogger, obs Observer) *ProducerRepository {
	return &ProducerRepository{newRepository[models.Producer](coll, "Producer", "/api/producers", logger, obs)}
}

// Create validates and inserts a producer and returns the stored document.
func (r *ProducerRepository) Create(ctx context.Context, in models.CreateProducer) result.Result[models.Producer] {
	if err := models.Validate(in); err != nil {
		return result.Fail[models.Producer](err.Error())
	}
	return r.insert(ctx, in.Producer(r.now()))
}

// CreateMany inserts producers in bulk. Used for seeding.
func (r *ProducerRepository) CreateMany(ctx context.Context, in []models.CreateProducer) result.Result[[]models.Producer] {
	now := r.now()
	docs := make([]interface{}, 0, len(in))
	for _, p := range in {
		if err := models.Validate(p); err != nil {
			return result.Fail[[]models.Producer](err.Error())
		}
		docs = append(docs, p.Producer(now))
	}
	return r.insertMany(ctx, docs)
}

// GetByID returns the producer with the given hex ObjectID.
func (r *ProducerRepository) GetByID(ctx context.Context, id string) result.Result[models.Producer] {
	return r.getByID(ctx, id)
}

// GetAll returns one page of producers linked against /api/producers.
func (r *ProducerRepository) GetAll(ctx context.Context, page, limit int64, filter ProducerFilter) result.Page[models.Producer] {
	return r.list(ctx, page, limit, filter.query(), "")
}

// GetAllAt is GetAll with links built against basePath.
func (r *ProducerRepository) GetAllAt(ctx context.Context, page, limit int64, filter ProducerFilter, basePath string) result.Page[models.Producer] {
	return r.list(ctx, page, limit, filter.query(), basePath)
}

// Search returns producers whose name, address, city or phone contains term,
// ignoring case. The term is matched literally.
func (r *ProducerRepository) Search(ctx context.Context, term string) result.Result[[]models.Producer] {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(searchFields))
	for _, f := range searchFields {
		or = append(or, bson.M{f: pattern})
	}
	return r.find(ctx, bson.M{"$or": or})
}

// GetByCity returns producers located in exactly city.
func (r *ProducerRepository) GetByCity(ctx context.Context, city string) result.Result[[]models.Producer] {
	return r.find(ctx, bson.M{"city": city})
}

// Update applies the present fields of in and refreshes updatedAt.
func (r *ProducerRepository) Update(ctx context.Context, id string, in models.UpdateProducer) result.Result[models.Producer] {
	if err := models.Validate(in); err != nil {
		return result.Fail[models.Producer](err.Error())
	}
	in.UpdatedAt = r.now()
	return r.update(ctx, id, bson.M{"$set": in}, "Producer not found or update failed")
}

// Delete removes the producer with the given hex ObjectID.
func (r *ProducerRepository) Delete(ctx context.Context, id string) result.Result[bool] {
	return r.deleteByID(ctx, id)
}

// Clear removes every producer and returns the number deleted.
func (r *ProducerRepository) Clear(ctx context.Context) result.Result[int64] {
	return r.clear(ctx)
}
