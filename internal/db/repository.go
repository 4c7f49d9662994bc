package db

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/ukydev/wastefleet/internal/pagination"
	"github.com/ukydev/wastefleet/internal/result"
)

// Operation names reported to the Observer and in log fields.
const (
	opCreate     = "create"
	opCreateMany = "create_many"
	opGet        = "get"
	opList       = "list"
	opFind       = "find"
	opUpdate     = "update"
	opDelete     = "delete"
	opClear      = "clear"
)

// repository holds the CRUD plumbing shared by the entity repositories.
// Every method catches store errors, logs them and narrows them to the
// message of a failed result.
type repository[T any] struct {
	coll     documentCollection
	entity   string
	basePath string
	log      log.FieldLogger
	obs      Observer
	now      func() time.Time
}

func newRepository[T any](coll documentCollection, entity, basePath string, logger log.FieldLogger, obs Observer) *repository[T] {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &repository[T]{
		coll:     coll,
		entity:   entity,
		basePath: basePath,
		log:      logger.WithField("entity", strings.ToLower(entity)),
		obs:      obs,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *repository[T]) notFound() string {
	return r.entity + " not found"
}

func (r *repository[T]) failed(op string, err error, fields log.Fields) string {
	r.log.WithFields(fields).WithField("op", op).WithError(err).Error("store operation failed")
	return err.Error()
}

type outcome interface {
	IsOK() bool
}

// observed runs fn and reports its outcome and latency.
func observed[R outcome, T any](r *repository[T], op string, fn func() R) R {
	start := time.Now()
	res := fn()
	if r.obs != nil {
		status := "ok"
		if !res.IsOK() {
			status = "error"
		}
		r.obs.ObserveStoreOp(strings.ToLower(r.entity), op, status, time.Since(start))
	}
	return res
}

func (r *repository[T]) insert(ctx context.Context, doc interface{}) result.Result[T] {
	return observed(r, opCreate, func() result.Result[T] {
		createFailed := "Failed to create " + strings.ToLower(r.entity)

		res, err := r.coll.InsertOne(ctx, doc)
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			return result.Fail[T](createFailed)
		}
		if err != nil {
			return result.Fail[T](r.failed(opCreate, err, nil))
		}
		if res == nil || res.InsertedID == nil {
			return result.Fail[T](createFailed)
		}

		var created T
		err = r.coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result.Fail[T](createFailed)
		}
		if err != nil {
			return result.Fail[T](r.failed(opCreate, err, log.Fields{"id": res.InsertedID}))
		}
		return result.OK(created)
	})
}

func (r *repository[T]) insertMany(ctx context.Context, docs []interface{}) result.Result[[]T] {
	return observed(r, opCreateMany, func() result.Result[[]T] {
		if len(docs) == 0 {
			return result.OK([]T{})
		}
		res, err := r.coll.InsertMany(ctx, docs)
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			return result.Fail[[]T]("Failed to create " + strings.ToLower(r.entity) + "s")
		}
		if err != nil {
			return result.Fail[[]T](r.failed(opCreateMany, err, log.Fields{"count": len(docs)}))
		}

		created := make([]T, 0, len(res.InsertedIDs))
		cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": res.InsertedIDs}})
		if err != nil {
			return result.Fail[[]T](r.failed(opCreateMany, err, nil))
		}
		if err := cur.All(ctx, &created); err != nil {
			return result.Fail[[]T](r.failed(opCreateMany, err, nil))
		}
		return result.OK(created)
	})
}

func (r *repository[T]) getByID(ctx context.Context, id string) result.Result[T] {
	return observed(r, opGet, func() result.Result[T] {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return result.Fail[T](r.failed(opGet, err, log.Fields{"id": id}))
		}
		return r.findOne(ctx, bson.M{"_id": oid}, log.Fields{"id": id})
	})
}

func (r *repository[T]) getOne(ctx context.Context, filter bson.M) result.Result[T] {
	return observed(r, opGet, func() result.Result[T] {
		return r.findOne(ctx, filter, log.Fields{"filter": filter})
	})
}

func (r *repository[T]) findOne(ctx context.Context, filter bson.M, fields log.Fields) result.Result[T] {
	var doc T
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return result.Fail[T](r.notFound())
	}
	if err != nil {
		return result.Fail[T](r.failed(opGet, err, fields))
	}
	return result.OK(doc)
}

// list returns one page of documents matching filter. The count and the page
// fetch run concurrently and are not a consistent snapshot.
func (r *repository[T]) list(ctx context.Context, page, limit int64, filter bson.M, basePath string) result.Page[T] {
	return observed(r, opList, func() result.Page[T] {
		if basePath == "" {
			basePath = r.basePath
		}
		fields := log.Fields{"page": page, "limit": limit, "filter": filter}

		var (
			items []T
			total int64
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			opts := options.Find().SetSkip((page - 1) * limit).SetLimit(limit)
			cur, err := r.coll.Find(gctx, filter, opts)
			if err != nil {
				return err
			}
			return cur.All(gctx, &items)
		})
		g.Go(func() error {
			n, err := r.coll.CountDocuments(gctx, filter)
			total = n
			return err
		})
		if err := g.Wait(); err != nil {
			return result.FailPage[T](r.failed(opList, err, fields))
		}

		totalPages := pagination.TotalPages(total, limit)
		return result.OKPage(items,
			pagination.BuildLinks(page, totalPages, basePath),
			pagination.BuildMeta(page, limit, total, basePath))
	})
}

func (r *repository[T]) find(ctx context.Context, filter bson.M) result.Result[[]T] {
	return observed(r, opFind, func() result.Result[[]T] {
		docs := make([]T, 0)
		cur, err := r.coll.Find(ctx, filter)
		if err != nil {
			return result.Fail[[]T](r.failed(opFind, err, log.Fields{"filter": filter}))
		}
		if err := cur.All(ctx, &docs); err != nil {
			return result.Fail[[]T](r.failed(opFind, err, log.Fields{"filter": filter}))
		}
		return result.OK(docs)
	})
}

// update applies update to the document with the given hex id and returns the
// document as it is after the update. A missing document fails with notFound.
func (r *repository[T]) update(ctx context.Context, id string, update interface{}, notFound string) result.Result[T] {
	return observed(r, opUpdate, func() result.Result[T] {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return result.Fail[T](r.failed(opUpdate, err, log.Fields{"id": id}))
		}

		var updated T
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result.Fail[T](notFound)
		}
		if err != nil {
			return result.Fail[T](r.failed(opUpdate, err, log.Fields{"id": id}))
		}
		return result.OK(updated)
	})
}

func (r *repository[T]) deleteByID(ctx context.Context, id string) result.Result[bool] {
	return observed(r, opDelete, func() result.Result[bool] {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return result.Fail[bool](r.failed(opDelete, err, log.Fields{"id": id}))
		}
		res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			return result.Fail[bool](r.failed(opDelete, err, log.Fields{"id": id}))
		}
		if res == nil || res.DeletedCount != 1 {
			return result.Fail[bool](r.notFound())
		}
		return result.OKWithMessage(true, r.entity+" deleted successfully")
	})
}

func (r *repository[T]) clear(ctx context.Context) result.Result[int64] {
	return observed(r, opClear, func() result.Result[int64] {
		res, err := r.coll.DeleteMany(ctx, bson.M{})
		if err != nil {
			return result.Fail[int64](r.failed(opClear, err, nil))
		}
		return result.OK(res.DeletedCount)
	})
}
