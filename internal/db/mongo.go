package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ukydev/wastefleet/internal/config"
)

// Collection names.
const (
	VehiclesCollection    = "vehicles"
	ProducersCollection   = "producers"
	CollectionsCollection = "collections"
)

const defaultConnectTimeout = 10 * time.Second

// Store is the process-wide MongoDB handle shared by all repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    log.FieldLogger
	obs    Observer
}

// Stats is the subset of dbStats reported by the health endpoint.
type Stats struct {
	Collections int64   `bson:"collections" json:"collections"`
	DataSize    float64 `bson:"dataSize" json:"dataSize"`
	StorageSize float64 `bson:"storageSize" json:"storageSize"`
}

// Open connects to MongoDB, verifies the connection with a ping and selects
// the configured database.
func Open(ctx context.Context, cfg config.Mongo, logger log.FieldLogger) (*Store, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo uri is empty")
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}

	if logger == nil {
		logger = log.StandardLogger()
	}
	logger.WithField("database", cfg.Database).Info("connected to MongoDB")

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
		log:    logger,
	}, nil
}

// SetObserver attaches an operation observer to repositories built afterwards.
func (s *Store) SetObserver(obs Observer) {
	s.obs = obs
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Stats runs dbStats against the selected database.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.db.RunCommand(ctx, bson.D{{Key: "dbStats", Value: 1}}).Decode(&stats)
	if err != nil {
		return Stats{}, fmt.Errorf("dbStats: %w", err)
	}
	return stats, nil
}

type indexSpec struct {
	collection string
	field      string
	unique     bool
}

var indexes = []indexSpec{
	{VehiclesCollection, "vehicleId", true},
	{VehiclesCollection, "status", false},
	{ProducersCollection, "name", false},
	{ProducersCollection, "city", false},
	{ProducersCollection, "status", false},
	{CollectionsCollection, "id", true},
	{CollectionsCollection, "status", false},
	{CollectionsCollection, "vehicleId", false},
	{CollectionsCollection, "producer", false},
	{CollectionsCollection, "scheduledTime", false},
}

// EnsureIndexes creates the lookup indexes. Business keys get unique indexes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, idx := range indexes {
		model := mongo.IndexModel{Keys: bson.D{{Key: idx.field, Value: 1}}}
		if idx.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := s.db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index %s.%s: %w", idx.collection, idx.field, err)
		}
	}
	s.log.WithField("count", len(indexes)).Info("database indexes created")
	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo.Disconnect error: %w", err)
	}
	return nil
}

// Vehicles returns the vehicle repository.
func (s *Store) Vehicles() *VehicleRepository {
	return NewVehicleRepository(s.db.Collection(VehiclesCollection), s.log, s.obs)
}

// Producers returns the producer repository.
func (s *Store) Producers() *ProducerRepository {
	return NewProducerRepository(s.db.Collection(ProducersCollection), s.log, s.obs)
}

// Collections returns the collection job repository.
func (s *Store) Collections() *CollectionRepository {
	return NewCollectionRepository(s.db.Collection(CollectionsCollection), s.log, s.obs)
}
