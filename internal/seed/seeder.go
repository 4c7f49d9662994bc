package seed

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wastefleet/internal/models"
	"github.com/ukydev/wastefleet/internal/result"
)

// VehicleStore is the vehicle repository surface the seeder needs.
type VehicleStore interface {
	Clear(ctx context.Context) result.Result[int64]
	CreateMany(ctx context.Context, in []models.CreateVehicle) result.Result[[]models.Vehicle]
}

// ProducerStore is the producer repository surface the seeder needs.
type ProducerStore interface {
	Clear(ctx context.Context) result.Result[int64]
	CreateMany(ctx context.Context, in []models.CreateProducer) result.Result[[]models.Producer]
}

// CollectionStore is the collection job repository surface the seeder needs.
type CollectionStore interface {
	Clear(ctx context.Context) result.Result[int64]
	CreateMany(ctx context.Context, in []models.CreateCollection) result.Result[[]models.Collection]
}

// Summary counts the documents written by SeedAll.
type Summary struct {
	Vehicles    int
	Producers   int
	Collections int
}

// Seeder replaces the store contents with generated fixtures.
type Seeder struct {
	gen         *Generator
	vehicles    VehicleStore
	producers   ProducerStore
	collections CollectionStore
	log         log.FieldLogger
}

// NewSeeder returns a seeder writing through the given repositories.
func NewSeeder(gen *Generator, vehicles VehicleStore, producers ProducerStore, collections CollectionStore, logger log.FieldLogger) *Seeder {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Seeder{
		gen:         gen,
		vehicles:    vehicles,
		producers:   producers,
		collections: collections,
		log:         logger,
	}
}

// SeedAll clears all three collections, then inserts vehicles, producers and
// finally jobs built from the vehicle ids and producer names actually stored.
func (s *Seeder) SeedAll(ctx context.Context) (Summary, error) {
	s.log.Info("starting database seeding")

	if err := s.clear(ctx); err != nil {
		return Summary{}, err
	}

	vehicles := s.vehicles.CreateMany(ctx, s.gen.Vehicles())
	storedVehicles, ok := vehicles.Value()
	if !ok {
		return Summary{}, fmt.Errorf("seed vehicles: %s", vehicles.Error())
	}
	s.log.WithField("count", len(storedVehicles)).Info("inserted vehicles")

	producers := s.producers.CreateMany(ctx, s.gen.Producers())
	storedProducers, ok := producers.Value()
	if !ok {
		return Summary{}, fmt.Errorf("seed producers: %s", producers.Error())
	}
	s.log.WithField("count", len(storedProducers)).Info("inserted producers")

	vehicleIDs := make([]string, 0, len(storedVehicles))
	for _, v := range storedVehicles {
		vehicleIDs = append(vehicleIDs, v.VehicleID)
	}
	producerNames := make([]string, 0, len(storedProducers))
	for _, p := range storedProducers {
		producerNames = append(producerNames, p.Name)
	}

	jobs, err := s.gen.Collections(vehicleIDs, producerNames)
	if err != nil {
		return Summary{}, fmt.Errorf("seed collections: %w", err)
	}
	collections := s.collections.CreateMany(ctx, jobs)
	storedJobs, ok := collections.Value()
	if !ok {
		return Summary{}, fmt.Errorf("seed collections: %s", collections.Error())
	}
	s.log.WithField("count", len(storedJobs)).Info("inserted collections")

	summary := Summary{
		Vehicles:    len(storedVehicles),
		Producers:   len(storedProducers),
		Collections: len(storedJobs),
	}
	s.log.WithFields(log.Fields{
		"vehicles":    summary.Vehicles,
		"producers":   summary.Producers,
		"collections": summary.Collections,
	}).Info("database seeding completed")
	return summary, nil
}

func (s *Seeder) clear(ctx context.Context) error {
	steps := []struct {
		name  string
		clear func(context.Context) result.Result[int64]
	}{
		{"vehicles", s.vehicles.Clear},
		{"producers", s.producers.Clear},
		{"collections", s.collections.Clear},
	}
	for _, step := range steps {
		if res := step.clear(ctx); !res.IsOK() {
			return fmt.Errorf("clear %s: %s", step.name, res.Error())
		}
	}
	s.log.Info("cleared existing data")
	return nil
}
