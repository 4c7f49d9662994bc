// Package seed generates fixture data and loads it into the store.
package seed

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/ukydev/wastefleet/internal/models"
)

// CollectionCount is the number of jobs generated per run.
const CollectionCount = 25

// Bali bounding box. Generated points fall in [min, min+span).
const (
	minLat  = -8.3405
	minLng  = 115.0919
	boxSpan = 0.5
)

var drivers = []string{
	"Wayan Nico",
	"Nyoman Bagiada",
	"Saipul Rahmat",
	"Made Surya",
	"Aditya Ramadhan",
	"Ketut Suwitra",
	"Putu Agung",
	"Gede Wirawan",
}

var plates = []string{
	"DK 1289 BUY",
	"DK 8080 YU",
	"DK 0223 AHS",
	"DK 4567 XYZ",
	"DK 9876 ABC",
	"DK 5432 DEF",
	"DK 1111 GHI",
	"DK 2222 JKL",
}

var producers = []models.CreateProducer{
	{Name: "Dental Bali", Address: "Jl. Gatot Subroto Barat No.466 448", City: "Kota Denpasar", Province: "Bali", PostalCode: "80116", Phone: "+62 8917788123"},
	{Name: "Clinic Pratama", Address: "Jl. Sunset Road No.123", City: "Kuta", Province: "Bali", PostalCode: "80361", Phone: "+62 8123456789"},
	{Name: "Vet Global Bali", Address: "Jl. Monkey Forest Road No.45", City: "Ubud", Province: "Bali", PostalCode: "80571", Phone: "+62 8234567890"},
	{Name: "RSUD Wangaya", Address: "Jl. Kartini No.133", City: "Denpasar", Province: "Bali", PostalCode: "80232", Phone: "+62 8345678901"},
	{Name: "Kimia Farma Apotek", Address: "Jl. Diponegoro No.78", City: "Singaraja", Province: "Bali", PostalCode: "81116", Phone: "+62 8456789012"},
	{Name: "Lab Klinik Prodia", Address: "Jl. Teuku Umar No.234", City: "Denpasar", Province: "Bali", PostalCode: "80113", Phone: "+62 8567890123"},
	{Name: "RS Surya Husadha", Address: "Jl. Pulau Serangan No.9", City: "Denpasar", Province: "Bali", PostalCode: "80114", Phone: "+62 8678901234"},
	{Name: "Tzu Chi Hospital", Address: "Jl. Raya Kapal No.168", City: "Mengwi", Province: "Bali", PostalCode: "80351", Phone: "+62 8789012345"},
}

var wasteTypes = []string{
	"Medical A-233",
	"Medical A-331",
	"Medical A-321",
	"Medical A-432",
	"Infectious B-204",
	"Pharmaceutical C-123",
	"Sharps D-456",
	"Pathological E-789",
}

// ErrMissingReferences is returned when jobs are generated without vehicles
// or producers to point at.
var ErrMissingReferences = errors.New("vehicles and producers must be seeded first")

// Generator produces fixture payloads. Output depends only on the random
// source and the clock, so a fixed seed gives a fixed data set.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator seeded with seed. A zero seed uses the
// current time.
func NewGenerator(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func (g *Generator) location() models.Location {
	return models.Location{
		Lat: round6(minLat + g.rng.Float64()*boxSpan),
		Lng: round6(minLng + g.rng.Float64()*boxSpan),
	}
}

// Vehicles returns one vehicle per fixed plate.
func (g *Generator) Vehicles() []models.CreateVehicle {
	out := make([]models.CreateVehicle, 0, len(plates))
	for i, plate := range plates {
		out = append(out, models.CreateVehicle{
			VehicleID:       plate,
			Driver:          drivers[i],
			TotalStops:      g.rng.IntN(10) + 1,
			StopsDone:       g.rng.IntN(5),
			CurrentLocation: g.location(),
			Status:          models.VehicleStatuses[g.rng.IntN(len(models.VehicleStatuses))],
		})
	}
	return out
}

// Producers returns the fixed producer list. About one in five is inactive.
func (g *Generator) Producers() []models.CreateProducer {
	out := make([]models.CreateProducer, 0, len(producers))
	for _, p := range producers {
		p.Status = models.ProducerActive
		if g.rng.Float64() > 0.8 {
			p.Status = models.ProducerInactive
		}
		p.Location = g.location()
		out = append(out, p)
	}
	return out
}

// Collections returns CollectionCount jobs referencing the given vehicle
// business keys and producer names.
func (g *Generator) Collections(vehicleIDs, producerNames []string) ([]models.CreateCollection, error) {
	if len(vehicleIDs) == 0 || len(producerNames) == 0 {
		return nil, ErrMissingReferences
	}

	const week = 7 * 24 * time.Hour
	now := g.now()
	out := make([]models.CreateCollection, 0, CollectionCount)
	for i := 0; i < CollectionCount; i++ {
		status := models.CollectionStatuses[g.rng.IntN(len(models.CollectionStatuses))]
		scheduled := now.Add(-time.Duration(g.rng.Int64N(int64(week))))

		waste := wasteTypes[g.rng.IntN(len(wasteTypes))]
		if g.rng.Float64() > 0.7 {
			waste += ", " + wasteTypes[g.rng.IntN(len(wasteTypes))]
		}

		job := models.CreateCollection{
			Code:          fmt.Sprintf("COL-%04d", i+1),
			Producer:      producerNames[g.rng.IntN(len(producerNames))],
			WasteDetail:   waste,
			Status:        status,
			Location:      g.location(),
			ScheduledTime: scheduled,
			VehicleID:     vehicleIDs[g.rng.IntN(len(vehicleIDs))],
		}
		if status == models.CollectionDone {
			completed := scheduled.Add(time.Duration(g.rng.Int64N(int64(24 * time.Hour))))
			job.CompletedTime = &completed
		}
		out = append(out, job)
	}
	return out, nil
}
