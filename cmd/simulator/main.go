package main

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/carpark/internal/models"
	"github.com/ukydev/carpark/internal/report"
)

var cargoTypes = []models.CargoType{models.CargoFragile, models.CargoPerishable, models.CargoBulk}

var cargoNames = map[models.CargoType][]string{
	models.CargoFragile:    {"Mirror", "Glassware", "Electronics", "Ceramics"},
	models.CargoPerishable: {"Milk", "Fish", "Vegetables", "Flowers"},
	models.CargoBulk:       {"Concrete", "Sand", "Gravel", "Grain"},
}

var makes = map[string][]string{
	models.KindVehicle: {"Tesla", "Volvo", "Mercedes-Benz", "Scania", "Ford"},
	models.KindTruck:   {"Krone", "Schmitz", "MAN", "DAF", "Iveco"},
}

var modelNames = map[string][]string{
	models.KindVehicle: {"Semi", "V60", "Actros", "S-series", "Transit"},
	models.KindTruck:   {"SD", "Cargobull SKO", "TGX", "XF", "S-Way"},
}

// randomRestriction returns Unrestricted a third of the time, otherwise one or two types.
func randomRestriction(rng *rand.Rand) models.TypeRestriction {
	if rng.Intn(3) == 0 {
		return models.Unrestricted()
	}
	n := 1 + rng.Intn(2)
	types := make([]models.CargoType, 0, n)
	for _, i := range rng.Perm(len(cargoTypes))[:n] {
		types = append(types, cargoTypes[i])
	}
	return models.RestrictedTo(types...)
}

func randomVehicle(rng *rand.Rand) models.Carrier {
	kind := models.KindVehicle
	if rng.Intn(2) == 0 {
		kind = models.KindTruck
	}
	spec := models.VehicleSpec{
		Mark:            makes[kind][rng.Intn(len(makes[kind]))],
		Model:           modelNames[kind][rng.Intn(len(modelNames[kind]))],
		Year:            2015 + rng.Intn(10), // 2015-2024
		Capacity:        100 * (2 + rng.Intn(9)),
		AllowedTypes:    randomRestriction(rng),
		TankVolume:      50 * (4 + rng.Intn(10)),
		FuelConsumption: 0.3 + rng.Float64()*0.6,
	}
	if kind == models.KindVehicle {
		return models.NewVehicle(spec)
	}
	trailerCapacity := 100 * (2 + rng.Intn(5))
	return models.NewTruck(models.TruckSpec{
		VehicleSpec:     spec,
		TrailerAttached: rng.Intn(4) != 0,
		TrailerCapacity: &trailerCapacity,
		TrailerTypes:    randomRestriction(rng),
	})
}

func randomCargo(rng *rand.Rand) models.Cargo {
	t := cargoTypes[rng.Intn(len(cargoTypes))]
	names := cargoNames[t]
	return models.MustCargo(50*(1+rng.Intn(16)), t, names[rng.Intn(len(names))])
}

func generateFleet(rng *rand.Rand, size int) *models.Fleet {
	fleet := models.NewFleet()
	for i := 0; i < size; i++ {
		fleet.AddVehicle(randomVehicle(rng))
	}
	return fleet
}

// simulateRound loads random cargo into a random vehicle, sometimes unloads
// one, then checks a random trip against the whole fleet.
func simulateRound(rng *rand.Rand, fleet *models.Fleet, r report.Reporter) {
	vehicles := fleet.Vehicles()
	if len(vehicles) == 0 {
		return
	}
	cargo := randomCargo(rng)
	reportOutcome(r, vehicles[rng.Intn(len(vehicles))].LoadCargo(cargo))

	if rng.Intn(5) == 0 {
		reportOutcome(r, vehicles[rng.Intn(len(vehicles))].UnloadCargo())
	}

	distance := 50 + rng.Intn(500)
	if err := report.ReportTrip(r, fleet.CanTransportCargo([]models.Cargo{cargo}, distance)); err != nil {
		log.WithError(err).Warn("Failed to report trip")
	}
}

func reportOutcome(r report.Reporter, o models.Outcome) {
	if err := r.Report(o); err != nil {
		log.WithError(err).Warn("Failed to report outcome")
	}
}

func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func main() {
	fleetSize := envInt("FLEET_SIZE", 10)
	rounds := envInt("SIM_ROUNDS", 20)
	seed := time.Now().UnixNano()
	if v := os.Getenv("SIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		}
	}

	log.WithFields(log.Fields{
		"fleet_size": fleetSize,
		"rounds":     rounds,
		"seed":       seed,
	}).Info("Starting fleet simulation")

	rng := rand.New(rand.NewSource(seed))
	fleet := generateFleet(rng, fleetSize)
	r := report.NewLogReporter(log.StandardLogger())
	if err := r.ReportInfo(fleet.Info()); err != nil {
		log.WithError(err).Warn("Failed to report fleet info")
	}

	for i := 0; i < rounds; i++ {
		simulateRound(rng, fleet, r)
	}

	if err := r.ReportInfo(fleet.Info()); err != nil {
		log.WithError(err).Warn("Failed to report fleet info")
	}
	log.Info("Fleet simulation finished")
}
