package main

import "github.com/ukydev/carpark/internal/models"

// sample is the fixed demo roster.
type sample struct {
	tesla    *models.Vehicle
	volvo    *models.Vehicle
	mercedes *models.Vehicle
	scania   *models.Vehicle
	krone    *models.Truck
	pin      *models.Truck
	schmitz  *models.Truck
}

func newSample() sample {
	trailer := func(n int) *int { return &n }
	return sample{
		tesla: models.NewVehicle(models.VehicleSpec{
			Mark:            "Tesla",
			Model:           "Semi",
			Year:            2017,
			Capacity:        1000,
			AllowedTypes:    models.RestrictedTo(models.CargoBulk, models.CargoFragile),
			TankVolume:      300,
			FuelConsumption: 0.5,
		}),
		volvo: models.NewVehicle(models.VehicleSpec{
			Mark:            "Volvo",
			Model:           "V60",
			Year:            2020,
			Capacity:        500,
			AllowedTypes:    models.RestrictedTo(models.CargoPerishable),
			TankVolume:      400,
			FuelConsumption: 0.65,
		}),
		mercedes: models.NewVehicle(models.VehicleSpec{
			Mark:            "Mercedes-Benz",
			Model:           "Actros",
			Year:            2023,
			Capacity:        800,
			AllowedTypes:    models.Unrestricted(),
			TankVolume:      200,
			FuelConsumption: 0.38,
		}),
		scania: models.NewVehicle(models.VehicleSpec{
			Mark:            "Scania",
			Model:           "S-series",
			Year:            2019,
			Capacity:        600,
			AllowedTypes:    models.RestrictedTo(models.CargoBulk),
			TankVolume:      250,
			FuelConsumption: 0.55,
		}),
		krone: models.NewTruck(models.TruckSpec{
			VehicleSpec: models.VehicleSpec{
				Mark:            "Krone",
				Model:           "SD",
				Year:            2019,
				Capacity:        400,
				AllowedTypes:    models.RestrictedTo(models.CargoBulk),
				TankVolume:      550,
				FuelConsumption: 0.75,
			},
			TrailerAttached: true,
			TrailerCapacity: trailer(500),
			TrailerTypes:    models.RestrictedTo(models.CargoBulk),
		}),
		pin: models.NewTruck(models.TruckSpec{
			VehicleSpec: models.VehicleSpec{
				Mark:            "PIN",
				Model:           "CHO2",
				Year:            2024,
				Capacity:        200,
				AllowedTypes:    models.RestrictedTo(models.CargoPerishable),
				TankVolume:      650,
				FuelConsumption: 0.8,
			},
			TrailerAttached: true,
			TrailerCapacity: trailer(300),
			TrailerTypes:    models.RestrictedTo(models.CargoPerishable),
		}),
		schmitz: models.NewTruck(models.TruckSpec{
			VehicleSpec: models.VehicleSpec{
				Mark:            "Schmitz",
				Model:           "Cargobull SKO",
				Year:            2021,
				Capacity:        300,
				AllowedTypes:    models.Unrestricted(),
				TankVolume:      400,
				FuelConsumption: 0.6,
			},
			TrailerAttached: false,
			TrailerCapacity: trailer(400),
			TrailerTypes:    models.Unrestricted(),
		}),
	}
}

func (s sample) carriers() []models.Carrier {
	return []models.Carrier{s.tesla, s.volvo, s.mercedes, s.scania, s.krone, s.pin, s.schmitz}
}

func sampleRoster() []models.Carrier {
	return newSample().carriers()
}
