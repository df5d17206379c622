package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func newKrone() *Truck {
	return NewTruck(TruckSpec{
		VehicleSpec: VehicleSpec{
			Mark:            "Krone",
			Model:           "SD",
			Year:            2019,
			Capacity:        400,
			AllowedTypes:    RestrictedTo(CargoBulk),
			TankVolume:      550,
			FuelConsumption: 0.75,
		},
		TrailerAttached: true,
		TrailerCapacity: intPtr(500),
		TrailerTypes:    RestrictedTo(CargoBulk),
	})
}

func TestTruck_LoadCargo_CombinedCapacity(t *testing.T) {
	truck := newKrone()
	concrete := MustCargo(700, CargoBulk, "Concrete")
	assert.Equal(t, 900, truck.TotalCapacity())

	out := truck.LoadCargo(concrete)
	assert.Equal(t, OutcomeLoaded, out.Kind)
	assert.True(t, out.Trailer)
	assert.Equal(t, 900, out.Capacity)
	assert.Equal(t, 700, truck.CurrentLoad())

	out = truck.LoadCargo(concrete)
	assert.Equal(t, OutcomeCapacityExceeded, out.Kind)
	assert.True(t, out.Trailer)
	assert.Equal(t, 700, truck.CurrentLoad())

	out = truck.LoadCargo(MustCargo(1, CargoFragile, "Mirror"))
	assert.Equal(t, OutcomeCargoTypeRejected, out.Kind)
	assert.True(t, out.Trailer)
	assert.Equal(t, 700, truck.CurrentLoad())
}

func TestTruck_LoadCargo_IgnoresOwnAllowedTypes(t *testing.T) {
	truck := NewTruck(TruckSpec{
		VehicleSpec: VehicleSpec{
			Mark:         "PIN",
			Model:        "CHO2",
			Capacity:     200,
			AllowedTypes: RestrictedTo(CargoPerishable),
		},
		TrailerAttached: true,
		TrailerCapacity: intPtr(300),
		TrailerTypes:    Unrestricted(),
	})

	out := truck.LoadCargo(MustCargo(450, CargoBulk, "Gravel"))

	assert.Equal(t, OutcomeLoaded, out.Kind)
	assert.Equal(t, 450, truck.CurrentLoad())
}

func TestTruck_LoadCargo_NoTrailerAttached(t *testing.T) {
	truck := NewTruck(TruckSpec{
		VehicleSpec: VehicleSpec{
			Mark:         "Schmitz",
			Model:        "Cargobull SKO",
			Capacity:     300,
			AllowedTypes: RestrictedTo(CargoPerishable),
		},
		TrailerAttached: false,
		TrailerCapacity: intPtr(400),
		TrailerTypes:    RestrictedTo(CargoPerishable),
	})
	assert.False(t, truck.TrailerAttached())
	// the trailer rating counts even when detached
	assert.Equal(t, 700, truck.TotalCapacity())

	// trailer types are not checked without a trailer
	out := truck.LoadCargo(MustCargo(500, CargoBulk, "Gravel"))
	assert.Equal(t, OutcomeLoaded, out.Kind)
	assert.Equal(t, 700, out.Capacity)
	assert.True(t, out.Trailer)
	assert.Equal(t, 500, truck.CurrentLoad())

	out = truck.LoadCargo(MustCargo(200, CargoFragile, "Glass"))
	assert.Equal(t, OutcomeLoaded, out.Kind)

	out = truck.LoadCargo(MustCargo(1, CargoFragile, "Glass"))
	assert.Equal(t, OutcomeCapacityExceeded, out.Kind)
	assert.True(t, out.Trailer)
	assert.Equal(t, 700, truck.CurrentLoad())
}

func TestTruck_NilTrailerCapacity(t *testing.T) {
	truck := NewTruck(TruckSpec{
		VehicleSpec:     VehicleSpec{Mark: "MAN", Model: "TGX", Capacity: 100},
		TrailerAttached: true,
	})

	assert.Equal(t, 100, truck.TotalCapacity())
	assert.Equal(t, OutcomeCapacityExceeded, truck.LoadCargo(MustCargo(101, CargoBulk, "Sand")).Kind)
}

func TestTruck_SharesVehicleBehaviour(t *testing.T) {
	truck := newKrone()
	var c Carrier = truck

	assert.Equal(t, "Krone SD", c.Name())
	assert.Equal(t, 400, c.Capacity())
	assert.Equal(t, OutcomeAlreadyEmpty, c.UnloadCargo().Kind)

	c.LoadCargo(MustCargo(800, CargoBulk, "Coal"))
	assert.Equal(t, OutcomeUnloaded, c.UnloadCargo().Kind)
	assert.Equal(t, 0, c.CurrentLoad())

	// 550 / 2 / 0.75 = 366.67
	assert.True(t, c.CanGo(nil, 366).OK())
	assert.False(t, c.CanGo(nil, 367).OK())
}

func TestTruck_TruckSpecCopiesTrailerCapacity(t *testing.T) {
	capacity := 500
	truck := NewTruck(TruckSpec{TrailerAttached: true, TrailerCapacity: &capacity})
	capacity = 1

	spec := truck.TruckSpec()
	*spec.TrailerCapacity = 2

	assert.Equal(t, 500, truck.TotalCapacity())
}
