package models

// Carrier is the capability shared by every fleet member.
type Carrier interface {
	Name() string
	// Capacity is the base load limit, excluding any trailer.
	Capacity() int
	CurrentLoad() int
	LoadCargo(c Cargo) Outcome
	UnloadCargo() Outcome
	CanGo(cargo []Cargo, distance int) Outcome
}

// VehicleSpec holds the fixed characteristics of a vehicle.
type VehicleSpec struct {
	Mark            string
	Model           string
	Year            int
	Capacity        int // max cargo weight in kg
	AllowedTypes    TypeRestriction
	TankVolume      int     // litres
	FuelConsumption float64 // litres per km
	CurrentLoad     int     // initial load
}

// Vehicle represents a load-bearing fleet vehicle.
type Vehicle struct {
	spec        VehicleSpec
	currentLoad int
}

func NewVehicle(spec VehicleSpec) *Vehicle {
	return &Vehicle{spec: spec, currentLoad: spec.CurrentLoad}
}

// Spec returns the vehicle characteristics with CurrentLoad set to the live load.
func (v *Vehicle) Spec() VehicleSpec {
	s := v.spec
	s.CurrentLoad = v.currentLoad
	return s
}

func (v *Vehicle) Name() string { return v.spec.Mark + " " + v.spec.Model }

func (v *Vehicle) Capacity() int { return v.spec.Capacity }

func (v *Vehicle) CurrentLoad() int { return v.currentLoad }

// LoadCargo adds the cargo weight to the current load if the type is allowed
// and the capacity is not exceeded. The load is unchanged on rejection.
func (v *Vehicle) LoadCargo(c Cargo) Outcome {
	weight := c.WeightOrZero()
	out := Outcome{
		Vehicle:   v.Name(),
		CargoType: c.Type(),
		Weight:    weight,
		Load:      v.currentLoad,
		Capacity:  v.spec.Capacity,
	}

	if !v.spec.AllowedTypes.Allows(c.Type()) {
		out.Kind = OutcomeCargoTypeRejected
		return out
	}
	if v.currentLoad+weight > v.spec.Capacity {
		out.Kind = OutcomeCapacityExceeded
		return out
	}

	v.currentLoad += weight
	out.Kind = OutcomeLoaded
	out.Load = v.currentLoad
	return out
}

// UnloadCargo empties the vehicle.
func (v *Vehicle) UnloadCargo() Outcome {
	out := Outcome{Vehicle: v.Name(), Capacity: v.spec.Capacity}
	if v.currentLoad == 0 {
		out.Kind = OutcomeAlreadyEmpty
		return out
	}
	out.Weight = v.currentLoad
	v.currentLoad = 0
	out.Kind = OutcomeUnloaded
	return out
}

// MaxDistance is the range on half a tank.
func (v *Vehicle) MaxDistance() float64 {
	return float64(v.spec.TankVolume) / 2 / v.spec.FuelConsumption
}

// CanGo reports whether the vehicle can cover distance on half a tank.
// The cargo list does not take part in the range calculation.
func (v *Vehicle) CanGo(cargo []Cargo, distance int) Outcome {
	maxDistance := v.MaxDistance()
	out := Outcome{
		Kind:        OutcomeTripFeasible,
		Vehicle:     v.Name(),
		Load:        v.currentLoad,
		Distance:    distance,
		MaxDistance: maxDistance,
	}
	if float64(distance) > maxDistance {
		out.Kind = OutcomeInsufficientFuel
	}
	return out
}
