package models

// TruckSpec extends VehicleSpec with an optional trailer.
type TruckSpec struct {
	VehicleSpec
	TrailerAttached bool
	TrailerCapacity *int // nil when the truck has no trailer rating
	TrailerTypes    TypeRestriction
}

// Truck is a Vehicle that may tow a trailer. Only LoadCargo differs from
// Vehicle: the base AllowedTypes check is replaced by the trailer check.
type Truck struct {
	*Vehicle
	trailerAttached bool
	trailerCapacity *int
	trailerTypes    TypeRestriction
}

func NewTruck(spec TruckSpec) *Truck {
	t := &Truck{
		Vehicle:         NewVehicle(spec.VehicleSpec),
		trailerAttached: spec.TrailerAttached,
		trailerTypes:    spec.TrailerTypes,
	}
	if spec.TrailerCapacity != nil {
		c := *spec.TrailerCapacity
		t.trailerCapacity = &c
	}
	return t
}

// TruckSpec returns the truck characteristics with the live load.
func (t *Truck) TruckSpec() TruckSpec {
	s := TruckSpec{
		VehicleSpec:     t.Spec(),
		TrailerAttached: t.trailerAttached,
		TrailerTypes:    t.trailerTypes,
	}
	if t.trailerCapacity != nil {
		c := *t.trailerCapacity
		s.TrailerCapacity = &c
	}
	return s
}

func (t *Truck) TrailerAttached() bool { return t.trailerAttached }

// TotalCapacity is the base capacity plus the trailer capacity. The trailer
// rating counts whether or not the trailer is attached.
func (t *Truck) TotalCapacity() int {
	total := t.Capacity()
	if t.trailerCapacity != nil {
		total += *t.trailerCapacity
	}
	return total
}

// LoadCargo loads against the combined truck and trailer capacity. Trailer
// types are only checked while the trailer is attached.
func (t *Truck) LoadCargo(c Cargo) Outcome {
	weight := c.WeightOrZero()
	total := t.TotalCapacity()
	out := Outcome{
		Vehicle:   t.Name(),
		CargoType: c.Type(),
		Weight:    weight,
		Load:      t.currentLoad,
		Capacity:  total,
		Trailer:   true,
	}

	if t.trailerAttached && !t.trailerTypes.Allows(c.Type()) {
		out.Kind = OutcomeCargoTypeRejected
		return out
	}
	if t.currentLoad+weight > total {
		out.Kind = OutcomeCapacityExceeded
		return out
	}

	t.currentLoad += weight
	out.Kind = OutcomeLoaded
	out.Load = t.currentLoad
	return out
}
