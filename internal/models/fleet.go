package models

// Fleet is an ordered collection of carriers. Duplicates are allowed.
type Fleet struct {
	vehicles []Carrier
}

// FleetInfo summarises a fleet.
type FleetInfo struct {
	Vehicles         int `json:"vehicles"`
	TotalCapacity    int `json:"total_capacity"`
	TotalCurrentLoad int `json:"total_current_load"`
}

// TripCheck is the result of a fleet-wide feasibility query. Outcomes holds
// the result of every vehicle evaluated, in order; when no vehicle qualifies
// it ends with an OutcomeFleetCannotTransport entry.
type TripCheck struct {
	Feasible bool
	Outcomes []Outcome
}

// Result returns the deciding outcome of the check.
func (c TripCheck) Result() Outcome {
	if len(c.Outcomes) == 0 {
		return Outcome{Kind: OutcomeFleetCannotTransport}
	}
	return c.Outcomes[len(c.Outcomes)-1]
}

func NewFleet(vehicles ...Carrier) *Fleet {
	f := &Fleet{vehicles: make([]Carrier, 0, len(vehicles))}
	f.vehicles = append(f.vehicles, vehicles...)
	return f
}

func (f *Fleet) AddVehicle(c Carrier) {
	f.vehicles = append(f.vehicles, c)
}

// Vehicles returns the members in insertion order.
func (f *Fleet) Vehicles() []Carrier {
	out := make([]Carrier, len(f.vehicles))
	copy(out, f.vehicles)
	return out
}

func (f *Fleet) Len() int { return len(f.vehicles) }

// TotalCapacity sums the base capacity of every member. Trailer capacity is
// not included.
func (f *Fleet) TotalCapacity() int {
	total := 0
	for _, v := range f.vehicles {
		total += v.Capacity()
	}
	return total
}

func (f *Fleet) TotalCurrentLoad() int {
	total := 0
	for _, v := range f.vehicles {
		total += v.CurrentLoad()
	}
	return total
}

func (f *Fleet) Info() FleetInfo {
	return FleetInfo{
		Vehicles:         len(f.vehicles),
		TotalCapacity:    f.TotalCapacity(),
		TotalCurrentLoad: f.TotalCurrentLoad(),
	}
}

// CanTransportCargo asks each vehicle in order whether it can make the trip
// and stops at the first one that can. Only fuel range is considered.
func (f *Fleet) CanTransportCargo(cargo []Cargo, distance int) TripCheck {
	var check TripCheck
	for _, v := range f.vehicles {
		out := v.CanGo(cargo, distance)
		check.Outcomes = append(check.Outcomes, out)
		if out.OK() {
			check.Feasible = true
			return check
		}
	}
	check.Outcomes = append(check.Outcomes, Outcome{
		Kind:     OutcomeFleetCannotTransport,
		Distance: distance,
	})
	return check
}

func (f *Fleet) CanTransport(trip Trip) TripCheck {
	return f.CanTransportCargo(trip.Cargo, trip.Distance)
}
