package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	KindVehicle = "vehicle"
	KindTruck   = "truck"
)

var ErrUnknownVehicleKind = errors.New("unknown vehicle kind")

// VehicleDocument is the stored definition of a fleet member.
type VehicleDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind            string             `bson:"kind" json:"kind"` // "vehicle" or "truck"
	Mark            string             `bson:"mark" json:"mark"`
	Model           string             `bson:"model" json:"model"`
	Year            int                `bson:"year" json:"year"`
	Capacity        int                `bson:"capacity" json:"capacity"`
	AllowedTypes    []string           `bson:"allowed_types,omitempty" json:"allowed_types,omitempty"` // empty means any type
	TankVolume      int                `bson:"tank_volume" json:"tank_volume"`
	FuelConsumption float64            `bson:"fuel_consumption" json:"fuel_consumption"`
	CurrentLoad     int                `bson:"current_load,omitempty" json:"current_load,omitempty"`
	Trailer         *TrailerDocument   `bson:"trailer,omitempty" json:"trailer,omitempty"`
}

// TrailerDocument describes a truck trailer.
type TrailerDocument struct {
	Attached bool     `bson:"attached" json:"attached"`
	Capacity *int     `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Types    []string `bson:"types,omitempty" json:"types,omitempty"`
}

// ToCarrier converts the document into a Vehicle or Truck.
func (d VehicleDocument) ToCarrier() (Carrier, error) {
	allowed, err := parseRestriction(d.AllowedTypes)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s %s: %w", d.Mark, d.Model, err)
	}
	spec := VehicleSpec{
		Mark:            d.Mark,
		Model:           d.Model,
		Year:            d.Year,
		Capacity:        d.Capacity,
		AllowedTypes:    allowed,
		TankVolume:      d.TankVolume,
		FuelConsumption: d.FuelConsumption,
		CurrentLoad:     d.CurrentLoad,
	}

	switch d.Kind {
	case KindVehicle, "":
		return NewVehicle(spec), nil
	case KindTruck:
		ts := TruckSpec{VehicleSpec: spec}
		if d.Trailer != nil {
			trailerTypes, err := parseRestriction(d.Trailer.Types)
			if err != nil {
				return nil, fmt.Errorf("trailer of %s %s: %w", d.Mark, d.Model, err)
			}
			ts.TrailerAttached = d.Trailer.Attached
			ts.TrailerCapacity = d.Trailer.Capacity
			ts.TrailerTypes = trailerTypes
		}
		return NewTruck(ts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVehicleKind, d.Kind)
	}
}

// DocumentFromCarrier builds the stored definition of c. CurrentLoad is the
// load the vehicle was created with; cargo loaded since is not stored.
func DocumentFromCarrier(c Carrier) (VehicleDocument, error) {
	switch v := c.(type) {
	case *Truck:
		ts := v.TruckSpec()
		doc := documentFromSpec(KindTruck, v.Vehicle.spec)
		doc.Trailer = &TrailerDocument{
			Attached: ts.TrailerAttached,
			Capacity: ts.TrailerCapacity,
			Types:    typeNames(ts.TrailerTypes),
		}
		return doc, nil
	case *Vehicle:
		return documentFromSpec(KindVehicle, v.spec), nil
	default:
		return VehicleDocument{}, fmt.Errorf("%w: %T", ErrUnknownVehicleKind, c)
	}
}

func documentFromSpec(kind string, s VehicleSpec) VehicleDocument {
	return VehicleDocument{
		Kind:            kind,
		Mark:            s.Mark,
		Model:           s.Model,
		Year:            s.Year,
		Capacity:        s.Capacity,
		AllowedTypes:    typeNames(s.AllowedTypes),
		TankVolume:      s.TankVolume,
		FuelConsumption: s.FuelConsumption,
		CurrentLoad:     s.CurrentLoad,
	}
}

func parseRestriction(names []string) (TypeRestriction, error) {
	types := make([]CargoType, 0, len(names))
	for _, n := range names {
		t, err := ParseCargoType(n)
		if err != nil {
			return TypeRestriction{}, err
		}
		types = append(types, t)
	}
	return RestrictedTo(types...), nil
}

func typeNames(r TypeRestriction) []string {
	types := r.Types()
	if types == nil {
		return nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
