package models

import (
	"errors"
	"fmt"
)

// OutcomeKind identifies the result of a vehicle or fleet operation.
type OutcomeKind string

const (
	OutcomeLoaded               OutcomeKind = "loaded"
	OutcomeUnloaded             OutcomeKind = "unloaded"
	OutcomeAlreadyEmpty         OutcomeKind = "already_empty"
	OutcomeTripFeasible         OutcomeKind = "trip_feasible"
	OutcomeCargoTypeRejected    OutcomeKind = "cargo_type_rejected"
	OutcomeCapacityExceeded     OutcomeKind = "capacity_exceeded"
	OutcomeInsufficientFuel     OutcomeKind = "insufficient_fuel"
	OutcomeFleetCannotTransport OutcomeKind = "fleet_cannot_transport"
)

var (
	ErrCargoTypeRejected    = errors.New("cargo type rejected")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrInsufficientFuel     = errors.New("insufficient fuel")
	ErrFleetCannotTransport = errors.New("no vehicle in fleet can make the trip")
)

// Outcome is the structured result of a single operation. Only the fields
// relevant to Kind are populated.
type Outcome struct {
	Kind        OutcomeKind `json:"kind"`
	Vehicle     string      `json:"vehicle,omitempty"`
	CargoType   CargoType   `json:"cargo_type,omitempty"`
	Weight      int         `json:"weight,omitempty"`
	Load        int         `json:"load"`
	Capacity    int         `json:"capacity,omitempty"`
	Distance    int         `json:"distance,omitempty"`
	MaxDistance float64     `json:"max_distance,omitempty"`
	Trailer     bool        `json:"trailer,omitempty"` // truck load with trailer capacity
}

// OK reports whether the operation succeeded. AlreadyEmpty counts as success.
func (o Outcome) OK() bool {
	switch o.Kind {
	case OutcomeLoaded, OutcomeUnloaded, OutcomeAlreadyEmpty, OutcomeTripFeasible:
		return true
	default:
		return false
	}
}

// Err returns nil for successful outcomes, otherwise the matching sentinel
// wrapped with the vehicle name.
func (o Outcome) Err() error {
	var base error
	switch o.Kind {
	case OutcomeCargoTypeRejected:
		base = ErrCargoTypeRejected
	case OutcomeCapacityExceeded:
		base = ErrCapacityExceeded
	case OutcomeInsufficientFuel:
		base = ErrInsufficientFuel
	case OutcomeFleetCannotTransport:
		return ErrFleetCannotTransport
	default:
		return nil
	}
	return fmt.Errorf("%s: %w", o.Vehicle, base)
}
