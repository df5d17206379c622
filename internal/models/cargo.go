package models

import (
	"errors"
	"fmt"
)

// CargoType is the category of a shipment. It gates which vehicles and
// trailers may carry it.
type CargoType string

const (
	CargoFragile    CargoType = "fragile"
	CargoPerishable CargoType = "perishable"
	CargoBulk       CargoType = "bulk"
)

var (
	ErrInvalidCargo     = errors.New("invalid cargo")
	ErrUnknownCargoType = errors.New("unknown cargo type")
)

// IsValidCargoType checks if a cargo type is one of the known categories
func IsValidCargoType(t CargoType) bool {
	switch t {
	case CargoFragile, CargoPerishable, CargoBulk:
		return true
	default:
		return false
	}
}

// ParseCargoType converts a raw name into a CargoType.
func ParseCargoType(s string) (CargoType, error) {
	t := CargoType(s)
	if !IsValidCargoType(t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCargoType, s)
	}
	return t, nil
}

// Cargo is an immutable shipment description.
type Cargo struct {
	description string
	weight      *int
	cargoType   CargoType
}

// NewCargo builds a Cargo. A negative weight yields ErrInvalidCargo and no value.
func NewCargo(weight int, t CargoType, description string) (Cargo, error) {
	if weight < 0 {
		return Cargo{}, fmt.Errorf("%w: negative weight %d for %q", ErrInvalidCargo, weight, description)
	}
	w := weight
	return Cargo{description: description, weight: &w, cargoType: t}, nil
}

// MustCargo is NewCargo for fixtures with known-good weights.
func MustCargo(weight int, t CargoType, description string) Cargo {
	c, err := NewCargo(weight, t, description)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Cargo) Description() string { return c.description }

func (c Cargo) Type() CargoType { return c.cargoType }

// Weight returns the cargo weight and whether one was recorded.
func (c Cargo) Weight() (int, bool) {
	if c.weight == nil {
		return 0, false
	}
	return *c.weight, true
}

// WeightOrZero treats a missing weight as 0.
func (c Cargo) WeightOrZero() int {
	w, _ := c.Weight()
	return w
}
