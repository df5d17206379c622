package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCargo(t *testing.T) {
	tests := []struct {
		name        string
		weight      int
		cargoType   CargoType
		description string
		wantErr     bool
	}{
		{"zero weight", 0, CargoBulk, "Sand", false},
		{"fragile mirror", 1000, CargoFragile, "Mirror", false},
		{"perishable milk", 100, CargoPerishable, "Milk", false},
		{"negative weight", -1, CargoBulk, "Concrete", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCargo(tt.weight, tt.cargoType, tt.description)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCargo)
				assert.Equal(t, Cargo{}, c)
				return
			}
			require.NoError(t, err)
			w, ok := c.Weight()
			assert.True(t, ok)
			assert.Equal(t, tt.weight, w)
			assert.Equal(t, tt.cargoType, c.Type())
			assert.Equal(t, tt.description, c.Description())
		})
	}
}

func TestCargo_WeightOrZero(t *testing.T) {
	var c Cargo
	_, ok := c.Weight()
	assert.False(t, ok)
	assert.Equal(t, 0, c.WeightOrZero())

	assert.Equal(t, 700, MustCargo(700, CargoBulk, "Concrete").WeightOrZero())
}

func TestMustCargo_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { MustCargo(-5, CargoBulk, "bad") })
}

func TestParseCargoType(t *testing.T) {
	for _, name := range []string{"fragile", "perishable", "bulk"} {
		ct, err := ParseCargoType(name)
		require.NoError(t, err)
		assert.Equal(t, CargoType(name), ct)
	}

	_, err := ParseCargoType("liquid")
	assert.True(t, errors.Is(err, ErrUnknownCargoType))
	assert.False(t, IsValidCargoType(""))
}

func TestTypeRestriction(t *testing.T) {
	all := []CargoType{CargoFragile, CargoPerishable, CargoBulk}

	for name, r := range map[string]TypeRestriction{
		"zero value":   {},
		"unrestricted": Unrestricted(),
		"empty list":   RestrictedTo(),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, r.IsRestricted())
			assert.Nil(t, r.Types())
			for _, ct := range all {
				assert.True(t, r.Allows(ct))
			}
		})
	}

	r := RestrictedTo(CargoFragile, CargoBulk, CargoFragile)
	assert.True(t, r.IsRestricted())
	assert.True(t, r.Allows(CargoFragile))
	assert.True(t, r.Allows(CargoBulk))
	assert.False(t, r.Allows(CargoPerishable))
	assert.Equal(t, []CargoType{CargoBulk, CargoFragile}, r.Types())
}
