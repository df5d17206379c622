package report

import (
	"fmt"

	"github.com/ukydev/carpark/internal/models"
)

// Format renders an outcome as a single human-readable line.
func Format(o models.Outcome) string {
	trailer := ""
	if o.Trailer {
		trailer = " with trailer"
	}

	switch o.Kind {
	case models.OutcomeLoaded:
		return fmt.Sprintf("%s: loaded %d kg of %s%s (load %d/%d kg)", o.Vehicle, o.Weight, o.CargoType, trailer, o.Load, o.Capacity)
	case models.OutcomeCargoTypeRejected:
		if o.Trailer {
			return fmt.Sprintf("%s: cannot carry %s cargo in trailer", o.Vehicle, o.CargoType)
		}
		return fmt.Sprintf("%s: cannot carry %s cargo", o.Vehicle, o.CargoType)
	case models.OutcomeCapacityExceeded:
		return fmt.Sprintf("%s: overloaded%s, %d + %d kg exceeds %d kg", o.Vehicle, trailer, o.Load, o.Weight, o.Capacity)
	case models.OutcomeUnloaded:
		return fmt.Sprintf("%s: unloaded %d kg", o.Vehicle, o.Weight)
	case models.OutcomeAlreadyEmpty:
		return fmt.Sprintf("%s: was already empty", o.Vehicle)
	case models.OutcomeTripFeasible:
		return fmt.Sprintf("%s: can make the %d km trip (range %.1f km)", o.Vehicle, o.Distance, o.MaxDistance)
	case models.OutcomeInsufficientFuel:
		return fmt.Sprintf("%s: not enough fuel for %d km (range %.1f km)", o.Vehicle, o.Distance, o.MaxDistance)
	case models.OutcomeFleetCannotTransport:
		return fmt.Sprintf("fleet: no vehicle can make the %d km trip", o.Distance)
	default:
		return fmt.Sprintf("%s: %s", o.Vehicle, o.Kind)
	}
}

// FormatInfo renders a fleet summary.
func FormatInfo(info models.FleetInfo) string {
	return fmt.Sprintf("fleet: %d vehicles, capacity %d kg, load %d kg", info.Vehicles, info.TotalCapacity, info.TotalCurrentLoad)
}
