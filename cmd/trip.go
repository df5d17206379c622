package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukydev/carpark/internal/models"
)

var (
	tripDistance int
	tripCargo    []string
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Check whether any fleet vehicle can make a trip",
	RunE:  runTrip,
}

func init() {
	tripCmd.Flags().IntVarP(&tripDistance, "distance", "d", 0, "trip distance in km")
	tripCmd.Flags().StringSliceVar(&tripCargo, "cargo", nil, "cargo as type:weight[:description], repeatable")
	_ = tripCmd.MarkFlagRequired("distance")
	rootCmd.AddCommand(tripCmd)
}

func runTrip(cmd *cobra.Command, args []string) error {
	trip := models.Trip{Distance: tripDistance}
	for _, raw := range tripCargo {
		c, err := parseCargo(raw)
		if err != nil {
			return err
		}
		trip.Cargo = append(trip.Cargo, c)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	fleet, err := a.fleet(cmd.Context())
	if err != nil {
		return err
	}
	check := fleet.CanTransport(trip)
	a.reportTrip(check)

	verdict := "no"
	if check.Feasible {
		verdict = "yes"
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), verdict)
	return err
}

// parseCargo reads "type:weight[:description]".
func parseCargo(raw string) (models.Cargo, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) < 2 {
		return models.Cargo{}, fmt.Errorf("cargo %q: want type:weight[:description]", raw)
	}
	t, err := models.ParseCargoType(parts[0])
	if err != nil {
		return models.Cargo{}, fmt.Errorf("cargo %q: %w", raw, err)
	}
	weight, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Cargo{}, fmt.Errorf("cargo %q: weight: %w", raw, err)
	}
	desc := ""
	if len(parts) == 3 {
		desc = parts[2]
	}
	return models.NewCargo(weight, t, desc)
}
