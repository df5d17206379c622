package main

import (
	"github.com/spf13/cobra"

	"github.com/ukydev/carpark/internal/models"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the sample load, unload and trip scenario",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	playDemo(a, newSample())
	return nil
}

// playDemo always runs on the sample roster, whatever the configured source.
func playDemo(a *app, s sample) *models.Fleet {
	mirror := models.MustCargo(1000, models.CargoFragile, "Mirror")
	milk := models.MustCargo(100, models.CargoPerishable, "Milk")
	concrete := models.MustCargo(700, models.CargoBulk, "Concrete")

	fleet := models.NewFleet(s.carriers()...)
	a.reportInfo(fleet)

	a.report(s.tesla.LoadCargo(mirror))
	a.report(s.volvo.LoadCargo(milk))
	a.report(s.mercedes.LoadCargo(concrete))
	a.report(s.scania.LoadCargo(milk))
	a.report(s.krone.LoadCargo(concrete))
	a.report(s.krone.LoadCargo(concrete))
	a.report(s.krone.LoadCargo(mirror))
	a.reportInfo(fleet)

	a.report(s.tesla.UnloadCargo())
	a.report(s.pin.UnloadCargo())
	a.reportInfo(fleet)

	a.reportTrip(fleet.CanTransportCargo([]models.Cargo{mirror}, 400))
	a.reportTrip(fleet.CanTransportCargo([]models.Cargo{concrete}, 300))
	a.reportTrip(fleet.CanTransportCargo([]models.Cargo{milk}, 100))
	return fleet
}
