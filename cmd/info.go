package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukydev/carpark/internal/report"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print fleet size, capacity and load",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	fleet, err := a.fleet(cmd.Context())
	if err != nil {
		return err
	}
	a.reportInfo(fleet)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), report.FormatInfo(fleet.Info()))
	return err
}
