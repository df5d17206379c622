package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukydev/carpark/internal/db"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the stored fleet roster",
}

var rosterSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample roster to MongoDB",
	RunE:  runRosterSeed,
}

func init() {
	rosterCmd.AddCommand(rosterSeedCmd)
	rootCmd.AddCommand(rosterCmd)
}

func runRosterSeed(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	client, err := db.ConnectMongo(ctx, a.cfg.MongoURI)
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	coll := &db.MongoCollection{Collection: client.Database(a.cfg.MongoDB).Collection(a.cfg.MongoCollection)}
	n, err := db.SeedRoster(ctx, coll, sampleRoster())
	if err != nil {
		return fmt.Errorf("seeded %d vehicles: %w", n, err)
	}
	log.WithFields(log.Fields{
		"database":   a.cfg.MongoDB,
		"collection": a.cfg.MongoCollection,
		"vehicles":   n,
	}).Info("Roster seeded")
	return nil
}
