package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukydev/carpark/internal/config"
	"github.com/ukydev/carpark/internal/db"
	"github.com/ukydev/carpark/internal/models"
	"github.com/ukydev/carpark/internal/report"
)

var (
	envFile string
	source  string
)

var rootCmd = &cobra.Command{
	Use:           "carpark",
	Short:         "Fleet cargo and trip feasibility tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file")
	rootCmd.PersistentFlags().StringVar(&source, "source", "", "roster source: sample or mongo (overrides CARPARK_SOURCE)")
}

// app holds what every subcommand needs.
type app struct {
	cfg      *config.Config
	reporter report.Reporter
	metrics  *prometheus.Registry
	mqtt     *report.MQTTReporter
}

func newApp() (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if source != "" {
		cfg.Source = source
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	cfg.ConfigureLogger(log.StandardLogger())

	a := &app{cfg: cfg}
	reporters := []report.Reporter{report.NewLogReporter(log.StandardLogger())}

	if cfg.MQTTBroker != "" {
		m, err := report.NewMQTTReporter(report.MQTTConfig{
			Broker:      cfg.MQTTBroker,
			ClientID:    cfg.MQTTClientID,
			TopicPrefix: cfg.MQTTTopicPrefix,
		})
		if err != nil {
			return nil, err
		}
		a.mqtt = m
		reporters = append(reporters, m)
	}
	if cfg.MetricsTextfile != "" {
		a.metrics = prometheus.NewRegistry()
		p, err := report.NewPromReporter(a.metrics)
		if err != nil {
			a.close()
			return nil, err
		}
		reporters = append(reporters, p)
	}

	a.reporter = report.NewMultiReporter(reporters...)
	return a, nil
}

// close flushes metrics and disconnects from the broker.
func (a *app) close() {
	if a.metrics != nil {
		if err := report.WriteTextfile(a.cfg.MetricsTextfile, a.metrics); err != nil {
			log.WithError(err).Error("Failed to write metrics textfile")
		}
	}
	if a.mqtt != nil {
		a.mqtt.Close()
	}
}

// report sends o to the reporters. Reporter failures are logged, never fatal.
func (a *app) report(o models.Outcome) {
	if err := a.reporter.Report(o); err != nil {
		log.WithError(err).Warn("Failed to report outcome")
	}
}

func (a *app) reportInfo(f *models.Fleet) {
	if err := a.reporter.ReportInfo(f.Info()); err != nil {
		log.WithError(err).Warn("Failed to report fleet info")
	}
}

func (a *app) reportTrip(check models.TripCheck) {
	if err := report.ReportTrip(a.reporter, check); err != nil {
		log.WithError(err).Warn("Failed to report trip check")
	}
}

// fleet builds the fleet from the configured source.
func (a *app) fleet(ctx context.Context) (*models.Fleet, error) {
	if a.cfg.Source != config.SourceMongo {
		return models.NewFleet(sampleRoster()...), nil
	}
	client, err := db.ConnectMongo(ctx, a.cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect(context.Background())
	coll := &db.MongoCollection{Collection: client.Database(a.cfg.MongoDB).Collection(a.cfg.MongoCollection)}
	return db.LoadFleet(ctx, coll)
}
