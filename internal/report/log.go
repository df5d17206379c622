package report

import (
	"github.com/sirupsen/logrus"

	"github.com/ukydev/carpark/internal/models"
)

// LogReporter writes outcomes through logrus. Rejections are logged at warn level.
type LogReporter struct {
	log logrus.FieldLogger
}

func NewLogReporter(log logrus.FieldLogger) *LogReporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogReporter{log: log}
}

func (r *LogReporter) Report(o models.Outcome) error {
	fields := logrus.Fields{"kind": string(o.Kind)}
	if o.Vehicle != "" {
		fields["vehicle"] = o.Vehicle
	}
	switch o.Kind {
	case models.OutcomeLoaded, models.OutcomeCargoTypeRejected, models.OutcomeCapacityExceeded:
		fields["cargo_type"] = string(o.CargoType)
		fields["weight"] = o.Weight
		fields["load"] = o.Load
		fields["capacity"] = o.Capacity
		fields["trailer"] = o.Trailer
	case models.OutcomeTripFeasible, models.OutcomeInsufficientFuel:
		fields["distance"] = o.Distance
		fields["max_distance"] = finite(o.MaxDistance)
	case models.OutcomeFleetCannotTransport:
		fields["distance"] = o.Distance
	}

	entry := r.log.WithFields(fields)
	if o.OK() {
		entry.Info(Format(o))
	} else {
		entry.Warn(Format(o))
	}
	return nil
}

func (r *LogReporter) ReportInfo(info models.FleetInfo) error {
	r.log.WithFields(logrus.Fields{
		"vehicles":           info.Vehicles,
		"total_capacity":     info.TotalCapacity,
		"total_current_load": info.TotalCurrentLoad,
	}).Info(FormatInfo(info))
	return nil
}
