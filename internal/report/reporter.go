package report

import (
	"errors"

	"github.com/ukydev/carpark/internal/models"
)

// Reporter receives operation outcomes and fleet summaries.
type Reporter interface {
	Report(o models.Outcome) error
	ReportInfo(info models.FleetInfo) error
}

// MultiReporter forwards to every wrapped reporter.
type MultiReporter struct {
	reporters []Reporter
}

func NewMultiReporter(reporters ...Reporter) *MultiReporter {
	return &MultiReporter{reporters: reporters}
}

// Report forwards o to all reporters and joins their errors.
func (m *MultiReporter) Report(o models.Outcome) error {
	var errs []error
	for _, r := range m.reporters {
		if err := r.Report(o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiReporter) ReportInfo(info models.FleetInfo) error {
	var errs []error
	for _, r := range m.reporters {
		if err := r.ReportInfo(info); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReportTrip reports every outcome evaluated during a fleet trip check.
func ReportTrip(r Reporter, check models.TripCheck) error {
	var errs []error
	for _, o := range check.Outcomes {
		if err := r.Report(o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
