package report

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ukydev/carpark/internal/models"
)

// PromReporter records outcomes and fleet summaries as Prometheus metrics.
type PromReporter struct {
	outcomes *prometheus.CounterVec
	vehicles prometheus.Gauge
	capacity prometheus.Gauge
	load     prometheus.Gauge
}

// NewPromReporter registers metrics on reg. A nil registerer defaults to the
// global Prometheus registerer.
func NewPromReporter(reg prometheus.Registerer) (*PromReporter, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carpark_outcomes_total",
		Help: "Total number of vehicle and fleet operation outcomes",
	}, []string{"kind"})
	vehicles := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "carpark_fleet_vehicles",
		Help: "Number of vehicles in the fleet",
	})
	capacity := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "carpark_fleet_capacity_kg",
		Help: "Sum of base vehicle capacities",
	})
	load := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "carpark_fleet_load_kg",
		Help: "Sum of current vehicle loads",
	})

	if err := reg.Register(outcomes); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		outcomes = are.ExistingCollector.(*prometheus.CounterVec)
	}
	gauges := []*prometheus.Gauge{&vehicles, &capacity, &load}
	for _, g := range gauges {
		if err := reg.Register(*g); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			*g = are.ExistingCollector.(prometheus.Gauge)
		}
	}

	return &PromReporter{outcomes: outcomes, vehicles: vehicles, capacity: capacity, load: load}, nil
}

func (r *PromReporter) Report(o models.Outcome) error {
	r.outcomes.WithLabelValues(string(o.Kind)).Inc()
	return nil
}

func (r *PromReporter) ReportInfo(info models.FleetInfo) error {
	r.vehicles.Set(float64(info.Vehicles))
	r.capacity.Set(float64(info.TotalCapacity))
	r.load.Set(float64(info.TotalCurrentLoad))
	return nil
}

// WriteTextfile writes the gathered metrics in the text exposition format,
// for pickup by a node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return prometheus.WriteToTextfile(path, g)
}
