// Package metrics records fare calculation metrics in a private Prometheus
// registry and exports them as a node-exporter textfile.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/rentalfare/internal/models"
	"github.com/mmynk/rentalfare/internal/service"
)

const namespace = "rentalfare"

var _ service.Observer = (*Metrics)(nil)

// Metrics implements service.Observer.
type Metrics struct {
	registry *prometheus.Registry

	rentals          prometheus.Counter
	optionsPriced    *prometheus.CounterVec
	negativePlatform prometheus.Counter
	rentalDays       prometheus.Histogram
	ledgerAmount     *prometheus.GaugeVec
}

// New creates the collectors and registers them.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rentals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rentals_calculated_total",
			Help:      "Rentals priced successfully.",
		}),
		optionsPriced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "options_priced_total",
			Help:      "Options priced, by option type.",
		}, []string{"type"}),
		negativePlatform: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "negative_platform_net_total",
			Help:      "Rentals whose platform share of the commission is negative.",
		}),
		rentalDays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rental_days",
			Help:      "Rental duration in days.",
			Buckets:   []float64{1, 2, 4, 10, 30, 90},
		}),
		// A gauge because platform credits can be negative.
		ledgerAmount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_amount_minor_units",
			Help:      "Sum of ledger amounts, by party and direction.",
		}, []string{"party", "direction"}),
	}

	m.registry.MustRegister(m.rentals, m.optionsPriced, m.negativePlatform, m.rentalDays, m.ledgerAmount)
	return m
}

// Gatherer exposes the registry, mainly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// ObserveRental records one calculated rental.
func (m *Metrics) ObserveRental(result models.RentalResult) {
	m.rentals.Inc()
	m.rentalDays.Observe(float64(result.Breakdown.Days))
	if result.Breakdown.PlatformNet < 0 {
		m.negativePlatform.Inc()
	}
	for _, o := range result.Options {
		m.optionsPriced.WithLabelValues(string(o)).Inc()
	}
	for _, a := range result.Actions {
		m.ledgerAmount.WithLabelValues(string(a.Who), string(a.Type)).Add(float64(a.Amount))
	}
}

// WriteFile writes every metric to path in the Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
