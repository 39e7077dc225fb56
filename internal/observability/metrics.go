package observability

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics bundles the run counters on a dedicated registry.
type Metrics struct {
	Registry      *prometheus.Registry
	Navigations   prometheus.Counter
	RowsExtracted prometheus.Counter
	RowsSkipped   prometheus.Counter
	RatingsAbsent prometheus.Counter
	AuthFailures  prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	navigations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "confreview_navigations_total",
		Help: "Total page navigations driven through the browser session.",
	})
	rowsExtracted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "confreview_rows_extracted_total",
		Help: "Total submission rows successfully extracted.",
	})
	rowsSkipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "confreview_rows_skipped_total",
		Help: "Total malformed submission rows skipped.",
	})
	ratingsAbsent := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "confreview_ratings_absent_total",
		Help: "Total rating slots that never populated within the wait budget.",
	})
	authFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "confreview_auth_failures_total",
		Help: "Total rejected login attempts.",
	})

	registry.MustRegister(navigations, rowsExtracted, rowsSkipped, ratingsAbsent, authFailures)

	return &Metrics{
		Registry:      registry,
		Navigations:   navigations,
		RowsExtracted: rowsExtracted,
		RowsSkipped:   rowsSkipped,
		RatingsAbsent: ratingsAbsent,
		AuthFailures:  authFailures,
	}
}

// WriteTo dumps the registry in text exposition format. Used at end of
// run since a batch process has no scrape endpoint.
func (m *Metrics) WriteTo(path string) (err error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(f, family); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return nil
}
