package nanobench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusReporter exports benchmark results as Prometheus metrics,
// labelled by benchmark name.
//
// Gauges hold the latest result of each benchmark. Insufficient results
// only bump a counter and leave the previous estimate in place.
type PrometheusReporter struct {
	nsPerIter    *prometheus.GaugeVec
	rSquared     *prometheus.GaugeVec
	samples      *prometheus.GaugeVec
	collection   *prometheus.GaugeVec
	insufficient *prometheus.CounterVec
}

// NewPrometheusReporter creates the metrics and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusReporter(reg prometheus.Registerer) (*PrometheusReporter, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	labels := []string{"benchmark"}
	p := &PrometheusReporter{
		nsPerIter: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "nanobench",
			Name:      "ns_per_iteration",
			Help:      "Estimated cost of one iteration in nanoseconds (regression slope).",
		}, labels),
		rSquared: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "nanobench",
			Name:      "r_squared",
			Help:      "Goodness of fit of the per-iteration estimate.",
		}, labels),
		samples: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "nanobench",
			Name:      "samples",
			Help:      "Number of samples collected in the latest run.",
		}, labels),
		collection: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "nanobench",
			Name:      "collection_seconds",
			Help:      "Wall time spent collecting samples in the latest run.",
		}, labels),
		insufficient: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nanobench",
			Name:      "insufficient_results_total",
			Help:      "Runs that did not produce a trustworthy estimate.",
		}, labels),
	}

	for _, c := range []prometheus.Collector{p.nsPerIter, p.rSquared, p.samples, p.collection, p.insufficient} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register benchmark metrics: %w", err)
		}
	}
	return p, nil
}

// Report records r.
func (p *PrometheusReporter) Report(r Result) {
	p.samples.WithLabelValues(r.Name).Set(float64(len(r.Samples)))
	p.collection.WithLabelValues(r.Name).Set(r.Elapsed.Seconds())

	analysis, ok := r.Estimate()
	if !ok {
		p.insufficient.WithLabelValues(r.Name).Inc()
		return
	}
	p.nsPerIter.WithLabelValues(r.Name).Set(analysis.Slope)
	p.rSquared.WithLabelValues(r.Name).Set(analysis.RSquared)
}
