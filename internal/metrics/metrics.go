// Package metrics records one run of the extraction pipeline in Prometheus
// form. wifikeys is a one-shot CLI, so metrics are written once to a
// node_exporter textfile instead of being served.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/systmms/wifikeys/internal/wlan"
)

// Recorder implements wlan.Observer on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	profilesListed prometheus.Gauge
	listFailures   prometheus.Counter
	fetchTotal     *prometheus.CounterVec
	fetchDuration  prometheus.Histogram
}

var _ wlan.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		profilesListed: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wifikeys_profiles_listed",
			Help: "Number of saved wireless profiles reported by the last enumeration",
		}),
		listFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "wifikeys_list_failures_total",
			Help: "Total number of failed profile enumerations",
		}),
		fetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wifikeys_fetch_total",
				Help: "Total number of profile key fetches by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wifikeys_fetch_duration_seconds",
			Help:    "Duration of a single profile key fetch in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 5},
		}),
	}
}

// ProfilesListed records an enumeration.
func (r *Recorder) ProfilesListed(count int, err error) {
	if err != nil {
		r.listFailures.Inc()
		r.profilesListed.Set(0)
		return
	}
	r.profilesListed.Set(float64(count))
}

// CredentialFetched records one fetch. Profile names are not used as labels.
func (r *Recorder) CredentialFetched(_ wlan.ProfileName, kind wlan.Kind, elapsed time.Duration) {
	r.fetchTotal.WithLabelValues(kind.String()).Inc()
	r.fetchDuration.Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
