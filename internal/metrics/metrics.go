package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Recorder holds the metrics for one run in a dedicated registry.
type Recorder struct {
	registry *prometheus.Registry

	// Playlist metrics
	LinesTotal      *prometheus.CounterVec
	EntriesResolved prometheus.Counter

	// Filesystem metrics
	FilesystemRetries *prometheus.CounterVec

	// Conversion metrics
	ConversionsTotal     *prometheus.CounterVec
	ConversionDuration   prometheus.Histogram
	SoundsWritten        prometheus.Counter
	LastSuccessTimestamp prometheus.Gauge
}

// New creates a Recorder with every metric registered and every expected
// label combination present.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Recorder{
		registry: reg,

		LinesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foundry_playlist_lines_total",
				Help: "Total number of playlist lines read, by source and outcome",
			},
			[]string{"source", "outcome"},
		),

		EntriesResolved: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "foundry_playlist_entries_resolved_total",
				Help: "Total number of playlist lines that named an existing file",
			},
		),

		FilesystemRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foundry_playlist_filesystem_retry_events_total",
				Help: "NFS stale file handle retry events by operation and event",
			},
			[]string{"operation", "event"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "foundry_playlist_conversions_total",
				Help: "Total number of conversion runs by status",
			},
			[]string{"status"},
		),

		ConversionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "foundry_playlist_conversion_duration_seconds",
				Help:    "Conversion run duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),

		SoundsWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "foundry_playlist_sounds_written_total",
				Help: "Total number of sounds written to playlist documents",
			},
		),

		LastSuccessTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "foundry_playlist_last_success_timestamp_seconds",
				Help: "Unix timestamp of the last successful conversion",
			},
		),
	}

	r.initialize()
	return r
}

// ObserveConversion records the outcome of a run. sounds is ignored unless
// status is StatusSuccess.
func (r *Recorder) ObserveConversion(status string, duration time.Duration, sounds int) {
	r.ConversionsTotal.WithLabelValues(status).Inc()
	r.ConversionDuration.Observe(duration.Seconds())
	if status == StatusSuccess {
		r.SoundsWritten.Add(float64(sounds))
		r.LastSuccessTimestamp.SetToCurrentTime()
	}
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
