package metrics

import (
	"foundry-playlist-converter/internal/filesystem"
	"foundry-playlist-converter/internal/playlist"
)

var (
	_ playlist.Observer   = (*Recorder)(nil)
	_ filesystem.Observer = (*Recorder)(nil)
)

// Filesystem retry event labels.
const (
	eventStale   = "stale"
	eventAttempt = "attempt"
	eventSuccess = "success"
	eventFailure = "failure"
)

var retryEvents = []string{eventStale, eventAttempt, eventSuccess, eventFailure}

// ObserveLine implements playlist.Observer.
func (r *Recorder) ObserveLine(source playlist.Source, outcome playlist.Outcome) {
	r.LinesTotal.WithLabelValues(string(source), string(outcome)).Inc()
	if outcome == playlist.OutcomeResolved {
		r.EntriesResolved.Inc()
	}
}

func (r *Recorder) ObserveRetryAttempt(operation string) {
	r.FilesystemRetries.WithLabelValues(operation, eventAttempt).Inc()
}

func (r *Recorder) ObserveRetrySuccess(operation string) {
	r.FilesystemRetries.WithLabelValues(operation, eventSuccess).Inc()
}

func (r *Recorder) ObserveRetryFailure(operation string) {
	r.FilesystemRetries.WithLabelValues(operation, eventFailure).Inc()
}

func (r *Recorder) ObserveStaleError(operation string) {
	r.FilesystemRetries.WithLabelValues(operation, eventStale).Inc()
}
