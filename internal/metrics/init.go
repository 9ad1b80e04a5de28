package metrics

import (
	"foundry-playlist-converter/internal/filesystem"
	"foundry-playlist-converter/internal/playlist"
)

// initialize pre-populates all expected label combinations so that every
// series is present in the textfile even when it stays at zero.
func (r *Recorder) initialize() {
	sources := []playlist.Source{playlist.SourceURI, playlist.SourcePath}
	outcomes := []playlist.Outcome{
		playlist.OutcomeResolved,
		playlist.OutcomeMissing,
		playlist.OutcomeBlank,
		playlist.OutcomeComment,
	}

	for _, source := range sources {
		for _, outcome := range outcomes {
			r.LinesTotal.WithLabelValues(string(source), string(outcome))
		}
	}

	for _, op := range []string{filesystem.OpStat, filesystem.OpOpen} {
		for _, event := range retryEvents {
			r.FilesystemRetries.WithLabelValues(op, event)
		}
	}

	for _, status := range []string{StatusSuccess, StatusFailure} {
		r.ConversionsTotal.WithLabelValues(status)
	}
}
