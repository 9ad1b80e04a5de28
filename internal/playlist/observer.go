package playlist

// Source identifies how a playlist line was interpreted.
type Source string

const (
	// SourceURI is a line starting with file://.
	SourceURI Source = "uri"
	// SourcePath is any other line, tried as a file-system path.
	SourcePath Source = "path"
)

// Outcome is what happened to a single playlist line.
type Outcome string

const (
	// OutcomeResolved means the line named an existing file.
	OutcomeResolved Outcome = "resolved"
	// OutcomeMissing means nothing exists at the named path.
	OutcomeMissing Outcome = "missing"
	// OutcomeBlank means the line was empty or whitespace.
	OutcomeBlank Outcome = "blank"
	// OutcomeComment means an unresolved line starting with '#'.
	OutcomeComment Outcome = "comment"
)

// Observer records per-line outcomes. Implementations are provided by the
// metrics package to break the import cycle between playlist and metrics.
type Observer interface {
	ObserveLine(source Source, outcome Outcome)
}

type nopObserver struct{}

func (nopObserver) ObserveLine(Source, Outcome) {}
