package playlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"foundry-playlist-converter/internal/filesystem"
	"foundry-playlist-converter/internal/logging"
)

const (
	utf8BOM = "\uFEFF"
	// maxLineLength bounds a single playlist line. Longer lines are skipped.
	maxLineLength = 1024 * 1024
)

var (
	// ErrNotFound is returned when the playlist file does not exist.
	ErrNotFound = errors.New("playlist file not found")
	// ErrEmpty is returned when no line of the playlist names an existing file.
	ErrEmpty = errors.New("found no files inside playlist")
	// ErrInvalidURI is returned for a file:// line that cannot be decoded.
	ErrInvalidURI = errors.New("invalid file URI")
)

// Entry is a single resolved audio file.
type Entry struct {
	// Path is absolute and existed when the playlist was read.
	Path string
	// Line is the 1-based line number the entry came from.
	Line int
}

// Resolved is the ordered result of reading a playlist.
type Resolved struct {
	Source    string
	Entries   []Entry
	LinesRead int
	Skipped   int
}

// Len returns the number of resolved entries.
func (r *Resolved) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

type options struct {
	observer Observer
	retry    filesystem.RetryConfig
	goos     string
}

// Option configures Read.
type Option func(*options)

// WithObserver reports every line outcome to o.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// WithRetry sets how file lookups retry NFS stale file handle errors. By
// default every lookup is attempted once.
func WithRetry(config filesystem.RetryConfig) Option {
	return func(opts *options) {
		opts.retry = config
	}
}

// withGOOS overrides the operating system used to decode file URIs.
func withGOOS(goos string) Option {
	return func(opts *options) {
		opts.goos = goos
	}
}

// Read parses the playlist at path. Lines that do not name an existing file
// are skipped; duplicates are kept in order.
func Read(path string, opts ...Option) (*Resolved, error) {
	cfg := options{
		observer: nopObserver{},
		retry:    filesystem.RetryConfig{},
		goos:     runtime.GOOS,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !fileExists(path, cfg.retry) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	f, err := filesystem.OpenWithRetry(path, cfg.retry)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}
	defer f.Close()

	result := &Resolved{Source: path}

	reader := bufio.NewReader(f)

	for {
		line, tooLong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read playlist %s: %w", path, err)
		}

		result.LinesRead++
		if tooLong {
			cfg.observer.ObserveLine(SourcePath, OutcomeMissing)
			result.Skipped++
			logging.Debug("Skipping line %d, longer than %d bytes", result.LinesRead, maxLineLength)
			continue
		}

		line = strings.TrimSuffix(line, "\r")
		if result.LinesRead == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		resolved, source, err := resolveLine(line, cfg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", result.LinesRead, err)
		}

		if resolved == "" {
			outcome := skipOutcome(line)
			cfg.observer.ObserveLine(source, outcome)
			result.Skipped++
			if outcome == OutcomeMissing {
				logging.Debug("Skipping line %d, no file at %q", result.LinesRead, line)
			}
			continue
		}

		cfg.observer.ObserveLine(source, OutcomeResolved)
		result.Entries = append(result.Entries, Entry{Path: resolved, Line: result.LinesRead})
		logging.Debug("Found: %s", resolved)
	}

	if len(result.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	logging.Debug("Resolved %d of %d lines from %s", len(result.Entries), result.LinesRead, path)
	return result, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineLength is consumed whole and reported with tooLong set; no path can
// be that long, so the caller skips it.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	started := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				break
			}
			return "", false, err
		}
		started = true
		if !tooLong {
			if len(buf)+len(chunk) > maxLineLength {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	return string(buf), tooLong, nil
}

// resolveLine returns the absolute path a line refers to, or "" when nothing
// exists there.
func resolveLine(line string, cfg options) (string, Source, error) {
	if isFileURI(line) {
		local, err := fileURIToPath(line, cfg.goos)
		if err != nil {
			return "", SourceURI, err
		}
		if !fileExists(local, cfg.retry) {
			return "", SourceURI, nil
		}
		return filepath.Clean(local), SourceURI, nil
	}

	if !fileExists(line, cfg.retry) {
		return "", SourcePath, nil
	}
	abs, err := filepath.Abs(line)
	if err != nil {
		return "", SourcePath, fmt.Errorf("failed to resolve %q: %w", line, err)
	}
	return abs, SourcePath, nil
}

func skipOutcome(line string) Outcome {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return OutcomeBlank
	case strings.HasPrefix(trimmed, "#"):
		return OutcomeComment
	default:
		return OutcomeMissing
	}
}

// fileExists reports whether a regular file (not a directory) exists at path.
func fileExists(path string, retry filesystem.RetryConfig) bool {
	if path == "" {
		return false
	}
	info, err := filesystem.StatWithRetry(path, retry)
	return err == nil && !info.IsDir()
}
