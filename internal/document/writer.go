package document

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"foundry-playlist-converter/internal/logging"
	"foundry-playlist-converter/internal/mediatypes"
	"foundry-playlist-converter/internal/playlist"
)

// ErrRootNotFound is returned when the user-data root is missing or is not a
// directory.
var ErrRootNotFound = errors.New("user data directory not found")

// IDSource produces Foundry identifiers.
type IDSource interface {
	New() string
}

// TitleFunc looks up a display title for an audio file. An empty title means
// "use the file name".
type TitleFunc func(path string) (string, error)

// Writer renders resolved playlists into Foundry documents.
type Writer struct {
	ids   IDSource
	meta  Metadata
	now   func() time.Time
	title TitleFunc
}

// Option configures a Writer.
type Option func(*Writer)

// WithMetadata sets the version strings embedded in the document.
func WithMetadata(m Metadata) Option {
	return func(w *Writer) {
		w.meta = m
	}
}

// WithClock sets the time source for createdTime and modifiedTime.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		if now != nil {
			w.now = now
		}
	}
}

// WithTitles names sounds after fn's result instead of the file name. fn is
// called from several goroutines.
func WithTitles(fn TitleFunc) Option {
	return func(w *Writer) {
		w.title = fn
	}
}

// NewWriter creates a Writer drawing identifiers from ids.
func NewWriter(ids IDSource, opts ...Option) *Writer {
	w := &Writer{
		ids:  ids,
		meta: DefaultMetadata(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Result summarises a written document.
type Result struct {
	Path  string
	Name  string
	Count int
}

// Build assembles the document for entries. root must be absolute.
func (w *Writer) Build(root, name string, entries []playlist.Entry) *Playlist {
	stamp := w.now().Unix()

	doc := &Playlist{
		Folder:  w.ids.New(),
		Name:    name,
		Sounds:  make([]Sound, 0, len(entries)),
		Channel: ChannelMusic,
		Mode:    ModeSequential,
		Sorting: SortAlpha,
		Flags: PlaylistFlags{
			ExportSource: ExportSource{
				World:         w.meta.World,
				System:        w.meta.SystemID,
				CoreVersion:   w.meta.CoreVersion,
				SystemVersion: w.meta.ExportSystemVersion,
			},
		},
	}

	names := w.names(entries)
	for i, entry := range entries {
		doc.Sounds = append(doc.Sounds, w.sound(root, entry, names[i]))
	}

	doc.Stats = Stats{
		CoreVersion:    w.meta.CoreVersion,
		SystemID:       w.meta.SystemID,
		SystemVersion:  w.meta.SystemVersion,
		CreatedTime:    stamp,
		ModifiedTime:   stamp,
		LastModifiedBy: w.ids.New(),
	}

	return doc
}

func (w *Writer) sound(root string, entry playlist.Entry, name string) Sound {
	rel, inside := RelativePath(root, entry.Path)
	if !inside {
		logging.Warn("%s is outside the user data directory, Foundry may not be able to load it", entry.Path)
	}
	if !mediatypes.IsAudioFile(entry.Path) {
		logging.Warn("%s (line %d) does not have a known audio extension", entry.Path, entry.Line)
	}

	return Sound{
		Name:    name,
		Path:    rel,
		ID:      w.ids.New(),
		Channel: ChannelMusic,
		Volume:  DefaultVolume,
	}
}

func (w *Writer) soundName(path string) string {
	if w.title != nil {
		title, err := w.title(path)
		if err != nil {
			logging.Debug("No title for %s, using file name: %v", path, err)
		} else if title != "" {
			return title
		}
	}
	return DisplayName(path)
}

// Write renders resolved into a document at outputPath, replacing any
// existing file. Sound paths are made relative to root.
func (w *Writer) Write(root string, resolved *playlist.Resolved, outputPath string) (res *Result, err error) {
	absRoot, err := checkRoot(root)
	if err != nil {
		return nil, err
	}
	if resolved.Len() == 0 {
		return nil, fmt.Errorf("nothing to write: %w", playlist.ErrEmpty)
	}

	name := DisplayName(outputPath)
	doc := w.Build(absRoot, name, resolved.Entries)

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			res = nil
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := Encode(f, doc); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	logging.Debug("Wrote playlist %q with %d sounds to %s", name, len(doc.Sounds), outputPath)
	return &Result{Path: outputPath, Name: name, Count: len(doc.Sounds)}, nil
}

// Encode writes doc as indented JSON.
func Encode(out io.Writer, doc *Playlist) error {
	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return bw.Flush()
}

// DisplayName returns the base name of path without its extension.
func DisplayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RelativePath returns path relative to root using forward slashes. The
// boolean is false when path does not sit below root; the returned path then
// starts with "../", or is path itself when no relative form exists (for
// example a different drive on Windows).
func RelativePath(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path), false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return rel, false
	}
	return rel, true
}

func checkRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return "", fmt.Errorf("invalid user data directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve user data directory: %w", err)
	}
	return abs, nil
}
