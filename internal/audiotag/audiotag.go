// Package audiotag reads embedded titles from audio files.
//
// ID3v1/v2 (mp3), MP4 (m4a/aac), FLAC and Ogg Vorbis tags are supported
// through github.com/dhowden/tag.
package audiotag

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// Title returns the title tag of the file at path. A file without tags, or
// with an empty title, yields "" and no error.
func Title(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read tags from %s: %w", path, err)
	}

	return strings.TrimSpace(m.Title()), nil
}
