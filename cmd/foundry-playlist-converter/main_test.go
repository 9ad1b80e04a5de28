package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundry-playlist-converter/internal/document"
	"foundry-playlist-converter/internal/metrics"
	"foundry-playlist-converter/internal/playlist"
	"foundry-playlist-converter/internal/startup"
)

// =============================================================================
// Helpers
// =============================================================================

// setupEnv clears every configuration variable so the defaults apply.
func setupEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TAG_TITLES",
		"TAG_WORKERS",
		"NFS_RETRIES",
		"METRICS_TEXTFILE",
		"FOUNDRY_WORLD",
		"FOUNDRY_SYSTEM_ID",
		"FOUNDRY_CORE_VERSION",
		"FOUNDRY_EXPORT_SYSTEM_VERSION",
		"FOUNDRY_SYSTEM_VERSION",
	} {
		t.Setenv(key, "")
	}
}

// setupLibrary creates a user data root holding a music folder with the named
// files and returns the root and the absolute file paths.
func setupLibrary(t *testing.T, names ...string) (root string, paths []string) {
	t.Helper()
	root = t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, "music", name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("fake audio"), 0o644))
		paths = append(paths, path)
	}
	return root, paths
}

func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
}

func readDocument(t *testing.T, path string) document.Playlist {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc document.Playlist
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

// =============================================================================
// Argument handling
// =============================================================================

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "No arguments", args: nil},
		{name: "Two arguments", args: []string{"root", "list.m3u"}},
		{name: "Four arguments", args: []string{"root", "list.m3u", "out.json", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(tt.args, &out)

			assert.Equal(t, 1, code)
			assert.Contains(t, out.String(), "[userdataroot] [playlist] [output]")
			assert.Contains(t, out.String(), "Foundry VTT")
			assert.Contains(t, out.String(), "Version "+startup.Version+" (commit "+startup.Commit)
		})
	}
}

func TestExeName(t *testing.T) {
	name := exeName()
	assert.NotEmpty(t, name)
	assert.Equal(t, strings.ToUpper(name), name)
}

// =============================================================================
// Conversion
// =============================================================================

func TestRunSuccess(t *testing.T) {
	setupEnv(t)
	root, paths := setupLibrary(t, "track1.mp3", "track two.ogg")

	listPath := filepath.Join(root, "list.m3u")
	writeLines(t, listPath,
		"#EXTM3U",
		paths[0],
		"file://"+strings.ReplaceAll(filepath.ToSlash(paths[1]), " ", "%20"),
		filepath.Join(root, "music", "missing.mp3"),
	)
	outPath := filepath.Join(root, "MyList.json")

	var out bytes.Buffer
	code := run([]string{root, listPath, outPath}, &out)

	require.Equal(t, 0, code, out.String())
	assert.Equal(t, fmt.Sprintf("SUCCESS: Wrote 2 items to %s\n", outPath), out.String())

	doc := readDocument(t, outPath)
	assert.Equal(t, "MyList", doc.Name)
	require.Len(t, doc.Sounds, 2)
	assert.Equal(t, "track1", doc.Sounds[0].Name)
	assert.Equal(t, "music/track1.mp3", doc.Sounds[0].Path)
	assert.Equal(t, "track two", doc.Sounds[1].Name)
	assert.Equal(t, "music/track two.ogg", doc.Sounds[1].Path)
	assert.Regexp(t, `^[A-Za-z0-9]{16}$`, doc.Folder)
	assert.Equal(t, document.DefaultSystemID, doc.Stats.SystemID)
}

func TestRunMetadataFromEnvironment(t *testing.T) {
	setupEnv(t)
	t.Setenv("FOUNDRY_SYSTEM_ID", "dnd5e")
	t.Setenv("FOUNDRY_WORLD", "campaign")

	root, paths := setupLibrary(t, "a.mp3")
	listPath := filepath.Join(root, "list.txt")
	writeLines(t, listPath, paths[0])
	outPath := filepath.Join(root, "out.json")

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{root, listPath, outPath}, &out), out.String())

	doc := readDocument(t, outPath)
	assert.Equal(t, "dnd5e", doc.Stats.SystemID)
	assert.Equal(t, "dnd5e", doc.Flags.ExportSource.System)
	assert.Equal(t, "campaign", doc.Flags.ExportSource.World)
}

func TestRunFailures(t *testing.T) {
	setupEnv(t)
	root, paths := setupLibrary(t, "a.mp3")

	goodList := filepath.Join(root, "good.m3u")
	writeLines(t, goodList, paths[0])

	emptyList := filepath.Join(root, "empty.m3u")
	writeLines(t, emptyList, "#EXTM3U", filepath.Join(root, "nothing.mp3"))

	badURIList := filepath.Join(root, "bad.m3u")
	writeLines(t, badURIList, "file:///music/%zz.mp3")

	tests := []struct {
		name     string
		root     string
		list     string
		headline string
	}{
		{
			name:     "Missing playlist",
			root:     root,
			list:     filepath.Join(root, "nope.m3u"),
			headline: "ERROR: Playlist file not found:",
		},
		{
			name:     "No resolvable entries",
			root:     root,
			list:     emptyList,
			headline: "ERROR: Playlist does not name any existing files:",
		},
		{
			name:     "Malformed URI",
			root:     root,
			list:     badURIList,
			headline: "ERROR: Playlist contains a malformed file URI:",
		},
		{
			name:     "Missing user data root",
			root:     filepath.Join(root, "no-such-root"),
			list:     goodList,
			headline: "ERROR: User data directory not found:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "out.json")

			var out bytes.Buffer
			code := run([]string{tt.root, tt.list, outPath}, &out)

			assert.Equal(t, 1, code)
			assert.True(t, strings.HasPrefix(out.String(), tt.headline), "got %q", out.String())

			_, err := os.Stat(outPath)
			assert.True(t, errors.Is(err, os.ErrNotExist), "output should not be written")
		})
	}
}

func TestRunOutputDirectoryMissing(t *testing.T) {
	setupEnv(t)
	root, paths := setupLibrary(t, "a.mp3")
	listPath := filepath.Join(root, "list.m3u")
	writeLines(t, listPath, paths[0])

	var out bytes.Buffer
	code := run([]string{root, listPath, filepath.Join(root, "missing", "out.json")}, &out)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(out.String(), "ERROR: Conversion failed:"), "got %q", out.String())
	assert.Contains(t, out.String(), "failed to create output file")
}

func TestRunWritesMetricsTextfile(t *testing.T) {
	setupEnv(t)
	root, paths := setupLibrary(t, "a.mp3", "b.mp3")
	listPath := filepath.Join(root, "list.m3u")
	writeLines(t, listPath, "#EXTM3U", paths[0], paths[1], "")

	metricsPath := filepath.Join(t.TempDir(), "foundry.prom")
	t.Setenv("METRICS_TEXTFILE", metricsPath)

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{root, listPath, filepath.Join(root, "out.json")}, &out), out.String())

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `foundry_playlist_conversions_total{status="success"} 1`)
	assert.Contains(t, text, `foundry_playlist_lines_total{outcome="resolved",source="path"} 2`)
	assert.Contains(t, text, `foundry_playlist_lines_total{outcome="comment",source="path"} 1`)
	assert.Contains(t, text, "foundry_playlist_sounds_written_total 2")
}

func TestRunMetricsOnFailure(t *testing.T) {
	setupEnv(t)
	root := t.TempDir()
	metricsPath := filepath.Join(t.TempDir(), "foundry.prom")
	t.Setenv("METRICS_TEXTFILE", metricsPath)

	var out bytes.Buffer
	code := run([]string{root, filepath.Join(root, "nope.m3u"), filepath.Join(root, "out.json")}, &out)
	require.Equal(t, 1, code)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `foundry_playlist_conversions_total{status="failure"} 1`)
}

func TestRunRecoversPanic(t *testing.T) {
	setupEnv(t)
	original := convertFn
	t.Cleanup(func() { convertFn = original })
	convertFn = func(*startup.Config, *metrics.Recorder, startup.RunInfo) (*document.Result, int, error) {
		panic("tag reader exploded")
	}

	root := t.TempDir()
	var out bytes.Buffer
	code := run([]string{root, filepath.Join(root, "list.m3u"), filepath.Join(root, "out.json")}, &out)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(out.String(), "ERROR: Unhandled exception:\n"), "got %q", out.String())
	assert.Contains(t, out.String(), "tag reader exploded")
}

// =============================================================================
// Error headlines
// =============================================================================

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("wrapped: %w", playlist.ErrNotFound), "Playlist file not found"},
		{fmt.Errorf("line 3: %w", playlist.ErrInvalidURI), "Playlist contains a malformed file URI"},
		{playlist.ErrEmpty, "Playlist does not name any existing files"},
		{document.ErrRootNotFound, "User data directory not found"},
		{errors.New("disk on fire"), "Conversion failed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err), "describeError(%v)", tt.err)
	}
}
