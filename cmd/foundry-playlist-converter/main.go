package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"foundry-playlist-converter/internal/audiotag"
	"foundry-playlist-converter/internal/document"
	"foundry-playlist-converter/internal/filesystem"
	"foundry-playlist-converter/internal/foundryid"
	"foundry-playlist-converter/internal/logging"
	"foundry-playlist-converter/internal/mediatypes"
	"foundry-playlist-converter/internal/metrics"
	"foundry-playlist-converter/internal/playlist"
	"foundry-playlist-converter/internal/startup"
)

// defaultExeName is shown in the usage text when the executable path is unknown.
const defaultExeName = "FOUNDRYPLAYLISTCONVERTOR"

func main() {
	logging.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run converts one playlist and returns the process exit code. User-facing
// messages go to stdout; logs go to stderr.
func run(args []string, stdout io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(stdout, "ERROR: Unhandled exception:")
			fmt.Fprintf(stdout, "%v\n%s", r, debug.Stack())
			code = 1
		}
	}()

	if len(args) != 3 {
		printUsage(stdout)
		return 1
	}

	info := startup.RunInfo{
		UserDataRoot: args[0],
		PlaylistPath: args[1],
		OutputPath:   args[2],
	}

	config, err := startup.LoadConfig()
	if err != nil {
		printError(stdout, err)
		return 1
	}

	start := time.Now()
	rec := metrics.New()
	result, skipped, err := convertFn(config, rec, info)
	duration := time.Since(start)

	if err != nil {
		rec.ObserveConversion(metrics.StatusFailure, duration, 0)
		startup.LogRunFailed(err, duration)
		writeMetrics(config, rec)
		printError(stdout, err)
		return 1
	}

	rec.ObserveConversion(metrics.StatusSuccess, duration, result.Count)
	startup.LogRunComplete(result.Count, skipped, duration)
	writeMetrics(config, rec)

	fmt.Fprintf(stdout, "SUCCESS: Wrote %d items to %s\n", result.Count, result.Path)
	return 0
}

// convertFn is swapped in tests.
var convertFn = convert

// convert reads the playlist and writes the Foundry document. It also returns
// the number of skipped playlist lines.
func convert(config *startup.Config, rec *metrics.Recorder, info startup.RunInfo) (*document.Result, int, error) {
	startup.LogRunStarted(info)

	if !mediatypes.IsPlaylistFile(info.PlaylistPath) {
		logging.Warn("%s does not look like a playlist, reading it as one path per line", info.PlaylistPath)
	}

	retry := filesystem.DefaultRetryConfig()
	retry.MaxRetries = config.NFSRetries
	retry.Observer = rec

	resolved, err := playlist.Read(info.PlaylistPath,
		playlist.WithObserver(rec),
		playlist.WithRetry(retry),
	)
	if err != nil {
		return nil, 0, err
	}

	ids, err := foundryid.NewFromEntropy()
	if err != nil {
		return nil, resolved.Skipped, err
	}

	opts := []document.Option{document.WithMetadata(config.Metadata)}
	if config.TagTitles {
		opts = append(opts, document.WithTitles(audiotag.Title))
	}

	result, err := document.NewWriter(ids, opts...).Write(info.UserDataRoot, resolved, info.OutputPath)
	if err != nil {
		return nil, resolved.Skipped, err
	}
	return result, resolved.Skipped, nil
}

func writeMetrics(config *startup.Config, rec *metrics.Recorder) {
	if !config.MetricsEnabled() {
		return
	}
	if err := rec.WriteTextfile(config.MetricsTextfile); err != nil {
		logging.Warn("%v", err)
		return
	}
	logging.Debug("Wrote metrics to %s", config.MetricsTextfile)
}

// describeError returns the one-line headline shown above the error detail.
func describeError(err error) string {
	switch {
	case errors.Is(err, playlist.ErrNotFound):
		return "Playlist file not found"
	case errors.Is(err, playlist.ErrInvalidURI):
		return "Playlist contains a malformed file URI"
	case errors.Is(err, playlist.ErrEmpty):
		return "Playlist does not name any existing files"
	case errors.Is(err, document.ErrRootNotFound):
		return "User data directory not found"
	default:
		return "Conversion failed"
	}
}

func printError(out io.Writer, err error) {
	fmt.Fprintf(out, "ERROR: %s:\n", describeError(err))
	fmt.Fprintln(out, err)
}

func exeName() string {
	path, err := os.Executable()
	if err != nil || path == "" {
		return defaultExeName
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return defaultExeName
	}
	return strings.ToUpper(name)
}

func printUsage(out io.Writer) {
	info := startup.GetBuildInfo()
	fmt.Fprintln(out, "Converts a list of files or M3U playlist into a Playlist JSON importable by Foundry VTT.")
	fmt.Fprintf(out, "Version %s (commit %s, %s/%s)\n", info.Version, info.Commit, info.OS, info.Arch)
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "%s [userdataroot] [playlist] [output]\n", exeName())
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "  userdataroot  Path to foundry's data root.")
	fmt.Fprintln(out, "  playlist      Path to the input list.")
	fmt.Fprintln(out, "  output        Path to write the JSON output.")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Environment:")
	fmt.Fprintln(out, "  LOG_LEVEL                      - debug, info, warn or error (default: info)")
	fmt.Fprintln(out, "  LOG_FORMAT                     - text or json (default: text on a terminal)")
	fmt.Fprintln(out, "  TAG_TITLES                     - Name sounds after their audio tag title (default: false)")
	fmt.Fprintln(out, "  NFS_RETRIES                    - Retries for a stale NFS file handle (default: 0)")
	fmt.Fprintln(out, "  TAG_WORKERS                    - Concurrent tag reads (default: 2 per CPU, at most 16)")
	fmt.Fprintln(out, "  METRICS_TEXTFILE               - Write Prometheus metrics to this file")
	fmt.Fprintf(out, "  FOUNDRY_WORLD                  - Export world (default: %s)\n", document.DefaultWorld)
	fmt.Fprintf(out, "  FOUNDRY_SYSTEM_ID              - Game system (default: %s)\n", document.DefaultSystemID)
	fmt.Fprintf(out, "  FOUNDRY_CORE_VERSION           - Foundry core version (default: %s)\n", document.DefaultCoreVersion)
	fmt.Fprintf(out, "  FOUNDRY_EXPORT_SYSTEM_VERSION  - Exported system version (default: %s)\n", document.DefaultExportSystemVersion)
	fmt.Fprintf(out, "  FOUNDRY_SYSTEM_VERSION         - System version in _stats (default: %s)\n", document.DefaultSystemVersion)
}
