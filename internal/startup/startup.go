package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"foundry-playlist-converter/internal/document"
	"foundry-playlist-converter/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	OS        string
	Arch      string
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all converter configuration
type Config struct {
	// TagTitles names sounds after their audio tag title when one exists.
	TagTitles bool
	// NFSRetries is how often a stale NFS file handle is retried per lookup.
	NFSRetries int
	// MetricsTextfile is where run metrics are written. Empty disables them.
	MetricsTextfile string
	// Metadata is embedded in every generated document.
	Metadata document.Metadata
}

// MetricsEnabled reports whether a metrics textfile should be written.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsTextfile != ""
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	logSystemInfo()

	tagTitles := getEnvBool("TAG_TITLES", false)
	nfsRetries := getEnvInt("NFS_RETRIES", 0)
	metricsTextfile := getEnv("METRICS_TEXTFILE", "")
	meta := document.Metadata{
		World:               getEnv("FOUNDRY_WORLD", document.DefaultWorld),
		SystemID:            getEnv("FOUNDRY_SYSTEM_ID", document.DefaultSystemID),
		CoreVersion:         getEnv("FOUNDRY_CORE_VERSION", document.DefaultCoreVersion),
		ExportSystemVersion: getEnv("FOUNDRY_EXPORT_SYSTEM_VERSION", document.DefaultExportSystemVersion),
		SystemVersion:       getEnv("FOUNDRY_SYSTEM_VERSION", document.DefaultSystemVersion),
	}

	logging.Debug("Configuration:")
	logging.Debug("  TAG_TITLES:                    %v", tagTitles)
	logging.Debug("  NFS_RETRIES:                   %d", nfsRetries)
	logging.Debug("  METRICS_TEXTFILE:              %s", metricsTextfile)
	logging.Debug("  FOUNDRY_WORLD:                 %s", meta.World)
	logging.Debug("  FOUNDRY_SYSTEM_ID:             %s", meta.SystemID)
	logging.Debug("  FOUNDRY_CORE_VERSION:          %s", meta.CoreVersion)
	logging.Debug("  FOUNDRY_EXPORT_SYSTEM_VERSION: %s", meta.ExportSystemVersion)
	logging.Debug("  FOUNDRY_SYSTEM_VERSION:        %s", meta.SystemVersion)
	logging.Debug("  LOG_LEVEL:                     %s", logging.GetLevel())

	config := &Config{
		TagTitles:       tagTitles,
		NFSRetries:      nfsRetries,
		MetricsTextfile: metricsTextfile,
		Metadata:        meta,
	}

	if config.MetricsEnabled() {
		abs, err := filepath.Abs(metricsTextfile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve metrics textfile path: %w", err)
		}
		config.MetricsTextfile = abs

		// Metrics are optional; a bad directory disables them instead of failing the run.
		if err := checkWritableDir(filepath.Dir(abs)); err != nil {
			logging.Warn("Metrics textfile directory is not usable: %v", err)
			logging.Warn("Metrics will be disabled")
			config.MetricsTextfile = ""
		}
	}

	logging.Debug("  Audio tag titles: %s", enabledString(config.TagTitles))
	logging.Debug("  Metrics textfile: %s", enabledString(config.MetricsEnabled()))

	return config, nil
}

// RunInfo describes one conversion for the lifecycle log.
type RunInfo struct {
	UserDataRoot string
	PlaylistPath string
	OutputPath   string
}

// LogRunStarted logs the start of a conversion
func LogRunStarted(info RunInfo) {
	logging.Debug("Converting %s", info.PlaylistPath)
	logging.Debug("  User data root: %s", info.UserDataRoot)
	logging.Debug("  Output:         %s", info.OutputPath)
}

// LogRunComplete logs a successful conversion
func LogRunComplete(sounds, skipped int, duration time.Duration) {
	logging.Info("Converted %d sounds (%d lines skipped) in %v", sounds, skipped, duration)
}

// LogRunFailed logs a failed conversion
func LogRunFailed(err error, duration time.Duration) {
	logging.Error("Conversion failed after %v: %v", duration, err)
}

// Helper functions

func logSystemInfo() {
	if !logging.IsDebugEnabled() {
		return
	}

	info := GetBuildInfo()
	logging.Debug("Version %s (commit %s, built %s)", info.Version, info.Commit, info.BuildTime)
	logging.Debug("  Go version:  %s", info.GoVersion)
	logging.Debug("  OS/Arch:     %s/%s", info.OS, info.Arch)

	if wd, err := os.Getwd(); err == nil {
		logging.Debug("  Working dir: %s", wd)
	}
}

func checkWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", dir)
	}
	return testWriteAccess(dir)
}

func testWriteAccess(dir string) error {
	testFile := filepath.Join(dir, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o644); err != nil {
		return err
	}
	if err := os.Remove(testFile); err != nil {
		logging.Warn("failed to remove write test file %s: %v", testFile, err)
		// Don't return error since write access was confirmed
	}
	return nil
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		logging.Warn("Invalid value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
