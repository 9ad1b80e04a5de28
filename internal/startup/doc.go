// Package startup handles converter configuration, build information and
// run lifecycle logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// Every variable is optional:
//
//   - TAG_TITLES: Name sounds after their audio tag title (default: false)
//   - NFS_RETRIES: Retries for a stale NFS file handle per lookup (default: 0)
//   - TAG_WORKERS: Concurrent tag reads, read by the document writer
//   - METRICS_TEXTFILE: Write run metrics to this path (default: disabled)
//   - FOUNDRY_WORLD: exportSource world (default: foundry-playlist-convertor)
//   - FOUNDRY_SYSTEM_ID: exportSource system and _stats systemId (default: pf2e)
//   - FOUNDRY_CORE_VERSION: Foundry core version (default: 12.331)
//   - FOUNDRY_EXPORT_SYSTEM_VERSION: exportSource systemVersion (default: 6.11.1)
//   - FOUNDRY_SYSTEM_VERSION: _stats systemVersion (default: 6.8.5)
//   - LOG_LEVEL, DEBUG, LOG_FORMAT: read by the logging package
//
// A METRICS_TEXTFILE whose directory is missing or not writable disables
// metrics with a warning rather than failing the run.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Lifecycle Logging
//
//   - [LogRunStarted]: Input and output paths (debug level)
//   - [LogRunComplete]: Sound count, skipped lines and duration
//   - [LogRunFailed]: The error that ended the run
package startup
