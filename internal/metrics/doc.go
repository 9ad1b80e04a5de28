// Package metrics provides Prometheus instrumentation for a single
// conversion run.
//
// The converter is a one-shot process, so nothing is scraped. Instead a
// Recorder collects into its own registry and, when asked, writes the result
// in the text exposition format for the node_exporter textfile collector.
// All metrics are prefixed with "foundry_playlist_".
//
// # Metric Categories
//
// ## Playlist Metrics
//
// Track how playlist lines were handled:
//   - LinesTotal: Counter of lines by source (uri/path) and outcome
//     (resolved/missing/blank/comment)
//   - EntriesResolved: Counter of lines that named an existing file
//
// ## Filesystem Metrics
//
// Track NFS stale file handle retries:
//   - FilesystemRetries: Counter by operation (stat/open) and event
//     (stale/attempt/success/failure)
//
// ## Conversion Metrics
//
// Track the run as a whole:
//   - ConversionsTotal: Counter of runs by status (success/failure)
//   - ConversionDuration: Histogram of run duration
//   - SoundsWritten: Counter of sounds written to the document
//   - LastSuccessTimestamp: Gauge of the last successful run time
package metrics
