// Command foundry-playlist-converter turns an M3U playlist, or a plain list
// of audio file paths, into a playlist document that Foundry VTT can import.
//
// Usage:
//
//	foundry-playlist-converter <userdataroot> <playlist> <output>
//
// Arguments:
//
//	userdataroot  Foundry's user data directory. Sound paths in the output
//	              are written relative to it.
//
//	playlist      The input list. Each line is a file path or a file:// URI;
//	              lines that do not name an existing file are skipped.
//
//	output        Where to write the JSON document. An existing file is
//	              replaced. The playlist is named after this file.
//
// On success the command prints "SUCCESS: Wrote <n> items to <output>" and
// exits 0. Any failure prints "ERROR: ..." with the detail and exits 1.
//
// Environment:
//
//	LOG_LEVEL, LOG_FORMAT, DEBUG   Logging, written to stderr
//	TAG_TITLES                     Name sounds after their audio tag title
//	TAG_WORKERS                    Concurrent tag reads when TAG_TITLES is set
//	NFS_RETRIES                    Retries for a stale NFS file handle
//	METRICS_TEXTFILE               Write Prometheus metrics after the run
//	FOUNDRY_*                      Version metadata embedded in the document
package main
