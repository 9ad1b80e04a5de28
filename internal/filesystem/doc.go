/*
Package filesystem provides file lookups with automatic retry for NFS stale
file handle errors.

Music libraries often live on network shares. Playlist lines are stat'ed one
at a time, and an ESTALE from a share that is remounting would otherwise turn
a present file into a skipped line.

# Usage

	info, err := filesystem.StatWithRetry(path, filesystem.DefaultRetryConfig())

	file, err := filesystem.OpenWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
	    return err
	}
	defer file.Close()

# Retry Behavior

The retry logic implements exponential backoff with the following defaults:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

Only ESTALE triggers retries. All other errors, including "not exist", fail
immediately.

# Metrics

Set RetryConfig.Observer to record retries. The metrics package's Recorder
implements [Observer].
*/
package filesystem
