// Package playlist reads playlist files into an ordered list of audio files
// that exist on disk.
//
// Two line-oriented inputs are understood, and may be mixed freely:
//   - M3U-style file URIs (e.g., file:///C:/Music/Game%20123/track%20five.mp3)
//   - Bare file-system paths, absolute or relative to the working directory
//
// Every other line, including blank lines and #EXTM3U/#EXTINF directives, is
// tried as a path too and skipped when nothing exists there. Skipping is not
// an error; a playlist in which nothing resolves is.
//
// File URIs are decoded the way the host operating system would: on Windows a
// leading drive letter becomes C:\... and a URI host becomes a UNC share, on
// other systems the decoded path is used as is.
//
// File lookups go through the filesystem package, so an NFS stale file
// handle is retried instead of skipping the line. See WithRetry.
//
// Per-line outcomes can be observed through an Observer, which lets the
// metrics package count lines without this package importing it.
package playlist
