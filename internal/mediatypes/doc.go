// Package mediatypes provides shared type definitions for the files the
// playlist converter deals with.
//
// This package exists as a dependency-free foundation that can be imported by
// other packages without creating import cycles. It contains primitive types,
// constants, and pure utility functions with no external dependencies beyond
// the standard library.
//
// # File Types
//
// The package defines a FileType enum for categorizing files:
//
//	mediatypes.FileTypeAudio    // Audio formats Foundry VTT can play (mp3, ogg, flac, etc.)
//	mediatypes.FileTypePlaylist // Playlist inputs (m3u, m3u8, txt)
//	mediatypes.FileTypeOther    // Unrecognized or unsupported files
//
// # Extension Detection
//
// Use GetFileType with a lowercase extension, or the IsAudioFile and
// IsPlaylistFile helpers with a full file name:
//
//	if !mediatypes.IsAudioFile(path) {
//	    logging.Warn("%s does not look like an audio file", path)
//	}
//
// The extension maps (AudioExtensions, PlaylistExtensions) can be used
// directly for iteration.
package mediatypes
