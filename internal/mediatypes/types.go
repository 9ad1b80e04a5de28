package mediatypes

import (
	"path/filepath"
	"strings"
)

// FileType represents the type of a file.
type FileType string

const (
	// FileTypeAudio represents an audio file.
	FileTypeAudio FileType = "audio"
	// FileTypePlaylist represents a playlist file.
	FileTypePlaylist FileType = "playlist"
	// FileTypeOther represents an unknown or unsupported file type.
	FileTypeOther FileType = "other"
)

// AudioExtensions maps file extensions to whether Foundry VTT can play them.
var AudioExtensions = map[string]bool{
	".aac":  true,
	".flac": true,
	".m4a":  true,
	".mid":  true,
	".mp3":  true,
	".oga":  true,
	".ogg":  true,
	".opus": true,
	".wav":  true,
	".webm": true,
}

// PlaylistExtensions maps file extensions to whether they are accepted playlist inputs.
var PlaylistExtensions = map[string]bool{
	".m3u":  true,
	".m3u8": true,
	".txt":  true,
}

// GetFileType returns the FileType for a given file extension.
// The extension should be lowercase and include the leading dot (e.g., ".mp3").
// Returns FileTypeOther if the extension is not recognized.
func GetFileType(ext string) FileType {
	if AudioExtensions[ext] {
		return FileTypeAudio
	}
	if PlaylistExtensions[ext] {
		return FileTypePlaylist
	}
	return FileTypeOther
}

// IsAudioFile returns true if the file name has a playable audio extension.
func IsAudioFile(name string) bool {
	return GetFileType(extension(name)) == FileTypeAudio
}

// IsPlaylistFile returns true if the file name has a playlist extension.
func IsPlaylistFile(name string) bool {
	return GetFileType(extension(name)) == FileTypePlaylist
}

func extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
